package domain

import "time"

// Provider represents a bookable service provider
// Записи неизменяемы после создания, физическое удаление не используется -
// провайдер выводится из ротации через флаг Active
type Provider struct {
	ID        string
	Name      string
	AvatarURL string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
