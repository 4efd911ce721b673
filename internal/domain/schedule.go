package domain

// BusinessHours represents the fixed range of bookable hours per day
// Диапазон включительный: при StartHour=8 и EndHour=17 доступны слоты 8..17
type BusinessHours struct {
	StartHour int
	EndHour   int
}

// Contains returns true if the hour falls within the business range
func (b BusinessHours) Contains(hour int) bool {
	return hour >= b.StartHour && hour <= b.EndHour
}

// Hours returns all business hours in ascending order
func (b BusinessHours) Hours() []int {
	if b.EndHour < b.StartHour {
		return []int{}
	}

	hours := make([]int, 0, b.EndHour-b.StartHour+1)
	for h := b.StartHour; h <= b.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// IsValid returns true if the range is well-formed within a 24-hour day
func (b BusinessHours) IsValid() bool {
	return b.StartHour >= 0 && b.EndHour <= 23 && b.StartHour <= b.EndHour
}

// DefaultBusinessHours возвращает диапазон рабочих часов по умолчанию
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		StartHour: DefaultBusinessDayStart,
		EndHour:   DefaultBusinessDayEnd,
	}
}
