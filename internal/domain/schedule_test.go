package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessHoursContains(t *testing.T) {
	hours := BusinessHours{StartHour: 8, EndHour: 17}

	assert.True(t, hours.Contains(8))
	assert.True(t, hours.Contains(12))
	assert.True(t, hours.Contains(17))
	assert.False(t, hours.Contains(7))
	assert.False(t, hours.Contains(18))
	assert.False(t, hours.Contains(-1))
}

func TestBusinessHoursHours(t *testing.T) {
	t.Run("full default range", func(t *testing.T) {
		hours := DefaultBusinessHours().Hours()

		assert.Len(t, hours, 10)
		assert.Equal(t, 8, hours[0])
		assert.Equal(t, 17, hours[len(hours)-1])
	})

	t.Run("ascending order", func(t *testing.T) {
		hours := BusinessHours{StartHour: 9, EndHour: 12}.Hours()

		assert.Equal(t, []int{9, 10, 11, 12}, hours)
	})

	t.Run("single hour range", func(t *testing.T) {
		hours := BusinessHours{StartHour: 10, EndHour: 10}.Hours()

		assert.Equal(t, []int{10}, hours)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		hours := BusinessHours{StartHour: 17, EndHour: 8}.Hours()

		assert.Empty(t, hours)
	})
}

func TestBusinessHoursIsValid(t *testing.T) {
	assert.True(t, BusinessHours{StartHour: 8, EndHour: 17}.IsValid())
	assert.True(t, BusinessHours{StartHour: 0, EndHour: 23}.IsValid())
	assert.False(t, BusinessHours{StartHour: -1, EndHour: 17}.IsValid())
	assert.False(t, BusinessHours{StartHour: 8, EndHour: 24}.IsValid())
	assert.False(t, BusinessHours{StartHour: 17, EndHour: 8}.IsValid())
}

func TestAppointmentOccupiesSlot(t *testing.T) {
	confirmed := &Appointment{Status: StatusConfirmed}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, confirmed.OccupiesSlot())
	assert.False(t, cancelled.OccupiesSlot())
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	confirmed := &Appointment{Status: StatusConfirmed}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}
