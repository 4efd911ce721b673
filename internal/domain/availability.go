package domain

// HourAvailability represents the availability of a single hourly slot
type HourAvailability struct {
	Hour      int
	Available bool
}

// DayAvailability производная проекция занятости: по одной записи на каждый
// рабочий час дня, отсортировано по возрастанию часа. Не персистится
type DayAvailability []HourAvailability

// AvailableHours returns the hours that can currently be booked
func (d DayAvailability) AvailableHours() []int {
	hours := make([]int, 0, len(d))
	for _, item := range d {
		if item.Available {
			hours = append(hours, item.Hour)
		}
	}
	return hours
}
