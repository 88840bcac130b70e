package domain

// Business validation constants
const (
	MinAppointmentMinutes = 5
	MaxAppointmentMinutes = 480 // 8 hours

	MinBufferMinutes = 0
	MaxBufferMinutes = 60

	MinPerDayLimit = 1
	MaxPerDayLimit = 100

	MinAdvanceDaysLimit = 1
	MaxAdvanceDaysLimit = 365 // 1 year

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
