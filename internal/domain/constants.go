package domain

// SlotStepMinutes фиксированный шаг генерации кандидатов слотов
const SlotStepMinutes = 15

// Business validation constants
const (
	MinBayCount = 1
	MaxBayCount = 50

	// MaxJobDurationHours верхняя граница оценки длительности работ
	MaxJobDurationHours = 24.0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SchedulableStatuses статусы заявки, в которых её можно ставить в расписание
var SchedulableStatuses = []JobStatus{
	StatusApproved,
	StatusWorkInProgress,
	StatusAwaitingParts,
}
