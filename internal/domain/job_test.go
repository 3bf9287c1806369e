package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJob_DurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"whole hours", 2.0, 120},
		{"half hour", 1.5, 90},
		{"quarter hour", 0.25, 15},
		// Двоичное представление 4.1*60 чуть меньше 246: усечение потеряло бы минуту
		{"fractional 4.1h", 4.1, 246},
		{"fractional 4.6h", 4.6, 276},
		{"fractional 0.1h", 0.1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &Job{EstimatedDurationHours: tt.hours}
			assert.Equal(t, tt.want, job.DurationMinutes())
		})
	}
}

func TestJob_IsSchedulable(t *testing.T) {
	for _, status := range SchedulableStatuses {
		job := &Job{Status: status}
		assert.Truef(t, job.IsSchedulable(), "status %s must be schedulable", status)
	}

	for _, status := range []JobStatus{StatusSaved, StatusCompleted, StatusPaid} {
		job := &Job{Status: status}
		assert.Falsef(t, job.IsSchedulable(), "status %s must not be schedulable", status)
	}
}
