package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayConfig() *ShopCalendarConfig {
	return &ShopCalendarConfig{
		OpenWeekdays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		OperatingHours: OperatingHours{
			Start: "08:00",
			End:   "17:30",
		},
		BayCount: 2,
		Timezone: "Europe/Moscow",
	}
}

func TestShopCalendarConfig_IsOpenOn(t *testing.T) {
	cfg := weekdayConfig()

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)

	assert.True(t, cfg.IsOpenOn(monday))
	assert.False(t, cfg.IsOpenOn(saturday))
	assert.False(t, cfg.IsOpenOn(sunday))
}

func TestShopCalendarConfig_OperatingWindow(t *testing.T) {
	cfg := weekdayConfig()

	start, end, err := cfg.OperatingWindow()
	require.NoError(t, err)
	assert.Equal(t, 8*60, start)
	assert.Equal(t, 17*60+30, end)
}

func TestShopCalendarConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShopCalendarConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*ShopCalendarConfig) {}, wantErr: false},
		{
			name:    "start after end",
			mutate:  func(c *ShopCalendarConfig) { c.OperatingHours.Start = "18:00" },
			wantErr: true,
		},
		{
			name:    "start equals end",
			mutate:  func(c *ShopCalendarConfig) { c.OperatingHours.Start = "17:30" },
			wantErr: true,
		},
		{
			name:    "zero bays",
			mutate:  func(c *ShopCalendarConfig) { c.BayCount = 0 },
			wantErr: true,
		},
		{
			name:    "unknown weekday",
			mutate:  func(c *ShopCalendarConfig) { c.OpenWeekdays = []string{"Mondag"} },
			wantErr: true,
		},
		{
			name:    "no open days",
			mutate:  func(c *ShopCalendarConfig) { c.OpenWeekdays = nil },
			wantErr: true,
		},
		{
			name:    "bad timezone",
			mutate:  func(c *ShopCalendarConfig) { c.Timezone = "Mars/Olympus" },
			wantErr: true,
		},
		{
			name:    "malformed hours",
			mutate:  func(c *ShopCalendarConfig) { c.OperatingHours.End = "25:99" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weekdayConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJob_IsSchedulable_StatusList(t *testing.T) {
	schedulable := []JobStatus{StatusApproved, StatusWorkInProgress, StatusAwaitingParts}
	for _, s := range schedulable {
		j := Job{Status: s}
		assert.True(t, j.IsSchedulable(), "status %s", s)
	}

	for _, s := range []JobStatus{StatusSaved, StatusCompleted, StatusPaid} {
		j := Job{Status: s}
		assert.False(t, j.IsSchedulable(), "status %s", s)
	}
}

func TestAppointment_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 23:30 UTC = 02:30 следующего дня по Москве
	apt := Appointment{DateTime: time.Date(2025, 10, 13, 23, 30, 0, 0, time.UTC)}

	assert.False(t, apt.OnDate(time.Date(2025, 10, 13, 0, 0, 0, 0, loc), loc))
	assert.True(t, apt.OnDate(time.Date(2025, 10, 14, 0, 0, 0, 0, loc), loc))
}
