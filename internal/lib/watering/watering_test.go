package watering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		daysAgo     int
		frequency   int
		wantMin     float64
		wantMax     float64
		wantExactly float64
		exact       bool
	}{
		{
			name:        "полито только что",
			daysAgo:     0,
			frequency:   7,
			wantExactly: 1.0,
			exact:       true,
		},
		{
			name:      "половина срока",
			daysAgo:   5,
			frequency: 10,
			wantMin:   0.49,
			wantMax:   0.51,
		},
		{
			name:        "срок вышел",
			daysAgo:     7,
			frequency:   7,
			wantExactly: 0.02,
			exact:       true,
		},
		{
			name:        "сильно просрочено",
			daysAgo:     30,
			frequency:   7,
			wantExactly: 0.02,
			exact:       true,
		},
		{
			name:        "чуть выше потолка прижимается к единице",
			daysAgo:     0,
			frequency:   30,
			wantExactly: 1.0,
			exact:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastWatered := now.AddDate(0, 0, -tt.daysAgo)
			got := Progress(lastWatered, tt.frequency, now)
			if tt.exact {
				assert.InDelta(t, tt.wantExactly, got, 1e-9)
			} else {
				assert.GreaterOrEqual(t, got, tt.wantMin)
				assert.LessOrEqual(t, got, tt.wantMax)
			}
		})
	}
}

func TestProgress_NeverBelowFloor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	got := Progress(now.AddDate(0, 0, -365), 1, now)
	assert.InDelta(t, 0.02, got, 1e-9)
}

func TestStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		daysAgo   int
		frequency int
		want      string
	}{
		{
			name:      "поливать сейчас",
			daysAgo:   7,
			frequency: 7,
			want:      "You need to water this plant now!",
		},
		{
			name:      "просрочено",
			daysAgo:   10,
			frequency: 7,
			want:      "You need to water this plant now!",
		},
		{
			name:      "поливать завтра",
			daysAgo:   6,
			frequency: 7,
			want:      "You need to water this plant tomorrow!",
		},
		{
			name:      "поливать через несколько дней",
			daysAgo:   2,
			frequency: 7,
			want:      "You need to water this plant in 5 days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastWatered := now.AddDate(0, 0, -tt.daysAgo)
			got := Status(lastWatered, tt.frequency, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysUntil(now, 7, now))
	assert.Equal(t, 0, DaysUntil(now.AddDate(0, 0, -7), 7, now))
	assert.Equal(t, -3, DaysUntil(now.AddDate(0, 0, -10), 7, now))
}
