package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlant_SetLastWatered(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		wantErr bool
	}{
		{
			name: "дата в прошлом принимается",
			date: now.AddDate(0, 0, -3),
		},
		{
			name: "текущий момент принимается",
			date: now,
		},
		{
			name:    "дата в будущем отклоняется",
			date:    now.AddDate(0, 0, 1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := now.AddDate(0, 0, -10)
			plant := Plant{LastWatered: original}

			err := plant.SetLastWatered(tt.date, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFutureDate)
				assert.Equal(t, original, plant.LastWatered,
					"state must not change on rejected date")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.date, plant.LastWatered)
			}
		})
	}
}

func TestPlant_EnsureImage(t *testing.T) {
	t.Run("пустая картинка заменяется на картинку по умолчанию", func(t *testing.T) {
		plant := Plant{}
		plant.EnsureImage()
		assert.Contains(t, defaultImages, plant.ImageURL)
	})

	t.Run("своя картинка сохраняется", func(t *testing.T) {
		plant := Plant{ImageURL: "https://example.com/monstera.png"}
		plant.EnsureImage()
		assert.Equal(t, "https://example.com/monstera.png", plant.ImageURL)
	})
}
