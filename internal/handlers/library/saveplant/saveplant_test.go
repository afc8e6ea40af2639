package saveplant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

type LibraryRepositoryMock struct {
	mock.Mock
}

func (m *LibraryRepositoryMock) SavePlant(ctx context.Context, userID int, plant models.Plant) error {
	args := m.Called(ctx, userID, plant)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSavePlantHandler_Respond(t *testing.T) {
	user := &models.User{ID: 3}
	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	tests := []struct {
		name        string
		req         protocol.Message
		saveErr     error
		wantSave    bool
		wantSuccess bool
	}{
		{
			name: "успешное сохранение",
			req: protocol.Message{
				Type: protocol.TypeSavePlant,
				User: user,
				Plant: &models.Plant{
					Nickname:          "Фикус",
					WateringFrequency: 7,
					LastWatered:       yesterday,
				},
			},
			wantSave:    true,
			wantSuccess: true,
		},
		{
			name: "пустая дата полива означает полив сейчас",
			req: protocol.Message{
				Type: protocol.TypeSavePlant,
				User: user,
				Plant: &models.Plant{
					Nickname:          "Монстера",
					WateringFrequency: 10,
				},
			},
			wantSave:    true,
			wantSuccess: true,
		},
		{
			name: "дата полива в будущем отклоняется",
			req: protocol.Message{
				Type: protocol.TypeSavePlant,
				User: user,
				Plant: &models.Plant{
					Nickname:          "Фикус",
					WateringFrequency: 7,
					LastWatered:       tomorrow,
				},
			},
			wantSuccess: false,
		},
		{
			name: "пустая кличка отклоняется",
			req: protocol.Message{
				Type:  protocol.TypeSavePlant,
				User:  user,
				Plant: &models.Plant{WateringFrequency: 7},
			},
			wantSuccess: false,
		},
		{
			name: "нулевая частота полива отклоняется",
			req: protocol.Message{
				Type:  protocol.TypeSavePlant,
				User:  user,
				Plant: &models.Plant{Nickname: "Фикус"},
			},
			wantSuccess: false,
		},
		{
			name: "дубликат клички в базе",
			req: protocol.Message{
				Type: protocol.TypeSavePlant,
				User: user,
				Plant: &models.Plant{
					Nickname:          "Фикус",
					WateringFrequency: 7,
					LastWatered:       yesterday,
				},
			},
			saveErr:     errors.New("duplicate key value violates unique constraint"),
			wantSave:    true,
			wantSuccess: false,
		},
		{
			name:        "запрос без растения",
			req:         protocol.Message{Type: protocol.TypeSavePlant, User: user},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(LibraryRepositoryMock)
			if tt.wantSave {
				repoMock.On("SavePlant", mock.Anything, user.ID, mock.MatchedBy(func(p models.Plant) bool {
					return p.Nickname == tt.req.Plant.Nickname &&
						!p.LastWatered.IsZero() &&
						p.ImageURL != ""
				})).Return(tt.saveErr).Once()
			}

			handler := New(newNoopLogger(), repoMock)
			resp := handler.Respond(context.Background(), tt.req)

			assert.Equal(t, tt.wantSuccess, resp.Success)
			repoMock.AssertExpectations(t)
		})
	}
}
