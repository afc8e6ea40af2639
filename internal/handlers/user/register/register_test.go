package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gronskott/happyplants/internal/lib/password"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRegisterHandler_Respond(t *testing.T) {
	tests := []struct {
		name        string
		user        *models.User
		saveErr     error
		wantSave    bool
		wantSuccess bool
	}{
		{
			name:        "успешная регистрация",
			user:        &models.User{Email: "ivan@example.com", Username: "ivan42", Password: "secret123"},
			wantSave:    true,
			wantSuccess: true,
		},
		{
			name:        "невалидный email",
			user:        &models.User{Email: "not-an-email", Username: "ivan42", Password: "secret123"},
			wantSuccess: false,
		},
		{
			name:        "слишком короткое имя",
			user:        &models.User{Email: "ivan@example.com", Username: "iv", Password: "secret123"},
			wantSuccess: false,
		},
		{
			name:        "слишком короткий пароль",
			user:        &models.User{Email: "ivan@example.com", Username: "ivan42", Password: "123"},
			wantSuccess: false,
		},
		{
			name:        "дубликат в базе",
			user:        &models.User{Email: "ivan@example.com", Username: "ivan42", Password: "secret123"},
			saveErr:     errors.New("duplicate key value violates unique constraint"),
			wantSave:    true,
			wantSuccess: false,
		},
		{
			name:        "запрос без пользователя",
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(UserRepositoryMock)
			if tt.wantSave {
				repoMock.On("SaveUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.Email == tt.user.Email &&
						u.Username == tt.user.Username &&
						u.PasswordHash != "" &&
						password.CompareHash(u.PasswordHash, tt.user.Password) == nil
				})).Return(tt.saveErr).Once()
			}

			handler := New(newNoopLogger(), repoMock)
			resp := handler.Respond(context.Background(), protocol.Message{
				Type: protocol.TypeRegister,
				User: tt.user,
			})

			assert.Equal(t, tt.wantSuccess, resp.Success)
			repoMock.AssertExpectations(t)
		})
	}
}
