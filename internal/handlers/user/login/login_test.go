package login

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) CheckLogin(ctx context.Context, emailOrUsername, rawPassword string) (bool, error) {
	args := m.Called(ctx, emailOrUsername, rawPassword)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) GetUserDetails(ctx context.Context, emailOrUsername string) (*models.User, error) {
	args := m.Called(ctx, emailOrUsername)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler_Respond(t *testing.T) {
	storedUser := &models.User{
		ID:                   7,
		Email:                "lena@example.com",
		Username:             "lena",
		NotificationsEnabled: true,
	}

	tests := []struct {
		name        string
		req         protocol.Message
		checkResult bool
		checkErr    error
		detailsUser *models.User
		detailsErr  error
		wantSuccess bool
	}{
		{
			name: "успешный вход",
			req: protocol.Message{
				Type: protocol.TypeLogin,
				User: &models.User{Email: "lena@example.com", Password: "secret123"},
			},
			checkResult: true,
			detailsUser: storedUser,
			wantSuccess: true,
		},
		{
			name: "неверный пароль",
			req: protocol.Message{
				Type: protocol.TypeLogin,
				User: &models.User{Email: "lena@example.com", Password: "wrong"},
			},
			checkResult: false,
			wantSuccess: false,
		},
		{
			name: "неизвестный логин",
			req: protocol.Message{
				Type: protocol.TypeLogin,
				User: &models.User{Email: "nobody@example.com", Password: "secret123"},
			},
			checkResult: false,
			wantSuccess: false,
		},
		{
			name: "ошибка хранилища",
			req: protocol.Message{
				Type: protocol.TypeLogin,
				User: &models.User{Email: "lena@example.com", Password: "secret123"},
			},
			checkErr:    errors.New("connection reset"),
			wantSuccess: false,
		},
		{
			name:        "запрос без пользователя",
			req:         protocol.Message{Type: protocol.TypeLogin},
			wantSuccess: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoMock := new(UserRepositoryMock)
			if tt.req.User != nil {
				repoMock.On("CheckLogin", mock.Anything, tt.req.User.Email, tt.req.User.Password).
					Return(tt.checkResult, tt.checkErr).Once()
				if tt.checkResult && tt.checkErr == nil {
					repoMock.On("GetUserDetails", mock.Anything, tt.req.User.Email).
						Return(tt.detailsUser, tt.detailsErr).Once()
				}
			}

			handler := New(newNoopLogger(), repoMock)
			resp := handler.Respond(context.Background(), tt.req)

			assert.Equal(t, tt.wantSuccess, resp.Success)
			if tt.wantSuccess {
				assert.NotNil(t, resp.User)
				assert.Equal(t, storedUser.ID, resp.User.ID)
				assert.Empty(t, resp.User.Password, "password must never leave the server")
				assert.Empty(t, resp.User.PasswordHash)
			}
		})
	}
}
