package sender

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gronskott/happyplants/internal/lib/smtp"
	"github.com/gronskott/happyplants/internal/models"
)

type TransportMock struct {
	mock.Mock
}

func (m *TransportMock) Connect() (smtp.Client, error) {
	args := m.Called()
	client, _ := args.Get(0).(smtp.Client)
	return client, args.Error(1)
}

func (m *TransportMock) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

type ClientMock struct {
	mock.Mock
	body bytes.Buffer
}

func (m *ClientMock) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *ClientMock) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	return nopWriteCloser{&m.body}, args.Error(0)
}

func (m *ClientMock) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ClientMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSendWateringReminder(t *testing.T) {
	reminder := models.ReminderInfo{
		Email:       "lena@example.com",
		Username:    "lena",
		Nickname:    "Фикус",
		DaysOverdue: 3,
	}
	body, err := json.Marshal(reminder)
	require.NoError(t, err)

	clientMock := new(ClientMock)
	clientMock.On("Mail", "noreply@happyplants.dev").Return(nil).Once()
	clientMock.On("Rcpt", "lena@example.com").Return(nil).Once()
	clientMock.On("Data").Return(nil).Once()
	clientMock.On("Quit").Return(nil).Once()
	clientMock.On("Close").Return(nil).Once()

	transportMock := new(TransportMock)
	transportMock.On("GetSMTPUser").Return("noreply@happyplants.dev")
	transportMock.On("Connect").Return(clientMock, nil).Once()

	service := NewSenderService(transportMock, newNoopLogger())
	err = service.SendWateringReminder(body)

	require.NoError(t, err)
	clientMock.AssertExpectations(t)

	msg := clientMock.body.String()
	assert.Contains(t, msg, "To: lena@example.com")
	assert.Contains(t, msg, "Фикус")
	assert.Contains(t, msg, "3 дн.")
}

func TestSendWateringReminder_BadPayload(t *testing.T) {
	transportMock := new(TransportMock)
	transportMock.On("GetSMTPUser").Return("noreply@happyplants.dev")

	service := NewSenderService(transportMock, newNoopLogger())
	err := service.SendWateringReminder([]byte("not a json"))

	require.Error(t, err)
	transportMock.AssertNotCalled(t, "Connect")
}

func TestSendWateringReminder_ConnectFailure(t *testing.T) {
	reminder := models.ReminderInfo{Email: "lena@example.com", Username: "lena", Nickname: "Фикус"}
	body, err := json.Marshal(reminder)
	require.NoError(t, err)

	transportMock := new(TransportMock)
	transportMock.On("GetSMTPUser").Return("noreply@happyplants.dev")
	transportMock.On("Connect").Return(nil, errors.New("dial tcp: connection refused")).Once()

	service := NewSenderService(transportMock, newNoopLogger())
	err = service.SendWateringReminder(body)

	require.Error(t, err)
}
