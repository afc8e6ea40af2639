// Package sender реализует почтовый воркер напоминаний о поливе.
// Он потребляет сообщения из очереди брокера и рассылает письма
// через SMTP транспорт.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/lib/smtp"
	"github.com/gronskott/happyplants/internal/models"
)

// SenderService отправляет письма с напоминаниями о поливе.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendWateringReminder разбирает сообщение брокера и отправляет письмо
// владельцу растения.
func (s *SenderService) SendWateringReminder(body []byte) error {
	var reminder models.ReminderInfo
	if err := json.Unmarshal(body, &reminder); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	msg := buildReminderMessage(s.transport.GetSMTPUser(), reminder)

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			s.log.Error("failed to close SMTP client", sl.Err(closeErr))
		}
	}()

	if err = client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set mail sender", sl.Err(err))
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err = client.Rcpt(reminder.Email); err != nil {
		s.log.Error("failed to set recipient", sl.Err(err))
		return fmt.Errorf("failed to set recipient %s: %w", reminder.Email, err)
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get write closer", sl.Err(err))
		return fmt.Errorf("failed to get write closer: %w", err)
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message", sl.Err(err))
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close write closer", sl.Err(err))
		return fmt.Errorf("failed to close write closer: %w", err)
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return fmt.Errorf("failed to quit SMTP client: %w", err)
	}

	s.log.Info("email sent successfully", slog.String("to", reminder.Email))
	return nil
}

func buildReminderMessage(from string, reminder models.ReminderInfo) string {
	subject := "Напоминание о поливе растения"
	var bodyText string
	if reminder.DaysOverdue <= 0 {
		bodyText = fmt.Sprintf("Здравствуйте, %s!\n\nСегодня пора полить растение %q.",
			reminder.Username, reminder.Nickname)
	} else {
		bodyText = fmt.Sprintf("Здравствуйте, %s!\n\nРастение %q ждёт полива уже %d дн.",
			reminder.Username, reminder.Nickname, reminder.DaysOverdue)
	}

	return strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", reminder.Email),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")
}
