// Package reminder реализует планировщик напоминаний о поливе.
// Раз в сутки он находит растения, которые пора полить, и публикует
// напоминания в брокер для почтового воркера.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/rabbitmq"
)

// LibraryRepository описывает поиск растений, нуждающихся в поливе.
type LibraryRepository interface {
	FindPlantsDueForWatering(ctx context.Context) ([]models.ReminderInfo, error)
}

// SchedulerService периодически публикует напоминания о поливе.
type SchedulerService struct {
	repo LibraryRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo LibraryRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindPlantsToWater раз в сутки ищет растения с просроченным поливом
// и публикует напоминание на каждое из них.
func (s *SchedulerService) FindPlantsToWater(ctx context.Context, channel *amqp.Channel) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.log.Info("starting service to find plants due for watering")
			reminders, err := s.repo.FindPlantsDueForWatering(ctx)
			if err != nil {
				s.log.Error("failed to find plants due for watering", sl.Err(err))
			}
			for _, reminder := range reminders {
				err = rabbitmq.PublishJSON(channel, "watering", reminder)
				if err != nil {
					s.log.Error("failed to publish reminder", sl.Err(err))
				}
			}
		}
	}
}
