// Package getmoreplantinfo реализует обработчик получения подробностей
// о виде растения.
package getmoreplantinfo

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// DetailsProvider отдаёт подробности о виде растения по его идентификатору.
type DetailsProvider interface {
	Details(ctx context.Context, plantID string) models.PlantDetails
}

// Handler обрабатывает запросы подробностей о растении.
type Handler struct {
	log     *slog.Logger
	catalog DetailsProvider
}

// New создает новый Handler.
func New(log *slog.Logger, catalog DetailsProvider) *Handler {
	return &Handler{log: log, catalog: catalog}
}

// Respond возвращает подробности о виде. Для недоступных видов
// возвращается заглушка, запрос при этом считается успешным.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.lookup.getmoreplantinfo"
	log := h.log.With(slog.String("op", op))

	if req.Plant == nil {
		log.Error("request without plant payload")
		return protocol.Fail()
	}

	details := h.catalog.Details(ctx, req.Plant.PlantID)

	log.Info("plant details loaded", slog.String("plant_id", req.Plant.PlantID))
	return protocol.OKWithDetails(details)
}
