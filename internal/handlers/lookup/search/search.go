// Package search реализует обработчик поиска растений в каталоге.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// Searcher ищет растения в каталоге по тексту запроса.
type Searcher interface {
	Search(ctx context.Context, text string, sort protocol.SortOption) []models.Plant
}

// Handler обрабатывает поисковые запросы.
type Handler struct {
	log     *slog.Logger
	catalog Searcher
}

// New создает новый Handler.
func New(log *slog.Logger, catalog Searcher) *Handler {
	return &Handler{log: log, catalog: catalog}
}

// Respond возвращает найденные растения. Пустой или недоступный каталог
// даёт пустой список, а не ошибку.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.lookup.search"
	log := h.log.With(slog.String("op", op))

	text := strings.TrimSpace(req.Text)
	if text == "" {
		log.Error("empty search text")
		return protocol.Fail()
	}

	sort := req.Sort
	if sort == "" {
		sort = protocol.SortByCommonName
	}

	plants := h.catalog.Search(ctx, text, sort)

	log.Info("search finished",
		slog.String("text", text),
		slog.Int("count", len(plants)))
	return protocol.OKWithPlants(plants)
}
