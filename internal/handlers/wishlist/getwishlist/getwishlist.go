// Package getwishlist реализует обработчик получения списка желаний
// пользователя.
package getwishlist

import (
	"context"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// WishlistRepository описывает контракт работы со списком желаний.
type WishlistRepository interface {
	GetUserWishlist(ctx context.Context, userID int) ([]models.Plant, error)
}

// Handler обрабатывает запросы списка желаний.
type Handler struct {
	log      *slog.Logger
	wishlist WishlistRepository
}

// New создает новый Handler.
func New(log *slog.Logger, wishlist WishlistRepository) *Handler {
	return &Handler{log: log, wishlist: wishlist}
}

// Respond возвращает список желаний в порядке добавления.
func (h *Handler) Respond(ctx context.Context, req protocol.Message) protocol.Message {
	const op = "handlers.wishlist.getwishlist"
	log := h.log.With(slog.String("op", op))

	if req.User == nil {
		log.Error("request without user payload")
		return protocol.Fail()
	}

	plants, err := h.wishlist.GetUserWishlist(ctx, req.User.ID)
	if err != nil {
		log.Error("failed to load wishlist", sl.Err(err))
		return protocol.Fail()
	}

	log.Info("wishlist loaded",
		slog.Int("user_id", req.User.ID),
		slog.Int("count", len(plants)))
	return protocol.OKWithPlants(plants)
}
