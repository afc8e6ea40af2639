package happyplants

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gronskott/happyplants/internal/dispatch"
	"github.com/gronskott/happyplants/internal/handlers/library/changealltowatered"
	"github.com/gronskott/happyplants/internal/handlers/library/changelastwatered"
	"github.com/gronskott/happyplants/internal/handlers/library/changenickname"
	"github.com/gronskott/happyplants/internal/handlers/library/changeplantpicture"
	"github.com/gronskott/happyplants/internal/handlers/library/changewateringfrequency"
	"github.com/gronskott/happyplants/internal/handlers/library/deleteplant"
	"github.com/gronskott/happyplants/internal/handlers/library/getlibrary"
	"github.com/gronskott/happyplants/internal/handlers/library/saveplant"
	"github.com/gronskott/happyplants/internal/handlers/library/updateisfavorite"
	"github.com/gronskott/happyplants/internal/handlers/lookup/getmoreplantinfo"
	"github.com/gronskott/happyplants/internal/handlers/lookup/search"
	"github.com/gronskott/happyplants/internal/handlers/user/changefunfacts"
	"github.com/gronskott/happyplants/internal/handlers/user/changenotifications"
	"github.com/gronskott/happyplants/internal/handlers/user/deleteaccount"
	"github.com/gronskott/happyplants/internal/handlers/user/login"
	"github.com/gronskott/happyplants/internal/handlers/user/register"
	"github.com/gronskott/happyplants/internal/handlers/wishlist/getwishlist"
	"github.com/gronskott/happyplants/internal/handlers/wishlist/removewishlistplant"
	"github.com/gronskott/happyplants/internal/handlers/wishlist/savewishlistplant"
	"github.com/gronskott/happyplants/internal/protocol"
	lookupservice "github.com/gronskott/happyplants/internal/services/lookup"
	"github.com/gronskott/happyplants/internal/storage/repository"
)

// buildRegistry привязывает обработчик к каждому тегу протокола.
func buildRegistry(logger *slog.Logger, db *repository.Storage, lookup *lookupservice.Service) *dispatch.Registry {
	registry := dispatch.NewRegistry(logger)

	registry.Register(protocol.TypeLogin, login.New(logger, db))
	registry.Register(protocol.TypeRegister, register.New(logger, db))
	registry.Register(protocol.TypeDeleteAccount, deleteaccount.New(logger, db))
	registry.Register(protocol.TypeChangeNotifications, changenotifications.New(logger, db))
	registry.Register(protocol.TypeChangeFunFacts, changefunfacts.New(logger, db))

	registry.Register(protocol.TypeGetLibrary, getlibrary.New(logger, db))
	registry.Register(protocol.TypeSavePlant, saveplant.New(logger, db))
	registry.Register(protocol.TypeDeletePlant, deleteplant.New(logger, db))
	registry.Register(protocol.TypeChangeNickname, changenickname.New(logger, db))
	registry.Register(protocol.TypeChangeLastWatered, changelastwatered.New(logger, db))
	registry.Register(protocol.TypeChangeWateringFrequency, changewateringfrequency.New(logger, db))
	registry.Register(protocol.TypeChangePlantPicture, changeplantpicture.New(logger, db))
	registry.Register(protocol.TypeUpdateIsFavorite, updateisfavorite.New(logger, db))
	registry.Register(protocol.TypeChangeAllToWatered, changealltowatered.New(logger, db))

	registry.Register(protocol.TypeGetWishlist, getwishlist.New(logger, db))
	registry.Register(protocol.TypeSavePlantWishlist, savewishlistplant.New(logger, db, lookup))
	registry.Register(protocol.TypeRemovePlantWishlist, removewishlistplant.New(logger, db))

	registry.Register(protocol.TypeSearch, search.New(logger, lookup))
	registry.Register(protocol.TypeGetMorePlantInfo, getmoreplantinfo.New(logger, lookup))

	return registry
}

// newAdminRouter собирает служебные маршруты: проверку живости и метрики.
func newAdminRouter(db *repository.Storage) chi.Router {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		if err := repository.CheckDatabaseReady(r.Context(), db); err != nil {
			status = "degraded"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		render.JSON(w, r, map[string]string{"status": status})
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}
