// Package lookup содержит бизнес-логику поиска по внешнему каталогу
// растений: кэширование результатов поиска, сортировку и деградацию
// при недоступности каталога.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
	"github.com/gronskott/happyplants/internal/protocol"
)

// searchTTL время жизни закэшированного результата поиска.
const searchTTL = time.Hour

// Catalog описывает клиент внешнего каталога растений.
type Catalog interface {
	// Search ищет виды по свободному тексту.
	Search(ctx context.Context, text string) ([]models.Plant, error)
	// Details возвращает подробности вида по его идентификатору.
	Details(ctx context.Context, plantID string) (models.PlantDetails, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Service отвечает на поисковые запросы клиента.
//
// Отказ каталога никогда не поднимается выше: поиск деградирует до
// пустого списка, подробности — до заглушки. Подробности вида не
// кэшируются, живут один ответ.
type Service struct {
	catalog Catalog
	cache   Cache
	log     *slog.Logger
}

// New создает новый Service.
func New(catalog Catalog, cache Cache, log *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		cache:   cache,
		log:     log,
	}
}

// Search возвращает отсортированный список найденных видов.
// Промахи, ошибки кэша и ошибки каталога логируются, не возвращаются.
func (s *Service) Search(ctx context.Context, text string, sort protocol.SortOption) []models.Plant {
	cacheKey := fmt.Sprintf("search:%s:%s", strings.ToLower(text), sort)

	var cached []models.Plant
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read search cache", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return cached
	}

	plants, err := s.catalog.Search(ctx, text)
	if err != nil {
		s.log.Error("plant catalog search failed", slog.String("text", text), sl.Err(err))
		return []models.Plant{}
	}
	sortPlants(plants, sort)

	if err := s.cache.Set(cacheKey, plants, searchTTL); err != nil {
		s.log.Warn("failed to cache search result", slog.String("key", cacheKey), sl.Err(err))
	}
	return plants
}

// Details возвращает подробности вида либо заглушку, если каталог
// недоступен или ответ не разобрался.
func (s *Service) Details(ctx context.Context, plantID string) models.PlantDetails {
	details, err := s.catalog.Details(ctx, plantID)
	if err != nil {
		s.log.Error("plant catalog details failed", slog.String("plant_id", plantID), sl.Err(err))
		return models.UnknownPlantDetails()
	}
	return details
}

func sortPlants(plants []models.Plant, sort protocol.SortOption) {
	switch sort {
	case protocol.SortByScientificName:
		slices.SortFunc(plants, func(a, b models.Plant) int {
			return strings.Compare(strings.ToLower(a.ScientificName), strings.ToLower(b.ScientificName))
		})
	default:
		slices.SortFunc(plants, func(a, b models.Plant) int {
			return strings.Compare(strings.ToLower(a.CommonName), strings.ToLower(b.CommonName))
		})
	}
}
