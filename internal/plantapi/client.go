// Package plantapi реализует клиент внешнего каталога растений Perenual:
// поиск видов по тексту и запрос подробностей по идентификатору вида.
package plantapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/models"
)

// premiumIDThreshold виды с идентификатором выше доступны только на
// платном тарифе каталога; запрос к ним не делается вовсе.
const premiumIDThreshold = 3000

// Client клиент каталога. Исходящие запросы придерживаются лимита
// провайдера через rate.Limiter.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient создаёт клиент каталога по настройкам.
func NewClient(cfg config.PlantAPI) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
}

// Search ищет виды по свободному тексту.
func (c *Client) Search(ctx context.Context, text string) ([]models.Plant, error) {
	const op = "plantapi.Search"

	query := fmt.Sprintf("%s/species-list?key=%s&q=%s", c.baseURL, c.apiKey, url.QueryEscape(text))
	var resp speciesListResponse
	if err := c.fetchJSON(ctx, query, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plants := make([]models.Plant, 0, len(resp.Data))
	for _, entry := range resp.Data {
		plants = append(plants, entry.toPlant())
	}
	return plants, nil
}

// Details запрашивает подробности вида. Для видов за платным тарифом
// сразу возвращается заглушка — это штатная ситуация, не ошибка.
func (c *Client) Details(ctx context.Context, plantID string) (models.PlantDetails, error) {
	const op = "plantapi.Details"

	if id, err := strconv.Atoi(plantID); err == nil && id > premiumIDThreshold {
		return models.UnknownPlantDetails(), nil
	}

	query := fmt.Sprintf("%s/species/details/%s?key=%s", c.baseURL, url.PathEscape(plantID), c.apiKey)
	var entry speciesEntry
	if err := c.fetchJSON(ctx, query, &entry); err != nil {
		return models.PlantDetails{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.PlantDetails{
		FamilyName:          entry.Family,
		ScientificName:      firstOrEmpty(entry.ScientificName),
		Description:         entry.Description,
		RecommendedWatering: entry.Watering,
		Sunlight:            entry.Sunlight,
	}, nil
}

// fetchJSON выполняет GET с учётом лимита запросов и декодирует ответ.
func (c *Client) fetchJSON(ctx context.Context, query string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

// toPlant переводит запись каталога в доменную модель.
func (e speciesEntry) toPlant() models.Plant {
	p := models.Plant{
		PlantID:        strconv.Itoa(e.ID),
		CommonName:     e.CommonName,
		ScientificName: firstOrEmpty(e.ScientificName),
	}
	if e.DefaultImage != nil {
		p.ImageURL = e.DefaultImage.Thumbnail
	}
	p.EnsureImage()
	return p
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}
