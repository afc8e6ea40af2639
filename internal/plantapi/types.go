package plantapi

// speciesListResponse ответ каталога на поисковый запрос.
type speciesListResponse struct {
	Data []speciesEntry `json:"data"`
}

// speciesEntry одна запись каталога. В деталях вида приходит тот же
// состав полей плюс описание и рекомендации по уходу.
type speciesEntry struct {
	ID             int           `json:"id"`
	CommonName     string        `json:"common_name"`
	ScientificName []string      `json:"scientific_name"`
	Family         string        `json:"family"`
	Description    string        `json:"description"`
	Watering       string        `json:"watering"`
	Sunlight       []string      `json:"sunlight"`
	DefaultImage   *speciesImage `json:"default_image"`
}

type speciesImage struct {
	Thumbnail string `json:"thumbnail"`
}
