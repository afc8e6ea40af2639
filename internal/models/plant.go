// Package models содержит доменные структуры растения из библиотеки
// и списка желаний пользователя, а также вспомогательные типы для
// обмена данными с клиентом.
package models

import (
	"errors"
	"math/rand"
	"time"
)

// ErrFutureDate возвращается при попытке установить дату полива позже текущего дня.
var ErrFutureDate = errors.New("last watered date cannot be in the future")

// defaultImages подставляются вместо отсутствующей картинки растения.
var defaultImages = []string{
	"images/default/plant_one.png",
	"images/default/plant_two.png",
	"images/default/plant_three.png",
	"images/default/plant_four.png",
}

// Plant представляет растение пользователя.
//
// Одна структура обслуживает обе витрины: библиотеку (Nickname, LastWatered,
// WateringFrequency, IsFavorite) и список желаний (DateAdded плюс описательные
// поля, закэшированные при добавлении, чтобы не дёргать внешний API повторно).
type Plant struct {
	DatabaseID        int       `json:"database_id,omitempty"`        // Идентификатор строки, присваивается сервером
	PlantID           string    `json:"plant_id,omitempty"`           // Идентификатор вида во внешнем каталоге
	CommonName        string    `json:"common_name,omitempty"`        // Обиходное название
	ScientificName    string    `json:"scientific_name,omitempty"`    // Научное название
	Nickname          string    `json:"nickname,omitempty"`           // Прозвище, уникальное внутри библиотеки пользователя
	ImageURL          string    `json:"image_url,omitempty"`          // Ссылка на картинку
	WateringFrequency int       `json:"watering_frequency,omitempty"` // Частота полива в днях, > 0
	LastWatered       time.Time `json:"last_watered,omitempty"`       // Дата последнего полива
	DateAdded         time.Time `json:"date_added,omitempty"`         // Дата добавления в список желаний
	IsFavorite        bool      `json:"is_favorite,omitempty"`        // Отмечено ли растение избранным

	// Расчётное состояние полива, заполняется при выдаче библиотеки
	// и в базе не хранится.
	WateringProgress float64 `json:"watering_progress,omitempty"`
	WateringStatus   string  `json:"watering_status,omitempty"`

	// Поля списка желаний
	Family      string `json:"family,omitempty"`
	Light       string `json:"light,omitempty"`
	Water       string `json:"water,omitempty"`
	Description string `json:"description,omitempty"`
}

// SetLastWatered устанавливает дату последнего полива.
// Дата позже now отклоняется: растение нельзя полить в будущем,
// состояние при этом не меняется.
func (p *Plant) SetLastWatered(date, now time.Time) error {
	if date.After(now) {
		return ErrFutureDate
	}
	p.LastWatered = date
	return nil
}

// EnsureImage подставляет случайную картинку по умолчанию,
// если у растения нет своей (NULL в базе или пустой ответ каталога).
func (p *Plant) EnsureImage() {
	if p.ImageURL == "" {
		p.ImageURL = defaultImages[rand.Intn(len(defaultImages))]
	}
}
