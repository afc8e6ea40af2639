// Package protocol описывает конверт сообщений, которыми обмениваются
// клиент и сервер. Один запрос — один ответ; тип сообщения определяет,
// какая комбинация полей конверта заполнена.
package protocol

import (
	"time"

	"github.com/gronskott/happyplants/internal/models"
)

// MessageType тег типа сообщения в конверте.
type MessageType string

// Все типы запросов, которые понимает сервер.
const (
	TypeLogin                   MessageType = "login"
	TypeRegister                MessageType = "register"
	TypeSearch                  MessageType = "search"
	TypeGetLibrary              MessageType = "getLibrary"
	TypeSavePlant               MessageType = "savePlant"
	TypeDeletePlant             MessageType = "deletePlant"
	TypeChangeNickname          MessageType = "changeNickname"
	TypeChangeLastWatered       MessageType = "changeLastWatered"
	TypeChangeWateringFrequency MessageType = "changeWateringFrequency"
	TypeChangePlantPicture      MessageType = "changePlantPicture"
	TypeUpdateIsFavorite        MessageType = "updateIsFavorite"
	TypeGetWishlist             MessageType = "getWishlist"
	TypeSavePlantWishlist       MessageType = "savePlantWishlist"
	TypeRemovePlantWishlist     MessageType = "removePlantWishlist"
	TypeGetMorePlantInfo        MessageType = "getMorePlantInfo"
	TypeChangeAllToWatered      MessageType = "changeAllToWatered"
	TypeDeleteAccount           MessageType = "deleteAccount"
	TypeChangeNotifications     MessageType = "changeNotifications"
	TypeChangeFunFacts          MessageType = "changeFunFacts"
)

// DateLayout формат дат в конверте. Даты передаются строками и
// разбираются на стороне обработчика.
const DateLayout = "2006-01-02"

// SortOption вариант сортировки результатов поиска.
type SortOption string

// Поддерживаемые сортировки.
const (
	SortByCommonName     SortOption = "commonName"
	SortByScientificName SortOption = "scientificName"
)

// Message конверт запроса и ответа.
//
// Поле Success авторитетно для ответов: наличие полезной нагрузки само
// по себе не означает успех.
type Message struct {
	Type                 MessageType          `json:"type,omitempty"`
	Success              bool                 `json:"success"`
	User                 *models.User         `json:"user,omitempty"`
	Plant                *models.Plant        `json:"plant,omitempty"`
	Plants               []models.Plant       `json:"plants,omitempty"`
	PlantDetails         *models.PlantDetails `json:"plant_details,omitempty"`
	Text                 string               `json:"text,omitempty"`
	Sort                 SortOption           `json:"sort,omitempty"`
	Date                 string               `json:"date,omitempty"`
	NewNickname          string               `json:"new_nickname,omitempty"`
	NewWateringFrequency int                  `json:"new_watering_frequency,omitempty"`
	Enabled              bool                 `json:"enabled,omitempty"`
}

// OK возвращает успешный ответ без полезной нагрузки.
func OK() Message {
	return Message{Success: true}
}

// Fail возвращает ответ-отказ без полезной нагрузки.
func Fail() Message {
	return Message{Success: false}
}

// OKWithUser возвращает успешный ответ с данными пользователя.
func OKWithUser(user models.User) Message {
	user.Password = ""
	return Message{Success: true, User: &user}
}

// OKWithPlants возвращает успешный ответ со списком растений.
func OKWithPlants(plants []models.Plant) Message {
	return Message{Success: true, Plants: plants}
}

// OKWithDetails возвращает успешный ответ со сведениями о виде.
func OKWithDetails(details models.PlantDetails) Message {
	return Message{Success: true, PlantDetails: &details}
}

// ParseDate разбирает дату конверта.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
