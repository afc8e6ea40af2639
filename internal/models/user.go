// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и пользовательские настройки.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
//
// Поле Password заполняется только в запросах регистрации и входа и
// никогда не сохраняется; PasswordHash никогда не сериализуется в ответ.
type User struct {
	ID                   int    `json:"id,omitempty"`                    // Уникальный числовой идентификатор
	Email                string `json:"email,omitempty"`                 // Электронная почта (уникальная)
	Username             string `json:"username,omitempty"`              // Имя пользователя (уникальное)
	Password             string `json:"password,omitempty"`              // Пароль в открытом виде, только в запросах
	PasswordHash         string `json:"-"`                               // Хэш пароля, только на сервере
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Включены ли напоминания о поливе
	FunFactsEnabled      bool   `json:"fun_facts_enabled,omitempty"`     // Включены ли интересные факты
}
