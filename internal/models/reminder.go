package models

// ReminderInfo описывает событие напоминания о поливе,
// публикуемое планировщиком в очередь уведомлений.
type ReminderInfo struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	DaysOverdue int    `json:"days_overdue"`
}
