// Package repository реализует хранилище данных на основе PostgreSQL
// для библиотеки растений, списка желаний и учётных записей пользователей.
// Запросы идут через шлюз gateway, который маскирует кратковременные
// сбои соединения; сами методы возвращают доменное значение или ошибку,
// превращать её в ответ — дело обработчиков.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gronskott/happyplants/internal/storage/gateway"
)

// Storage инкапсулирует шлюз запросов к базе данных.
type Storage struct {
	Executor *gateway.Executor
	log      *slog.Logger
}

// New создает хранилище поверх готового экзекьютора.
func New(executor *gateway.Executor, log *slog.Logger) *Storage {
	return &Storage{
		Executor: executor,
		log:      log,
	}
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(ctx context.Context, storage *Storage) error {
	rows, err := storage.Executor.ExecuteQuery(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`)
	if err != nil {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var exists bool
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return fmt.Errorf("required table users missing or query error: %w", err)
		}
	}
	if !exists {
		return fmt.Errorf("required table users missing")
	}
	return rows.Err()
}
