// Package gateway реализует шлюз доступа к PostgreSQL: ленивое открытие
// соединения, повторное выполнение запросов при сбоях и явные границы
// транзакций для многошаговых операций.
package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB узкий срез *sql.DB, который нужен экзекьютору.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error)
}

// sqlDB адаптирует *sql.DB к интерфейсу DB: BeginTx родного типа
// возвращает конкретный *sql.Tx.
type sqlDB struct {
	*sql.DB
}

func (d sqlDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (Tx, error) {
	return d.DB.BeginTx(ctx, opts)
}

// Connector выдаёт соединение с базой и умеет его сбрасывать.
//
// Политика восстановления: после любой ошибки SQL текущее соединение
// безоговорочно закрывается и пересоздаётся при следующем обращении.
// Классы ошибок намеренно не различаются.
type Connector interface {
	DB(ctx context.Context) (DB, error)
	Reset()
}

// PgConnector ленивый коннектор к PostgreSQL поверх драйвера pgx.
type PgConnector struct {
	connString string

	mu sync.Mutex
	db *sql.DB
}

// NewPgConnector создает коннектор для строки подключения.
// Само соединение открывается при первом обращении.
func NewPgConnector(connString string) *PgConnector {
	return &PgConnector{connString: connString}
}

// DB возвращает открытое соединение, открывая его при необходимости.
func (c *PgConnector) DB(ctx context.Context) (DB, error) {
	const op = "gateway.PgConnector.DB"
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return sqlDB{c.db}, nil
	}

	db, err := sql.Open("pgx", c.connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.db = db
	return sqlDB{c.db}, nil
}

// Reset закрывает и забывает текущее соединение.
// Следующее обращение к DB откроет новое.
func (c *PgConnector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}
}
