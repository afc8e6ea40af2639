package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gronskott/happyplants/internal/lib/sl"
)

// maxAttempts потолок повторов одного запроса.
const maxAttempts = 3

// ErrTxInProgress возвращается при попытке открыть вторую транзакцию
// на одном экзекьюторе.
var ErrTxInProgress = errors.New("transaction already in progress")

// ErrNoTx возвращается при завершении или откате несуществующей транзакции.
var ErrNoTx = errors.New("no transaction in progress")

// Tx активная транзакция экзекьютора.
type Tx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Commit() error
	Rollback() error
}

// Executor выполняет параметризованные запросы, маскируя ограниченное
// число сбоев соединения: после каждой неудачи соединение сбрасывается
// и попытка повторяется, всего до трёх попыток. Исчерпание попыток
// возвращается ошибкой с их числом, наверх она не ретраится.
//
// Транзакция открывается на весь экзекьютор; пока она активна, все
// запросы идут через неё без повторов, а дисциплина
// «один писатель на экземпляр» остаётся на совести вызывающего.
type Executor struct {
	connector Connector
	log       *slog.Logger
	tx        Tx
}

// NewExecutor создает экзекьютор поверх коннектора.
func NewExecutor(connector Connector, log *slog.Logger) *Executor {
	return &Executor{
		connector: connector,
		log:       log,
	}
}

// ExecuteUpdate выполняет запрос без результата. Успех — отсутствие ошибки.
func (e *Executor) ExecuteUpdate(ctx context.Context, query string, args ...any) error {
	const op = "gateway.Executor.ExecuteUpdate"

	if e.tx != nil {
		if _, err := e.tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := e.connector.DB(ctx)
		if err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		return nil
	}
	return fmt.Errorf("%s: failed after %d attempts: %w", op, maxAttempts, lastErr)
}

// ExecuteQuery выполняет запрос и возвращает открытый курсор.
// Вызывающий обязан закрыть его и вычитать строки сразу: курсор,
// переживший сброс соединения, не определён.
func (e *Executor) ExecuteQuery(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	const op = "gateway.Executor.ExecuteQuery"

	if e.tx != nil {
		rows, err := e.tx.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return rows, nil
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := e.connector.DB(ctx)
		if err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		return rows, nil
	}
	return nil, fmt.Errorf("%s: failed after %d attempts: %w", op, maxAttempts, lastErr)
}

// BeginTransaction открывает транзакцию. До EndTransaction или
// RollbackTransaction все запросы экзекьютора идут через неё.
func (e *Executor) BeginTransaction(ctx context.Context) error {
	const op = "gateway.Executor.BeginTransaction"

	if e.tx != nil {
		return fmt.Errorf("%s: %w", op, ErrTxInProgress)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := e.connector.DB(ctx)
		if err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			lastErr = err
			e.logAttempt(op, attempt, err)
			e.connector.Reset()
			continue
		}
		e.tx = tx
		return nil
	}
	return fmt.Errorf("%s: failed after %d attempts: %w", op, maxAttempts, lastErr)
}

// EndTransaction фиксирует активную транзакцию.
func (e *Executor) EndTransaction() error {
	const op = "gateway.Executor.EndTransaction"

	if e.tx == nil {
		return fmt.Errorf("%s: %w", op, ErrNoTx)
	}
	err := e.tx.Commit()
	e.tx = nil
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RollbackTransaction откатывает активную транзакцию.
func (e *Executor) RollbackTransaction() error {
	const op = "gateway.Executor.RollbackTransaction"

	if e.tx == nil {
		return fmt.Errorf("%s: %w", op, ErrNoTx)
	}
	err := e.tx.Rollback()
	e.tx = nil
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Executor) logAttempt(op string, attempt int, err error) {
	e.log.Error("sql failure, resetting connection",
		slog.String("op", op),
		slog.Int("attempt", attempt),
		sl.Err(err),
	)
}
