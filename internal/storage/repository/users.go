package repository

import (
	"context"
	"fmt"

	"github.com/gronskott/happyplants/internal/lib/password"
	"github.com/gronskott/happyplants/internal/lib/sl"
	"github.com/gronskott/happyplants/internal/models"
)

// SaveUser сохраняет нового пользователя. Настройки уведомлений и
// интересных фактов при регистрации включены.
//
// Уникальность email и username обеспечивает база; нарушение
// ограничения приходит обычной ошибкой.
func (s *Storage) SaveUser(ctx context.Context, user models.User) error {
	const op = "repository.SaveUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, username, password_hash, notification_activated, fun_facts_activated)
			  VALUES ($1, $2, $3, $4, $5)`
	if err := s.Executor.ExecuteUpdate(ctx, query,
		user.Email, user.Username, user.PasswordHash, true, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CheckLogin проверяет пару логин/пароль. Логином служит email или
// имя пользователя. Неизвестный логин — это false без ошибки.
func (s *Storage) CheckLogin(ctx context.Context, emailOrUsername, rawPassword string) (bool, error) {
	const op = "repository.CheckLogin"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT password_hash FROM users WHERE email = $1 OR username = $1`
	rows, err := s.Executor.ExecuteQuery(ctx, query, emailOrUsername)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		return false, rows.Err()
	}
	var hash string
	if err := rows.Scan(&hash); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(hash, rawPassword); err != nil {
		return false, nil
	}
	return true, nil
}

// GetUserDetails возвращает пользователя по email или имени.
func (s *Storage) GetUserDetails(ctx context.Context, emailOrUsername string) (*models.User, error) {
	const op = "repository.GetUserDetails"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, email, notification_activated, fun_facts_activated
			  FROM users
			  WHERE email = $1 OR username = $1`
	rows, err := s.Executor.ExecuteQuery(ctx, query, emailOrUsername)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return nil, fmt.Errorf("%s: user %q not found", op, emailOrUsername)
	}
	u := &models.User{}
	if err := rows.Scan(&u.ID, &u.Username, &u.Email,
		&u.NotificationsEnabled, &u.FunFactsEnabled); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// DeleteAccount проверяет учётные данные и атомарно удаляет пользователя
// вместе с его библиотекой и списком желаний. Любой сбой внутри
// транзакции приводит к откату, база остаётся в исходном состоянии.
func (s *Storage) DeleteAccount(ctx context.Context, email, rawPassword string) error {
	const op = "repository.DeleteAccount"

	ok, err := s.CheckLogin(ctx, email, rawPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return fmt.Errorf("%s: invalid credentials", op)
	}

	if err := s.Executor.BeginTransaction(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.deleteUserRows(ctx, email); err != nil {
		if rbErr := s.Executor.RollbackTransaction(); rbErr != nil {
			s.log.Error("rollback failed", sl.Err(rbErr))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.Executor.EndTransaction(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// deleteUserRows удаляет зависимые строки и самого пользователя
// внутри уже открытой транзакции.
func (s *Storage) deleteUserRows(ctx context.Context, email string) error {
	rows, err := s.Executor.ExecuteQuery(ctx, `SELECT id FROM users WHERE email = $1`, email)
	if err != nil {
		return err
	}
	var id int
	found := rows.Next()
	if found {
		if err := rows.Scan(&id); err != nil {
			_ = rows.Close()
			return err
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no user found with email %q", email)
	}

	if err := s.Executor.ExecuteUpdate(ctx, `DELETE FROM user_wishlist WHERE user_id = $1`, id); err != nil {
		return err
	}
	if err := s.Executor.ExecuteUpdate(ctx, `DELETE FROM user_plants WHERE user_id = $1`, id); err != nil {
		return err
	}
	return s.Executor.ExecuteUpdate(ctx, `DELETE FROM users WHERE id = $1`, id)
}

// ChangeNotifications обновляет настройку напоминаний пользователя.
func (s *Storage) ChangeNotifications(ctx context.Context, email string, enabled bool) error {
	const op = "repository.ChangeNotifications"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET notification_activated = $1 WHERE email = $2`
	if err := s.Executor.ExecuteUpdate(ctx, query, enabled, email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangeFunFacts обновляет настройку интересных фактов пользователя.
func (s *Storage) ChangeFunFacts(ctx context.Context, email string, enabled bool) error {
	const op = "repository.ChangeFunFacts"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET fun_facts_activated = $1 WHERE email = $2`
	if err := s.Executor.ExecuteUpdate(ctx, query, enabled, email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
