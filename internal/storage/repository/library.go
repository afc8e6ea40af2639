package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gronskott/happyplants/internal/models"
)

// SavePlant вставляет растение в библиотеку пользователя.
// Уникальность прозвища внутри библиотеки обеспечивает база.
func (s *Storage) SavePlant(ctx context.Context, userID int, plant models.Plant) error {
	const op = "repository.SavePlant"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO user_plants (user_id, nickname, plant_id, last_watered, image_url, watering_frequency, is_favorite)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if err := s.Executor.ExecuteUpdate(ctx, query,
		userID, plant.Nickname, plant.PlantID, plant.LastWatered,
		plant.ImageURL, plant.WateringFrequency, plant.IsFavorite); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserLibrary возвращает все растения из библиотеки пользователя.
func (s *Storage) GetUserLibrary(ctx context.Context, userID int) ([]models.Plant, error) {
	const op = "repository.GetUserLibrary"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nickname, plant_id, last_watered, image_url, watering_frequency, is_favorite
			  FROM user_plants
			  WHERE user_id = $1
			  ORDER BY nickname`
	rows, err := s.Executor.ExecuteQuery(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Plant
	for rows.Next() {
		plant, err := scanLibraryPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, plant)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlant возвращает растение по прозвищу, nil если такого нет.
func (s *Storage) GetPlant(ctx context.Context, userID int, nickname string) (*models.Plant, error) {
	const op = "repository.GetPlant"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nickname, plant_id, last_watered, image_url, watering_frequency, is_favorite
			  FROM user_plants
			  WHERE user_id = $1 AND nickname = $2`
	rows, err := s.Executor.ExecuteQuery(ctx, query, userID, nickname)
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
		return nil, nil
	}
	plant, err := scanLibraryPlant(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &plant, nil
}

// scanLibraryPlant читает одну строку библиотеки. Отсутствующая
// картинка остаётся пустой строкой, модель подставит заглушку сама.
func scanLibraryPlant(rows *sql.Rows) (models.Plant, error) {
	var p models.Plant
	var imageURL sql.NullString
	if err := rows.Scan(&p.DatabaseID, &p.Nickname, &p.PlantID, &p.LastWatered,
		&imageURL, &p.WateringFrequency, &p.IsFavorite); err != nil {
		return models.Plant{}, err
	}
	p.ImageURL = imageURL.String
	p.EnsureImage()
	return p, nil
}

// DeletePlant удаляет растение из библиотеки по прозвищу.
func (s *Storage) DeletePlant(ctx context.Context, userID int, nickname string) error {
	const op = "repository.DeletePlant"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM user_plants WHERE user_id = $1 AND nickname = $2`
	if err := s.Executor.ExecuteUpdate(ctx, query, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangeLastWatered обновляет дату последнего полива растения.
func (s *Storage) ChangeLastWatered(ctx context.Context, userID int, nickname string, date time.Time) error {
	const op = "repository.ChangeLastWatered"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET last_watered = $1 WHERE user_id = $2 AND nickname = $3`
	if err := s.Executor.ExecuteUpdate(ctx, query, date, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangeNickname переименовывает растение в библиотеке.
func (s *Storage) ChangeNickname(ctx context.Context, userID int, nickname, newNickname string) error {
	const op = "repository.ChangeNickname"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET nickname = $1 WHERE user_id = $2 AND nickname = $3`
	if err := s.Executor.ExecuteUpdate(ctx, query, newNickname, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangeAllToWatered помечает все растения пользователя политыми сегодня.
func (s *Storage) ChangeAllToWatered(ctx context.Context, userID int) error {
	const op = "repository.ChangeAllToWatered"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET last_watered = CURRENT_DATE WHERE user_id = $1`
	if err := s.Executor.ExecuteUpdate(ctx, query, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ChangePlantPicture обновляет картинку растения.
func (s *Storage) ChangePlantPicture(ctx context.Context, userID int, nickname, imageURL string) error {
	const op = "repository.ChangePlantPicture"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET image_url = $1 WHERE user_id = $2 AND nickname = $3`
	if err := s.Executor.ExecuteUpdate(ctx, query, imageURL, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateWateringFrequency обновляет частоту полива растения.
func (s *Storage) UpdateWateringFrequency(ctx context.Context, userID int, nickname string, frequency int) error {
	const op = "repository.UpdateWateringFrequency"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET watering_frequency = $1 WHERE user_id = $2 AND nickname = $3`
	if err := s.Executor.ExecuteUpdate(ctx, query, frequency, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateIsFavorite переключает флаг избранного у растения.
func (s *Storage) UpdateIsFavorite(ctx context.Context, userID int, nickname string, favorite bool) error {
	const op = "repository.UpdateIsFavorite"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_plants SET is_favorite = $1 WHERE user_id = $2 AND nickname = $3`
	if err := s.Executor.ExecuteUpdate(ctx, query, favorite, userID, nickname); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// FindPlantsDueForWatering находит растения, которые пора поливать,
// у пользователей с включёнными напоминаниями.
func (s *Storage) FindPlantsDueForWatering(ctx context.Context) ([]models.ReminderInfo, error) {
	const op = "repository.FindPlantsDueForWatering"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.email, u.username, p.nickname,
			      (CURRENT_DATE - p.last_watered::DATE) - p.watering_frequency AS days_overdue
			  FROM user_plants p
			  JOIN users u ON u.id = p.user_id
			  WHERE u.notification_activated
			    AND p.last_watered::DATE + p.watering_frequency <= CURRENT_DATE`
	rows, err := s.Executor.ExecuteQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.ReminderInfo
	for rows.Next() {
		var info models.ReminderInfo
		if err := rows.Scan(&info.Email, &info.Username, &info.Nickname, &info.DaysOverdue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, info)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
