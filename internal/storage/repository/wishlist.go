package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gronskott/happyplants/internal/models"
)

// SaveWishlistPlant добавляет растение в список желаний пользователя.
// Описательные поля каталога сохраняются сразу, чтобы не тратить
// лимит внешнего API при каждом показе списка.
func (s *Storage) SaveWishlistPlant(ctx context.Context, userID int, plant models.Plant, details models.PlantDetails) error {
	const op = "repository.SaveWishlistPlant"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO user_wishlist (user_id, plant_id, added_date, common_name, scientific_name, family, light, water, description, image_url)
			  VALUES ($1, CAST($2 AS INTEGER), $3, $4, $5, $6, $7, $8, $9, $10)`
	if err := s.Executor.ExecuteUpdate(ctx, query,
		userID, plant.PlantID, plant.DateAdded, plant.CommonName,
		details.ScientificName, details.FamilyName, strings.Join(details.Sunlight, ", "),
		details.RecommendedWatering, details.Description, plant.ImageURL); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserWishlist возвращает список желаний пользователя.
func (s *Storage) GetUserWishlist(ctx context.Context, userID int) ([]models.Plant, error) {
	const op = "repository.GetUserWishlist"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT plant_id, added_date, common_name, scientific_name, family, light, water, description, image_url
			  FROM user_wishlist
			  WHERE user_id = $1
			  ORDER BY added_date`
	rows, err := s.Executor.ExecuteQuery(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Plant
	for rows.Next() {
		var p models.Plant
		var commonName, scientificName, family, light, water, description, imageURL sql.NullString
		if err := rows.Scan(&p.PlantID, &p.DateAdded, &commonName, &scientificName,
			&family, &light, &water, &description, &imageURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.CommonName = commonName.String
		p.ScientificName = scientificName.String
		p.Family = family.String
		p.Light = light.String
		p.Water = water.String
		p.Description = description.String
		p.ImageURL = imageURL.String
		p.EnsureImage()
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteWishlistPlant убирает растение из списка желаний.
// Используется и само по себе, и при переносе растения в библиотеку.
func (s *Storage) DeleteWishlistPlant(ctx context.Context, userID, plantID int) error {
	const op = "repository.DeleteWishlistPlant"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM user_wishlist WHERE user_id = $1 AND plant_id = $2`
	if err := s.Executor.ExecuteUpdate(ctx, query, userID, plantID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
