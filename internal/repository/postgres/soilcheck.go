package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type soilCheckRepository struct {
	db *sql.DB
}

func NewSoilCheckRepository(db *sql.DB) repository.SoilCheckRepository {
	return &soilCheckRepository{db: db}
}

func (r *soilCheckRepository) Create(ctx context.Context, sc *domain.SoilCheck) error {
	if sc.ID == "" {
		sc.ID = uuid.New().String()
	}
	query := `INSERT INTO soil_checks (id, user_id, farm_location, crop_type, notes, status, result, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, sc.ID, sc.UserID, sc.FarmLocation, sc.CropType, sc.Notes, sc.Status, sc.Result, now, now)
	return err
}

func (r *soilCheckRepository) ListByUser(ctx context.Context, userID string) ([]domain.SoilCheck, error) {
	query := `SELECT id, user_id, farm_location, crop_type, COALESCE(notes, ''), status, COALESCE(result, ''), created_on, updated_on
	          FROM soil_checks WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []domain.SoilCheck
	for rows.Next() {
		var sc domain.SoilCheck
		if err := rows.Scan(&sc.ID, &sc.UserID, &sc.FarmLocation, &sc.CropType, &sc.Notes, &sc.Status, &sc.Result, &sc.CreatedOn, &sc.UpdatedOn); err != nil {
			return nil, err
		}
		checks = append(checks, sc)
	}
	return checks, rows.Err()
}
