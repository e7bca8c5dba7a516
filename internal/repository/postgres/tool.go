package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `id, name, description, category, image_url, price_per_day, price_per_month, price_per_season, availability, location, created_on, updated_on`

func scanTool(row interface{ Scan(...any) error }) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.ImageURL, &t.PricePerDay, &t.PricePerMonth, &t.PricePerSeason, &t.Availability, &t.Location, &t.CreatedOn, &t.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `INSERT INTO tools (id, name, description, category, image_url, price_per_day, price_per_month, price_per_season, availability, location, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Description, t.Category, t.ImageURL, t.PricePerDay, t.PricePerMonth, t.PricePerSeason, t.Availability, t.Location, now, now)
	return err
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return scanTool(r.db.QueryRowContext(ctx, query, id))
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, category=$3, image_url=$4, price_per_day=$5, price_per_month=$6, price_per_season=$7, availability=$8, location=$9, updated_on=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.Category, t.ImageURL, t.PricePerDay, t.PricePerMonth, t.PricePerSeason, t.Availability, t.Location, time.Now(), t.ID)
	return err
}

func (r *toolRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	return err
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools ORDER BY created_on DESC`
	return r.queryTools(ctx, query)
}

func (r *toolRepository) ListAvailable(ctx context.Context, category, search string, maxPrice float64) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE availability = true`
	args := []interface{}{}
	argIdx := 1

	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
	}
	if maxPrice > 0 {
		query += fmt.Sprintf(" AND price_per_day <= $%d", argIdx)
		args = append(args, maxPrice)
		argIdx++
	}
	query += " ORDER BY created_on DESC"

	return r.queryTools(ctx, query, args...)
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...interface{}) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}
