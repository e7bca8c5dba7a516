package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type warehouseRepository struct {
	db *sql.DB
}

func NewWarehouseRepository(db *sql.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	query := `INSERT INTO warehouses (id, name, location, description, image_url, capacity_sqft, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Name, w.Location, w.Description, w.ImageURL, w.CapacitySqft, now, now)
	return err
}

func (r *warehouseRepository) GetByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	w := &domain.Warehouse{}
	query := `SELECT id, name, location, description, image_url, capacity_sqft, created_on, updated_on FROM warehouses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.Location, &w.Description, &w.ImageURL, &w.CapacitySqft, &w.CreatedOn, &w.UpdatedOn)
	if err != nil {
		return nil, err
	}
	opts, err := r.listStorageOptions(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.StorageOptions = opts
	return w, nil
}

func (r *warehouseRepository) Update(ctx context.Context, w *domain.Warehouse) error {
	query := `UPDATE warehouses SET name=$1, location=$2, description=$3, image_url=$4, capacity_sqft=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, w.Name, w.Location, w.Description, w.ImageURL, w.CapacitySqft, time.Now(), w.ID)
	return err
}

func (r *warehouseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	return err
}

func (r *warehouseRepository) List(ctx context.Context) ([]domain.Warehouse, error) {
	query := `SELECT id, name, location, description, image_url, capacity_sqft, created_on, updated_on FROM warehouses ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Description, &w.ImageURL, &w.CapacitySqft, &w.CreatedOn, &w.UpdatedOn); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Attach storage options per warehouse
	for i := range warehouses {
		opts, err := r.listStorageOptions(ctx, warehouses[i].ID)
		if err != nil {
			return nil, err
		}
		warehouses[i].StorageOptions = opts
	}
	return warehouses, nil
}

func (r *warehouseRepository) CreateStorageOption(ctx context.Context, opt *domain.StorageOption) error {
	if opt.ID == "" {
		opt.ID = uuid.New().String()
	}
	query := `INSERT INTO warehouse_storage_options (id, warehouse_id, storage_type, price_per_sqft_day, price_per_sqft_month)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.WarehouseID, opt.StorageType, opt.PricePerSqftDay, opt.PricePerSqftMonth)
	return err
}

func (r *warehouseRepository) GetStorageOption(ctx context.Context, id string) (*domain.StorageOption, error) {
	opt := &domain.StorageOption{}
	query := `SELECT id, warehouse_id, storage_type, price_per_sqft_day, price_per_sqft_month FROM warehouse_storage_options WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&opt.ID, &opt.WarehouseID, &opt.StorageType, &opt.PricePerSqftDay, &opt.PricePerSqftMonth)
	if err != nil {
		return nil, err
	}
	return opt, nil
}

func (r *warehouseRepository) DeleteStorageOption(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM warehouse_storage_options WHERE id = $1`, id)
	return err
}

func (r *warehouseRepository) listStorageOptions(ctx context.Context, warehouseID string) ([]domain.StorageOption, error) {
	query := `SELECT id, warehouse_id, storage_type, price_per_sqft_day, price_per_sqft_month FROM warehouse_storage_options WHERE warehouse_id = $1 ORDER BY storage_type`
	rows, err := r.db.QueryContext(ctx, query, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []domain.StorageOption
	for rows.Next() {
		var o domain.StorageOption
		if err := rows.Scan(&o.ID, &o.WarehouseID, &o.StorageType, &o.PricePerSqftDay, &o.PricePerSqftMonth); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
