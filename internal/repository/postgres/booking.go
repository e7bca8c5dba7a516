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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// itemColumn returns the foreign-key column for the booking table: tool
// bookings reference a tool, warehouse bookings a storage option.
func itemColumn(t domain.BookingType) string {
	if t == domain.BookingTypeWarehouse {
		return "storage_option_id"
	}
	return "tool_id"
}

func bookingTable(t domain.BookingType) string {
	if t == domain.BookingTypeWarehouse {
		return "warehouse_bookings"
	}
	return "tool_bookings"
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	if b.Type == domain.BookingTypeWarehouse {
		query := `INSERT INTO warehouse_bookings (id, user_id, storage_option_id, sqft, start_date, end_date, total_cost, status, created_on, updated_on)
		          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		_, err := r.db.ExecContext(ctx, query, b.ID, b.UserID, b.ItemID, b.Sqft, b.StartDate, b.EndDate, b.TotalCost, b.Status, now, now)
		return err
	}
	query := `INSERT INTO tool_bookings (id, user_id, tool_id, start_date, end_date, total_cost, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.UserID, b.ItemID, b.StartDate, b.EndDate, b.TotalCost, b.Status, now, now)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, t domain.BookingType, id string) (*domain.Booking, error) {
	b := &domain.Booking{Type: t}
	if t == domain.BookingTypeWarehouse {
		query := `SELECT id, user_id, storage_option_id, sqft, start_date, end_date, total_cost, status, COALESCE(rejection_reason, ''), created_on, updated_on
		          FROM warehouse_bookings WHERE id = $1`
		err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.ItemID, &b.Sqft, &b.StartDate, &b.EndDate, &b.TotalCost, &b.Status, &b.RejectionReason, &b.CreatedOn, &b.UpdatedOn)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	query := `SELECT id, user_id, tool_id, start_date, end_date, total_cost, status, COALESCE(rejection_reason, ''), created_on, updated_on
	          FROM tool_bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.ItemID, &b.StartDate, &b.EndDate, &b.TotalCost, &b.Status, &b.RejectionReason, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, t domain.BookingType, userID string) ([]domain.Booking, error) {
	var query string
	if t == domain.BookingTypeWarehouse {
		query = `SELECT b.id, b.user_id, b.storage_option_id, b.sqft, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on,
		                w.name || ' (' || o.storage_type || ')'
		         FROM warehouse_bookings b
		         JOIN warehouse_storage_options o ON o.id = b.storage_option_id
		         JOIN warehouses w ON w.id = o.warehouse_id
		         WHERE b.user_id = $1 ORDER BY b.created_on DESC`
	} else {
		query = `SELECT b.id, b.user_id, b.tool_id, 0, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on,
		                t.name
		         FROM tool_bookings b
		         JOIN tools t ON t.id = b.tool_id
		         WHERE b.user_id = $1 ORDER BY b.created_on DESC`
	}
	return r.queryBookings(ctx, t, query, false, userID)
}

func (r *bookingRepository) ListAll(ctx context.Context, t domain.BookingType) ([]domain.Booking, error) {
	var query string
	if t == domain.BookingTypeWarehouse {
		query = `SELECT b.id, b.user_id, b.storage_option_id, b.sqft, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on,
		                w.name || ' (' || o.storage_type || ')', u.full_name
		         FROM warehouse_bookings b
		         JOIN warehouse_storage_options o ON o.id = b.storage_option_id
		         JOIN warehouses w ON w.id = o.warehouse_id
		         JOIN users u ON u.id = b.user_id
		         ORDER BY b.created_on DESC`
	} else {
		query = `SELECT b.id, b.user_id, b.tool_id, 0, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on,
		                t.name, u.full_name
		         FROM tool_bookings b
		         JOIN tools t ON t.id = b.tool_id
		         JOIN users u ON u.id = b.user_id
		         ORDER BY b.created_on DESC`
	}
	return r.queryBookings(ctx, t, query, true)
}

func (r *bookingRepository) queryBookings(ctx context.Context, t domain.BookingType, query string, withBooker bool, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{Type: t}
		dest := []any{&b.ID, &b.UserID, &b.ItemID, &b.Sqft, &b.StartDate, &b.EndDate, &b.TotalCost, &b.Status, &b.RejectionReason, &b.CreatedOn, &b.UpdatedOn, &b.ItemName}
		if withBooker {
			dest = append(dest, &b.BookerName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, t domain.BookingType, id string, status domain.BookingStatus, rejectionReason string) error {
	query := fmt.Sprintf(`UPDATE %s SET status=$1, rejection_reason=$2, updated_on=$3 WHERE id=$4`, bookingTable(t))
	res, err := r.db.ExecContext(ctx, query, status, rejectionReason, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, t domain.BookingType, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, bookingTable(t))
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAcceptedUnpaid returns accepted bookings across both tables, used by
// the payment reminder job.
func (r *bookingRepository) ListAcceptedUnpaid(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT b.id, b.user_id, b.tool_id, 0, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on, t.name, 'tool'
	          FROM tool_bookings b JOIN tools t ON t.id = b.tool_id
	          WHERE b.status = 'accepted'
	          UNION ALL
	          SELECT b.id, b.user_id, b.storage_option_id, b.sqft, b.start_date, b.end_date, b.total_cost, b.status, COALESCE(b.rejection_reason, ''), b.created_on, b.updated_on,
	                 w.name || ' (' || o.storage_type || ')', 'warehouse'
	          FROM warehouse_bookings b
	          JOIN warehouse_storage_options o ON o.id = b.storage_option_id
	          JOIN warehouses w ON w.id = o.warehouse_id
	          WHERE b.status = 'accepted'`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.ItemID, &b.Sqft, &b.StartDate, &b.EndDate, &b.TotalCost, &b.Status, &b.RejectionReason, &b.CreatedOn, &b.UpdatedOn, &b.ItemName, &b.Type); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
