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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Record writes the payment row and marks the booking paid in one
// transaction, so a crash between the two writes can never leave a recorded
// payment without the booking transition. The unique index on
// razorpay_payment_id makes replays a no-op insert: the booking update still
// runs (idempotent, it sets the same status) and the call reports
// created=false.
func (r *paymentRepository) Record(ctx context.Context, p *domain.Payment) (bool, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO payment_history (id, user_id, booking_id, type, amount, payment_status, transaction_id, razorpay_payment_id, razorpay_order_id, payment_date)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	           ON CONFLICT (razorpay_payment_id) DO NOTHING`
	res, err := tx.ExecContext(ctx, insert, p.ID, p.UserID, p.BookingID, p.Type, p.Amount, p.PaymentStatus, p.TransactionID, p.RazorpayPaymentID, p.RazorpayOrderID, p.PaymentDate)
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	update := fmt.Sprintf(`UPDATE %s SET status=$1, updated_on=$2 WHERE id=$3`, bookingTable(p.Type))
	res, err = tx.ExecContext(ctx, update, domain.BookingStatusPaid, time.Now(), p.BookingID)
	if err != nil {
		return false, err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if updated == 0 {
		return false, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit payment transaction: %w", err)
	}
	return inserted == 1, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `SELECT id, user_id, booking_id, type, amount, payment_status, transaction_id, razorpay_payment_id, razorpay_order_id, payment_date
	          FROM payment_history WHERE user_id = $1 ORDER BY payment_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.BookingID, &p.Type, &p.Amount, &p.PaymentStatus, &p.TransactionID, &p.RazorpayPaymentID, &p.RazorpayOrderID, &p.PaymentDate); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
