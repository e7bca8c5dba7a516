package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisanjivni-backend/internal/domain"
)

func testPayment() *domain.Payment {
	return &domain.Payment{
		UserID:            "u1",
		BookingID:         "b1",
		Type:              domain.BookingTypeTool,
		Amount:            1500,
		PaymentStatus:     domain.PaymentStatusPaid,
		TransactionID:     "pay_123",
		RazorpayPaymentID: "pay_123",
		RazorpayOrderID:   "order_456",
	}
}

func TestPaymentRepository_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("First Recording", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPaymentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO payment_history").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE tool_bookings SET status").
			WithArgs(domain.BookingStatusPaid, sqlmock.AnyArg(), "b1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.Record(ctx, testPayment())

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Replay Inserts Nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPaymentRepository(db)

		mock.ExpectBegin()
		// ON CONFLICT DO NOTHING: zero rows for a duplicate payment id.
		mock.ExpectExec("INSERT INTO payment_history").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("UPDATE tool_bookings SET status").
			WithArgs(domain.BookingStatusPaid, sqlmock.AnyArg(), "b1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.Record(ctx, testPayment())

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Booking Rolls Back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPaymentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO payment_history").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE tool_bookings SET status").
			WithArgs(domain.BookingStatusPaid, sqlmock.AnyArg(), "b1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err = repo.Record(ctx, testPayment())

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Warehouse Booking Targets Warehouse Table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewPaymentRepository(db)

		p := testPayment()
		p.Type = domain.BookingTypeWarehouse

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO payment_history").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE warehouse_bookings SET status").
			WithArgs(domain.BookingStatusPaid, sqlmock.AnyArg(), "b1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		created, err := repo.Record(ctx, p)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepository(db)

	paid := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "booking_id", "type", "amount", "payment_status",
		"transaction_id", "razorpay_payment_id", "razorpay_order_id", "payment_date",
	}).AddRow("p1", "u1", "b1", "tool", 1500.0, "paid", "pay_123", "pay_123", "order_456", paid)

	mock.ExpectQuery("SELECT (.+) FROM payment_history WHERE user_id").
		WithArgs("u1").
		WillReturnRows(rows)

	payments, err := repo.ListByUser(context.Background(), "u1")

	assert.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay_123", payments[0].RazorpayPaymentID)
	assert.Equal(t, domain.BookingTypeTool, payments[0].Type)
	assert.Equal(t, paid, payments[0].PaymentDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
