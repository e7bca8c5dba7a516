package postgres

import (
	"database/sql"

	"krishisanjivni-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ToolRepository
	repository.WarehouseRepository
	repository.BookingRepository
	repository.PaymentRepository
	repository.SoilCheckRepository
	repository.ChatRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		ToolRepository:      NewToolRepository(db),
		WarehouseRepository: NewWarehouseRepository(db),
		BookingRepository:   NewBookingRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		SoilCheckRepository: NewSoilCheckRepository(db),
		ChatRepository:      NewChatRepository(db),
	}
}
