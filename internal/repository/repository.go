package repository

import (
	"context"
	"time"

	"krishisanjivni-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tool, error)
	ListAvailable(ctx context.Context, category, query string, maxPrice float64) ([]domain.Tool, error)
}

type WarehouseRepository interface {
	Create(ctx context.Context, wh *domain.Warehouse) error
	GetByID(ctx context.Context, id string) (*domain.Warehouse, error)
	Update(ctx context.Context, wh *domain.Warehouse) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Warehouse, error)

	// Storage options
	CreateStorageOption(ctx context.Context, opt *domain.StorageOption) error
	GetStorageOption(ctx context.Context, id string) (*domain.StorageOption, error)
	DeleteStorageOption(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, bookingType domain.BookingType, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, bookingType domain.BookingType, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context, bookingType domain.BookingType) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingType domain.BookingType, id string, status domain.BookingStatus, rejectionReason string) error
	Delete(ctx context.Context, bookingType domain.BookingType, id string) error
	ListAcceptedUnpaid(ctx context.Context) ([]domain.Booking, error)
}

type PaymentRepository interface {
	// Record inserts the payment row and flips the referenced booking to paid
	// inside a single transaction. A replayed gateway payment id inserts
	// nothing; the returned bool reports whether a new row was created.
	Record(ctx context.Context, p *domain.Payment) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
}

type SoilCheckRepository interface {
	Create(ctx context.Context, sc *domain.SoilCheck) error
	ListByUser(ctx context.Context, userID string) ([]domain.SoilCheck, error)
}

type ChatRepository interface {
	GetConversationBySession(ctx context.Context, sessionID string) (*domain.Conversation, error)
	CreateConversation(ctx context.Context, conv *domain.Conversation) error
	TouchConversation(ctx context.Context, id string) error
	AppendMessage(ctx context.Context, msg *domain.ChatMessage) error
	ListMessages(ctx context.Context, conversationID string) ([]domain.ChatMessage, error)
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
