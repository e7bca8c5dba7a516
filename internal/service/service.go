package service

import (
	"context"
	"errors"
	"time"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/upstream"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("permission denied")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSignature   = errors.New("payment signature verification failed")
	ErrBookingNotPayable  = errors.New("booking is not awaiting payment")
	ErrBookingDecided     = errors.New("booking has already been decided")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrToolUnavailable    = errors.New("tool is not available for booking")
)

type AuthService interface {
	Signup(ctx context.Context, fullName, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, phone string) (*domain.User, error)
}

type ToolService interface {
	ListAvailable(ctx context.Context, category, query string, maxPrice float64) ([]domain.Tool, error)
	Get(ctx context.Context, id string) (*domain.Tool, error)
	ListAll(ctx context.Context) ([]domain.Tool, error)
	Add(ctx context.Context, tool *domain.Tool) error
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
}

type WarehouseService interface {
	List(ctx context.Context) ([]domain.Warehouse, error)
	Get(ctx context.Context, id string) (*domain.Warehouse, error)
	Add(ctx context.Context, wh *domain.Warehouse) error
	Update(ctx context.Context, wh *domain.Warehouse) error
	Delete(ctx context.Context, id string) error
	AddStorageOption(ctx context.Context, opt *domain.StorageOption) error
	RemoveStorageOption(ctx context.Context, id string) error
}

type BookingService interface {
	CreateToolBooking(ctx context.Context, userID, toolID string, start, end time.Time) (*domain.Booking, error)
	CreateWarehouseBooking(ctx context.Context, userID, storageOptionID string, start, end time.Time, sqft float64) (*domain.Booking, error)
	ListMine(ctx context.Context, bookingType domain.BookingType, userID string) ([]domain.Booking, error)
	// Cancel removes the caller's own booking while it is still pending.
	Cancel(ctx context.Context, userID string, bookingType domain.BookingType, id string) error
	ListAll(ctx context.Context, bookingType domain.BookingType) ([]domain.Booking, error)
	Accept(ctx context.Context, bookingType domain.BookingType, id string) (*domain.Booking, error)
	Reject(ctx context.Context, bookingType domain.BookingType, id, reason string) (*domain.Booking, error)
}

// RecordPaymentInput carries the gateway callback fields the client relays
// after a successful checkout.
type RecordPaymentInput struct {
	BookingID         string
	Type              domain.BookingType
	RazorpayPaymentID string
	RazorpayOrderID   string
	RazorpaySignature string
}

type PaymentService interface {
	CreateOrder(ctx context.Context, userID string, bookingType domain.BookingType, bookingID string) (*upstream.RazorpayOrder, error)
	// RecordPayment verifies the gateway signature, persists the payment and
	// marks the booking paid. The bool reports whether a new payment row was
	// created; a replay of an already recorded payment returns false with no
	// error.
	RecordPayment(ctx context.Context, userID string, in RecordPaymentInput) (*domain.Payment, bool, error)
	ListMine(ctx context.Context, userID string) ([]domain.Payment, error)
}

type SoilCheckService interface {
	Request(ctx context.Context, userID, farmLocation, cropType, notes string) (*domain.SoilCheck, error)
	ListMine(ctx context.Context, userID string) ([]domain.SoilCheck, error)
}

type MarketService interface {
	DailyPrices(ctx context.Context) ([]domain.MarketPrice, error)
	RefreshDailyPrices(ctx context.Context) (int, error)
	Fertilizers() []domain.Fertilizer
}

type WeatherService interface {
	ByCity(ctx context.Context, city string) (*domain.WeatherReport, error)
	ByCoords(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error)
}

type ChatService interface {
	SendMessage(ctx context.Context, sessionID, userID, message string) (string, error)
	History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error)
}

type EmailService interface {
	SendPaymentReceipt(ctx context.Context, email, name, itemName string, amount float64, paymentID string) error
	SendBookingAccepted(ctx context.Context, email, name, itemName string, amount float64) error
	SendBookingRejected(ctx context.Context, email, name, itemName, reason string) error
	SendPaymentReminder(ctx context.Context, email, name, itemName string, amount float64) error
}
