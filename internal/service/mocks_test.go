package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/upstream"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListAvailable(ctx context.Context, category, query string, maxPrice float64) ([]domain.Tool, error) {
	args := m.Called(ctx, category, query, maxPrice)
	return args.Get(0).([]domain.Tool), args.Error(1)
}

// MockWarehouseRepo
type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) Create(ctx context.Context, wh *domain.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}
func (m *MockWarehouseRepo) GetByID(ctx context.Context, id string) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) Update(ctx context.Context, wh *domain.Warehouse) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}
func (m *MockWarehouseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWarehouseRepo) List(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) CreateStorageOption(ctx context.Context, opt *domain.StorageOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}
func (m *MockWarehouseRepo) GetStorageOption(ctx context.Context, id string) (*domain.StorageOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorageOption), args.Error(1)
}
func (m *MockWarehouseRepo) DeleteStorageOption(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, bookingType domain.BookingType, id string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, bookingType domain.BookingType, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, bookingType, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListAll(ctx context.Context, bookingType domain.BookingType) ([]domain.Booking, error) {
	args := m.Called(ctx, bookingType)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, bookingType domain.BookingType, id string, status domain.BookingStatus, rejectionReason string) error {
	args := m.Called(ctx, bookingType, id, status, rejectionReason)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, bookingType domain.BookingType, id string) error {
	args := m.Called(ctx, bookingType, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListAcceptedUnpaid(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Record(ctx context.Context, p *domain.Payment) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockSoilCheckRepo
type MockSoilCheckRepo struct {
	mock.Mock
}

func (m *MockSoilCheckRepo) Create(ctx context.Context, sc *domain.SoilCheck) error {
	args := m.Called(ctx, sc)
	return args.Error(0)
}
func (m *MockSoilCheckRepo) ListByUser(ctx context.Context, userID string) ([]domain.SoilCheck, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.SoilCheck), args.Error(1)
}

// MockChatRepo
type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) GetConversationBySession(ctx context.Context, sessionID string) (*domain.Conversation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversation), args.Error(1)
}
func (m *MockChatRepo) CreateConversation(ctx context.Context, conv *domain.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}
func (m *MockChatRepo) TouchConversation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockChatRepo) AppendMessage(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockChatRepo) ListMessages(ctx context.Context, conversationID string) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, conversationID)
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}
func (m *MockChatRepo) DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email, name, itemName string, amount float64, paymentID string) error {
	args := m.Called(ctx, email, name, itemName, amount, paymentID)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingAccepted(ctx context.Context, email, name, itemName string, amount float64) error {
	args := m.Called(ctx, email, name, itemName, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejected(ctx context.Context, email, name, itemName, reason string) error {
	args := m.Called(ctx, email, name, itemName, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReminder(ctx context.Context, email, name, itemName string, amount float64) error {
	args := m.Called(ctx, email, name, itemName, amount)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(ctx context.Context, amountRupees float64, receipt string) (*upstream.RazorpayOrder, error) {
	args := m.Called(ctx, amountRupees, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upstream.RazorpayOrder), args.Error(1)
}
func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

// MockMandiSource
type MockMandiSource struct {
	mock.Mock
}

func (m *MockMandiSource) FetchByDate(ctx context.Context, arrivalDate string) ([]domain.MarketRecord, error) {
	args := m.Called(ctx, arrivalDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketRecord), args.Error(1)
}

// MockChatModel
type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage) (string, error) {
	args := m.Called(ctx, systemInstruction, history)
	return args.String(0), args.Error(1)
}
