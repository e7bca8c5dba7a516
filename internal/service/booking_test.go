package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/service"
)

func bookingFixture() (*MockBookingRepo, *MockToolRepo, *MockWarehouseRepo, *MockUserRepo, *MockEmailService, service.BookingService) {
	bookingRepo := new(MockBookingRepo)
	toolRepo := new(MockToolRepo)
	whRepo := new(MockWarehouseRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewBookingService(bookingRepo, toolRepo, whRepo, userRepo, emailSvc)
	return bookingRepo, toolRepo, whRepo, userRepo, emailSvc, svc
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestBookingService_CreateToolBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Cost Covers Both Endpoints", func(t *testing.T) {
		bookingRepo, toolRepo, _, _, _, svc := bookingFixture()
		toolRepo.On("GetByID", ctx, "t1").Return(&domain.Tool{ID: "t1", Name: "Rotavator", PricePerDay: 500, Availability: true}, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		// 2nd to 4th inclusive is three days.
		booking, err := svc.CreateToolBooking(ctx, "u1", "t1", day("2026-08-02"), day("2026-08-04"))

		assert.NoError(t, err)
		assert.Equal(t, 1500.0, booking.TotalCost)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, domain.BookingTypeTool, booking.Type)
	})

	t.Run("Single Day", func(t *testing.T) {
		bookingRepo, toolRepo, _, _, _, svc := bookingFixture()
		toolRepo.On("GetByID", ctx, "t1").Return(&domain.Tool{ID: "t1", PricePerDay: 500, Availability: true}, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := svc.CreateToolBooking(ctx, "u1", "t1", day("2026-08-02"), day("2026-08-02"))

		assert.NoError(t, err)
		assert.Equal(t, 500.0, booking.TotalCost)
	})

	t.Run("End Before Start", func(t *testing.T) {
		_, toolRepo, _, _, _, svc := bookingFixture()
		toolRepo.On("GetByID", ctx, "t1").Return(&domain.Tool{ID: "t1", PricePerDay: 500, Availability: true}, nil)

		_, err := svc.CreateToolBooking(ctx, "u1", "t1", day("2026-08-04"), day("2026-08-02"))

		assert.ErrorIs(t, err, service.ErrInvalidDateRange)
	})

	t.Run("Unavailable Tool", func(t *testing.T) {
		bookingRepo, toolRepo, _, _, _, svc := bookingFixture()
		toolRepo.On("GetByID", ctx, "t1").Return(&domain.Tool{ID: "t1", PricePerDay: 500, Availability: false}, nil)

		_, err := svc.CreateToolBooking(ctx, "u1", "t1", day("2026-08-02"), day("2026-08-04"))

		assert.ErrorIs(t, err, service.ErrToolUnavailable)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingService_CreateWarehouseBooking(t *testing.T) {
	ctx := context.Background()

	bookingRepo, _, whRepo, _, _, svc := bookingFixture()
	whRepo.On("GetStorageOption", ctx, "o1").Return(&domain.StorageOption{
		ID:              "o1",
		WarehouseID:     "w1",
		StorageType:     "Cold Storage",
		PricePerSqftDay: 2,
	}, nil)
	bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	// 100 sqft for 5 days at 2 rupees per sqft per day.
	booking, err := svc.CreateWarehouseBooking(ctx, "u1", "o1", day("2026-08-01"), day("2026-08-05"), 100)

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, booking.TotalCost)
	assert.Equal(t, domain.BookingTypeWarehouse, booking.Type)
	assert.Equal(t, "Cold Storage", booking.ItemName)
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending Booking Removed", func(t *testing.T) {
		bookingRepo, _, _, _, _, svc := bookingFixture()
		pending := &domain.Booking{ID: "b1", UserID: "u1", Type: domain.BookingTypeTool, Status: domain.BookingStatusPending}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeTool, "b1").Return(pending, nil)
		bookingRepo.On("Delete", ctx, domain.BookingTypeTool, "b1").Return(nil)

		err := svc.Cancel(ctx, "u1", domain.BookingTypeTool, "b1")

		assert.NoError(t, err)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		bookingRepo, _, _, _, _, svc := bookingFixture()
		pending := &domain.Booking{ID: "b1", UserID: "someone-else", Type: domain.BookingTypeTool, Status: domain.BookingStatusPending}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeTool, "b1").Return(pending, nil)

		err := svc.Cancel(ctx, "u1", domain.BookingTypeTool, "b1")

		assert.ErrorIs(t, err, service.ErrForbidden)
		bookingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Accepted Booking Stays", func(t *testing.T) {
		bookingRepo, _, _, _, _, svc := bookingFixture()
		accepted := &domain.Booking{ID: "b1", UserID: "u1", Type: domain.BookingTypeTool, Status: domain.BookingStatusAccepted}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeTool, "b1").Return(accepted, nil)

		err := svc.Cancel(ctx, "u1", domain.BookingTypeTool, "b1")

		assert.ErrorIs(t, err, service.ErrBookingDecided)
		bookingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_Decisions(t *testing.T) {
	ctx := context.Background()

	t.Run("Accept Sends Email", func(t *testing.T) {
		bookingRepo, _, _, userRepo, emailSvc, svc := bookingFixture()
		pending := &domain.Booking{ID: "b1", UserID: "u1", Type: domain.BookingTypeTool, ItemName: "Rotavator", TotalCost: 1500, Status: domain.BookingStatusPending}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeTool, "b1").Return(pending, nil)
		bookingRepo.On("UpdateStatus", ctx, domain.BookingTypeTool, "b1", domain.BookingStatusAccepted, "").Return(nil)
		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "f@x.in", FullName: "Farmer"}, nil)
		emailSvc.On("SendBookingAccepted", ctx, "f@x.in", "Farmer", "Rotavator", 1500.0).Return(nil)

		booking, err := svc.Accept(ctx, domain.BookingTypeTool, "b1")

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusAccepted, booking.Status)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Reject Records Reason", func(t *testing.T) {
		bookingRepo, _, _, userRepo, emailSvc, svc := bookingFixture()
		pending := &domain.Booking{ID: "b1", UserID: "u1", Type: domain.BookingTypeWarehouse, ItemName: "Cold Storage", Status: domain.BookingStatusPending}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeWarehouse, "b1").Return(pending, nil)
		bookingRepo.On("UpdateStatus", ctx, domain.BookingTypeWarehouse, "b1", domain.BookingStatusRejected, "no capacity").Return(nil)
		userRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Email: "f@x.in", FullName: "Farmer"}, nil)
		emailSvc.On("SendBookingRejected", ctx, "f@x.in", "Farmer", "Cold Storage", "no capacity").Return(nil)

		booking, err := svc.Reject(ctx, domain.BookingTypeWarehouse, "b1", "no capacity")

		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusRejected, booking.Status)
		assert.Equal(t, "no capacity", booking.RejectionReason)
	})

	t.Run("Already Decided", func(t *testing.T) {
		bookingRepo, _, _, _, _, svc := bookingFixture()
		accepted := &domain.Booking{ID: "b1", UserID: "u1", Type: domain.BookingTypeTool, Status: domain.BookingStatusAccepted}

		bookingRepo.On("GetByID", ctx, domain.BookingTypeTool, "b1").Return(accepted, nil)

		_, err := svc.Accept(ctx, domain.BookingTypeTool, "b1")

		assert.ErrorIs(t, err, service.ErrBookingDecided)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
