package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
	"krishisanjivni-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	toolRepo    repository.ToolRepository
	whRepo      repository.WarehouseRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	toolRepo repository.ToolRepository,
	whRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		toolRepo:    toolRepo,
		whRepo:      whRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// rentalDays counts calendar days inclusive of both endpoints.
func rentalDays(start, end time.Time) (int, error) {
	diff := int(end.Sub(start).Hours() / 24)
	if diff < 0 {
		return 0, ErrInvalidDateRange
	}
	return diff + 1, nil
}

func (s *bookingService) CreateToolBooking(ctx context.Context, userID, toolID string, start, end time.Time) (*domain.Booking, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !tool.Availability {
		return nil, ErrToolUnavailable
	}

	days, err := rentalDays(start, end)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:    userID,
		Type:      domain.BookingTypeTool,
		ItemID:    toolID,
		ItemName:  tool.Name,
		StartDate: start,
		EndDate:   end,
		TotalCost: float64(days) * tool.PricePerDay,
		Status:    domain.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CreateWarehouseBooking(ctx context.Context, userID, storageOptionID string, start, end time.Time, sqft float64) (*domain.Booking, error) {
	opt, err := s.whRepo.GetStorageOption(ctx, storageOptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	days, err := rentalDays(start, end)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:    userID,
		Type:      domain.BookingTypeWarehouse,
		ItemID:    storageOptionID,
		ItemName:  opt.StorageType,
		StartDate: start,
		EndDate:   end,
		Sqft:      sqft,
		TotalCost: sqft * float64(days) * opt.PricePerSqftDay,
		Status:    domain.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListMine(ctx context.Context, bookingType domain.BookingType, userID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, bookingType, userID)
}

func (s *bookingService) Cancel(ctx context.Context, userID string, bookingType domain.BookingType, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingType, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if booking.UserID != userID {
		return ErrForbidden
	}
	if booking.Status != domain.BookingStatusPending {
		return ErrBookingDecided
	}
	return s.bookingRepo.Delete(ctx, bookingType, id)
}

func (s *bookingService) ListAll(ctx context.Context, bookingType domain.BookingType) ([]domain.Booking, error) {
	return s.bookingRepo.ListAll(ctx, bookingType)
}

func (s *bookingService) Accept(ctx context.Context, bookingType domain.BookingType, id string) (*domain.Booking, error) {
	booking, err := s.transition(ctx, bookingType, id, domain.BookingStatusAccepted, "")
	if err != nil {
		return nil, err
	}

	if user, uerr := s.userRepo.GetByID(ctx, booking.UserID); uerr == nil {
		if err := s.emailSvc.SendBookingAccepted(ctx, user.Email, user.FullName, booking.ItemName, booking.TotalCost); err != nil {
			logger.Warn("acceptance email not sent", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

func (s *bookingService) Reject(ctx context.Context, bookingType domain.BookingType, id, reason string) (*domain.Booking, error) {
	booking, err := s.transition(ctx, bookingType, id, domain.BookingStatusRejected, reason)
	if err != nil {
		return nil, err
	}

	if user, uerr := s.userRepo.GetByID(ctx, booking.UserID); uerr == nil {
		if err := s.emailSvc.SendBookingRejected(ctx, user.Email, user.FullName, booking.ItemName, reason); err != nil {
			logger.Warn("rejection email not sent", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

func (s *bookingService) transition(ctx context.Context, bookingType domain.BookingType, id string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingType, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrBookingDecided
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingType, id, status, reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	booking.Status = status
	booking.RejectionReason = reason
	return booking, nil
}
