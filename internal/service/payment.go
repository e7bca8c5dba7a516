package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
	"krishisanjivni-backend/internal/repository"
	"krishisanjivni-backend/internal/upstream"
)

// PaymentGateway is the slice of the Razorpay client the payment service
// needs.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountRupees float64, receipt string) (*upstream.RazorpayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	gateway     PaymentGateway
	emailSvc    EmailService
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	gateway PaymentGateway,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		emailSvc:    emailSvc,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, userID string, bookingType domain.BookingType, bookingID string) (*upstream.RazorpayOrder, error) {
	booking, err := s.ownedBooking(ctx, userID, bookingType, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusAccepted {
		return nil, ErrBookingNotPayable
	}
	return s.gateway.CreateOrder(ctx, booking.TotalCost, "bkg_"+bookingID)
}

// RecordPayment finalizes a checkout. The gateway signature is verified
// before anything is written; the amount comes from the booking, never from
// the caller. The repository performs the insert and the booking status flip
// in one transaction, so a crash cannot leave a paid booking without its
// payment row or the reverse.
func (s *paymentService) RecordPayment(ctx context.Context, userID string, in RecordPaymentInput) (*domain.Payment, bool, error) {
	booking, err := s.ownedBooking(ctx, userID, in.Type, in.BookingID)
	if err != nil {
		return nil, false, err
	}
	// A paid booking is still accepted for replay: the unique payment id
	// makes the write a no-op.
	if booking.Status != domain.BookingStatusAccepted && booking.Status != domain.BookingStatusPaid {
		return nil, false, ErrBookingNotPayable
	}

	if !s.gateway.VerifySignature(in.RazorpayOrderID, in.RazorpayPaymentID, in.RazorpaySignature) {
		logger.Warn("rejected payment with bad signature", "booking_id", in.BookingID, "payment_id", in.RazorpayPaymentID)
		return nil, false, ErrInvalidSignature
	}

	payment := &domain.Payment{
		UserID:            userID,
		BookingID:         in.BookingID,
		Type:              in.Type,
		Amount:            booking.TotalCost,
		PaymentStatus:     domain.PaymentStatusPaid,
		TransactionID:     in.RazorpayPaymentID,
		RazorpayPaymentID: in.RazorpayPaymentID,
		RazorpayOrderID:   in.RazorpayOrderID,
	}
	created, err := s.paymentRepo.Record(ctx, payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("record payment: %w", err)
	}

	if created {
		if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
			if err := s.emailSvc.SendPaymentReceipt(ctx, user.Email, user.FullName, booking.ItemName, payment.Amount, payment.RazorpayPaymentID); err != nil {
				logger.Warn("receipt email not sent", "payment_id", payment.RazorpayPaymentID, "error", err)
			}
		}
	}
	return payment, created, nil
}

func (s *paymentService) ListMine(ctx context.Context, userID string) ([]domain.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

func (s *paymentService) ownedBooking(ctx context.Context, userID string, bookingType domain.BookingType, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingType, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrForbidden
	}
	return booking, nil
}
