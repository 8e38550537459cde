package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/notifications"
	"cinebook/internal/pricing"
	"cinebook/internal/promotions"
	"cinebook/internal/seats"
	"cinebook/internal/showtimes"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

const submitLockPrefix = "cinebook:checkout:submitting:"

// Service orchestrates the checkout flow: pricing a seat selection into a
// draft, presenting the draft back to the checkout page, and turning it into
// a confirmed booking exactly once.
type Service interface {
	// Quote validates the selection against live seat data, prices it,
	// optionally applies a coupon, and saves the result as the session's
	// draft. A coupon rejection fails the whole quote; no draft is saved.
	Quote(ctx context.Context, sessionID string, req QuoteRequest) (*QuoteResponse, error)

	// Load returns the checkout page view for the session's draft.
	// Returns ErrNoDraft when there is nothing to check out.
	Load(ctx context.Context, sessionID string) (*CheckoutView, error)

	// Submit finalizes the session's draft into a booking. Concurrent
	// submits for one session are rejected with ErrSubmitInProgress; a
	// lost seat race surfaces as bookings.ErrSeatsTaken and discards the
	// draft.
	Submit(ctx context.Context, sessionID, userID string, req SubmitRequest) (*SubmitResponse, error)
}

type service struct {
	drafts          DraftStore
	showtimeService showtimes.Service
	seatService     seats.Service
	promotionSvc    promotions.Service
	bookingService  bookings.Service
	producer        notifications.Producer
	locks           cache.Service
	lockTTL         time.Duration
	logger          *logger.Logger
	now             func() time.Time
}

func NewService(
	drafts DraftStore,
	showtimeService showtimes.Service,
	seatService seats.Service,
	promotionSvc promotions.Service,
	bookingService bookings.Service,
	producer notifications.Producer,
	locks cache.Service,
	lockTTL time.Duration,
	log *logger.Logger,
) Service {
	return &service{
		drafts:          drafts,
		showtimeService: showtimeService,
		seatService:     seatService,
		promotionSvc:    promotionSvc,
		bookingService:  bookingService,
		producer:        producer,
		locks:           locks,
		lockTTL:         lockTTL,
		logger:          log,
		now:             time.Now,
	}
}

func (s *service) Quote(ctx context.Context, sessionID string, req QuoteRequest) (*QuoteResponse, error) {
	detail, err := s.showtimeService.GetShowtime(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}

	seatLabels, err := s.seatService.ValidateSelection(detail, req.Seats)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(detail.Price, len(seatLabels))

	draft := &Draft{
		ShowtimeID: detail.ID,
		Seats:      seatLabels,
		UnitPrice:  detail.Price,
		Subtotal:   subtotal,
		Total:      subtotal,
		SavedAt:    s.now().UTC(),
	}

	if req.CouponCode != "" {
		// The coupon is checked against the subtotal computed in this
		// same request, so the discount basis can never go stale.
		result, err := s.promotionSvc.Check(ctx, promotions.CheckCouponRequest{
			CouponCode:  req.CouponCode,
			TotalAmount: subtotal,
			MovieID:     detail.MovieID,
			CinemaID:    detail.CinemaID,
		})
		if err != nil {
			return nil, err
		}
		draft.PromoCode = req.CouponCode
		draft.PromotionID = result.PromotionID
		draft.PromotionName = result.Name
		draft.Discount = result.DiscountAmount
		draft.Total = pricing.Total(subtotal, result.DiscountAmount)
		s.logger.LogCouponApplied(ctx, req.CouponCode, result.DiscountAmount)
	}

	if err := s.drafts.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	return toQuoteResponse(draft), nil
}

func (s *service) Load(ctx context.Context, sessionID string) (*CheckoutView, error) {
	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Display data is best effort. The draft alone is enough to render
	// checkout; a vanished showtime will fail at submit time instead.
	detail, err := s.showtimeService.GetShowtime(ctx, draft.ShowtimeID)
	if err != nil && !errors.Is(err, showtimes.ErrShowtimeNotFound) {
		return nil, err
	}

	return toCheckoutView(draft, detail), nil
}

func (s *service) Submit(ctx context.Context, sessionID, userID string, req SubmitRequest) (*SubmitResponse, error) {
	if req.PaymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}
	if !req.TermsAccepted {
		return nil, ErrTermsNotAccepted
	}

	acquired, err := s.locks.SetNX(ctx, submitLockPrefix+sessionID, s.now().Unix(), s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !acquired {
		return nil, ErrSubmitInProgress
	}
	defer func() {
		if err := s.locks.Delete(context.WithoutCancel(ctx), submitLockPrefix+sessionID); err != nil {
			s.logger.Warn("failed to release submit lock", "session_id", sessionID, "error", err.Error())
		}
	}()

	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	confirmation, err := s.bookingService.CreateBooking(ctx, bookings.CreateBookingRequest{
		SessionID:     sessionID,
		UserID:        userID,
		ShowtimeID:    draft.ShowtimeID,
		Seats:         draft.Seats,
		UnitPrice:     draft.UnitPrice,
		Subtotal:      draft.Subtotal,
		Discount:      draft.Discount,
		Total:         draft.Total,
		PromotionCode: draft.PromoCode,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrSeatsTaken) {
			// The draft priced seats that no longer exist as a unit.
			// Discard it so the user re-selects from live data.
			s.logger.LogSeatConflict(ctx, draft.ShowtimeID, draft.Seats)
			if clearErr := s.drafts.Clear(ctx, sessionID); clearErr != nil {
				s.logger.Warn("failed to clear stale draft", "session_id", sessionID, "error", clearErr.Error())
			}
			return nil, bookings.ErrSeatsTaken
		}
		// Any other failure keeps the draft so the user can retry.
		return nil, err
	}

	s.logger.LogBookingCreated(ctx, confirmation.BookingRef, draft.ShowtimeID, sessionID)

	if clearErr := s.drafts.Clear(ctx, sessionID); clearErr != nil {
		s.logger.Warn("failed to clear consumed draft", "session_id", sessionID, "error", clearErr.Error())
	}

	if draft.HasPromotion() {
		if usageErr := s.promotionSvc.RecordUsage(ctx, draft.PromotionID, confirmation.BookingID, draft.Discount); usageErr != nil {
			s.logger.ErrorWithContext(ctx, "failed to record promotion usage", usageErr, map[string]interface{}{
				"promotion_id": draft.PromotionID,
				"booking_ref":  confirmation.BookingRef,
			})
		}
	}

	s.publishConfirmed(ctx, sessionID, draft, confirmation)

	return &SubmitResponse{
		State:   StateSucceeded.String(),
		Booking: confirmation,
	}, nil
}

// publishConfirmed emits the booking event off the request path. Event
// delivery must never fail a booking that is already committed.
func (s *service) publishConfirmed(ctx context.Context, sessionID string, draft *Draft, confirmation *bookings.BookingConfirmation) {
	if s.producer == nil {
		return
	}

	event := &notifications.BookingEvent{
		ID:         uuid.NewString(),
		Type:       notifications.EventBookingConfirmed,
		BookingRef: confirmation.BookingRef,
		ShowtimeID: draft.ShowtimeID,
		SessionID:  sessionID,
		Seats:      draft.Seats,
		Total:      draft.Total,
		CreatedAt:  s.now().UTC(),
	}

	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := s.producer.PublishBookingEvent(publishCtx, event); err != nil {
			s.logger.ErrorWithContext(publishCtx, "failed to publish booking event", err, map[string]interface{}{
				"booking_ref": confirmation.BookingRef,
			})
		}
	}()
}
