package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinebook/internal/bookings"
	"cinebook/internal/notifications"
	"cinebook/internal/promotions"
	"cinebook/internal/seats"
	"cinebook/internal/showtimes"
	"cinebook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShowtimeID = "5f1c2f6a-0000-0000-0000-000000000001"

type mockShowtimeService struct {
	GetShowtimeFunc func(ctx context.Context, id string) (*showtimes.ShowtimeDetail, error)
}

func (m *mockShowtimeService) GetShowtime(ctx context.Context, id string) (*showtimes.ShowtimeDetail, error) {
	return m.GetShowtimeFunc(ctx, id)
}

type mockPromotionService struct {
	CheckFunc       func(ctx context.Context, req promotions.CheckCouponRequest) (*promotions.CheckCouponResult, error)
	RecordUsageFunc func(ctx context.Context, promotionID, bookingID string, discount float64) error
}

func (m *mockPromotionService) Check(ctx context.Context, req promotions.CheckCouponRequest) (*promotions.CheckCouponResult, error) {
	return m.CheckFunc(ctx, req)
}

func (m *mockPromotionService) RecordUsage(ctx context.Context, promotionID, bookingID string, discount float64) error {
	if m.RecordUsageFunc == nil {
		return nil
	}
	return m.RecordUsageFunc(ctx, promotionID, bookingID, discount)
}

type mockBookingService struct {
	CreateBookingFunc   func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error)
	GetBookingByRefFunc func(ctx context.Context, ref string) (*bookings.BookingConfirmation, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
	return m.CreateBookingFunc(ctx, req)
}

func (m *mockBookingService) GetBookingByRef(ctx context.Context, ref string) (*bookings.BookingConfirmation, error) {
	return m.GetBookingByRefFunc(ctx, ref)
}

type mockProducer struct {
	events chan *notifications.BookingEvent
}

func newMockProducer() *mockProducer {
	return &mockProducer{events: make(chan *notifications.BookingEvent, 1)}
}

func (m *mockProducer) PublishBookingEvent(ctx context.Context, event *notifications.BookingEvent) error {
	m.events <- event
	return nil
}

func (m *mockProducer) Close() error { return nil }

type fixture struct {
	svc       Service
	store     DraftStore
	mem       *memCache
	showtimes *mockShowtimeService
	promos    *mockPromotionService
	bookings  *mockBookingService
	producer  *mockProducer
}

func liveShowtime() *showtimes.ShowtimeDetail {
	return &showtimes.ShowtimeDetail{
		ID:             testShowtimeID,
		MovieID:        "11111111-0000-0000-0000-000000000001",
		MovieTitle:     "The Long Night",
		CinemaID:       "22222222-0000-0000-0000-000000000001",
		CinemaName:     "Downtown 8",
		HallName:       "Hall 3",
		StartTime:      time.Date(2026, 4, 1, 19, 30, 0, 0, time.UTC),
		Format:         "2D",
		Price:          300,
		AvailableSeats: []string{"A1", "A2", "A3", "B1"},
		BookedSeats:    []string{"B2"},
	}
}

func newFixture() *fixture {
	f := &fixture{
		mem:      newMemCache(),
		producer: newMockProducer(),
		showtimes: &mockShowtimeService{
			GetShowtimeFunc: func(ctx context.Context, id string) (*showtimes.ShowtimeDetail, error) {
				if id != testShowtimeID {
					return nil, showtimes.ErrShowtimeNotFound
				}
				return liveShowtime(), nil
			},
		},
		promos:   &mockPromotionService{},
		bookings: &mockBookingService{},
	}
	f.store = NewDraftStore(f.mem, 30*time.Minute)
	f.svc = NewService(
		f.store,
		f.showtimes,
		seats.NewService(f.showtimes),
		f.promos,
		f.bookings,
		f.producer,
		f.mem,
		30*time.Second,
		logger.GetDefault(),
	)
	return f
}

func TestQuoteWithoutCoupon(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	quote, err := f.svc.Quote(ctx, testSession, QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A2", "A1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, quote.Seats)
	assert.Equal(t, float64(300), quote.UnitPrice)
	assert.Equal(t, float64(600), quote.Subtotal)
	assert.Equal(t, float64(0), quote.Discount)
	assert.Equal(t, float64(600), quote.Total)

	draft, err := f.store.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, float64(600), draft.Total)
	assert.False(t, draft.HasPromotion())
}

func TestQuoteWithCoupon(t *testing.T) {
	f := newFixture()
	var checked promotions.CheckCouponRequest
	f.promos.CheckFunc = func(ctx context.Context, req promotions.CheckCouponRequest) (*promotions.CheckCouponResult, error) {
		checked = req
		return &promotions.CheckCouponResult{
			PromotionID:    "8a7b6c5d-0000-0000-0000-000000000002",
			Name:           "Save 10 Percent",
			DiscountAmount: 90,
		}, nil
	}

	quote, err := f.svc.Quote(context.Background(), testSession, QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A1", "A2", "A3"},
		CouponCode: "SAVE10",
	})
	require.NoError(t, err)

	// The coupon is checked against the subtotal priced in this request.
	assert.Equal(t, float64(900), checked.TotalAmount)
	assert.Equal(t, liveShowtime().MovieID, checked.MovieID)
	assert.Equal(t, liveShowtime().CinemaID, checked.CinemaID)

	assert.Equal(t, float64(90), quote.Discount)
	assert.Equal(t, float64(810), quote.Total)
	assert.Equal(t, "Save 10 Percent", quote.PromotionName)
}

func TestQuoteCouponRejectionSavesNoDraft(t *testing.T) {
	f := newFixture()
	f.promos.CheckFunc = func(ctx context.Context, req promotions.CheckCouponRequest) (*promotions.CheckCouponResult, error) {
		return nil, promotions.ErrCodeExpired
	}

	_, err := f.svc.Quote(context.Background(), testSession, QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A1"},
		CouponCode: "OLD",
	})
	assert.ErrorIs(t, err, promotions.ErrCodeExpired)

	_, err = f.store.Load(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestQuoteRejectsBookedSeat(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Quote(context.Background(), testSession, QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"B2"},
	})
	assert.ErrorIs(t, err, seats.ErrSeatUnavailable)
}

func TestQuoteUnknownShowtime(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Quote(context.Background(), testSession, QuoteRequest{
		ShowtimeID: "99999999-0000-0000-0000-000000000009",
		Seats:      []string{"A1"},
	})
	assert.ErrorIs(t, err, showtimes.ErrShowtimeNotFound)
}

func TestLoadWithoutDraft(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Load(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestLoadReturnsReadyView(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.Quote(ctx, testSession, QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A1", "B1"},
	})
	require.NoError(t, err)

	view, err := f.svc.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, StateReady.String(), view.State)
	assert.Equal(t, []string{"A1", "B1"}, view.Seats)
	assert.Equal(t, float64(600), view.Total)
	assert.Equal(t, "The Long Night", view.MovieTitle)
	assert.Equal(t, "Downtown 8", view.CinemaName)
}

func submitRequest() SubmitRequest {
	return SubmitRequest{PaymentMethod: "credit_card", TermsAccepted: true}
}

func quoteDraft(t *testing.T, f *fixture, coupon string) {
	t.Helper()
	req := QuoteRequest{
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A1", "A2", "A3"},
		CouponCode: coupon,
	}
	_, err := f.svc.Quote(context.Background(), testSession, req)
	require.NoError(t, err)
}

func confirmedBooking() *bookings.BookingConfirmation {
	return &bookings.BookingConfirmation{
		BookingID:  "33333333-0000-0000-0000-000000000001",
		BookingRef: "CB-ABCDEF1234",
		Status:     "CONFIRMED",
		ShowtimeID: testShowtimeID,
		Seats:      []string{"A1", "A2", "A3"},
		Total:      900,
	}
}

func TestSubmitRequiresPaymentMethod(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), testSession, "", SubmitRequest{TermsAccepted: true})
	assert.ErrorIs(t, err, ErrPaymentMethodRequired)
}

func TestSubmitRequiresTerms(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), testSession, "", SubmitRequest{PaymentMethod: "credit_card"})
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
}

func TestSubmitWithoutDraft(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), testSession, "", submitRequest())
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quoteDraft(t, f, "")

	var created bookings.CreateBookingRequest
	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		created = req
		return confirmedBooking(), nil
	}

	result, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded.String(), result.State)
	assert.Equal(t, "CB-ABCDEF1234", result.Booking.BookingRef)

	// The booking is created from the stored draft, not from the request.
	assert.Equal(t, testSession, created.SessionID)
	assert.Equal(t, []string{"A1", "A2", "A3"}, created.Seats)
	assert.Equal(t, float64(900), created.Subtotal)
	assert.Equal(t, float64(900), created.Total)
	assert.Equal(t, "credit_card", created.PaymentMethod)

	// The draft is consumed; a second submit has nothing to work with.
	_, err = f.svc.Submit(ctx, testSession, "", submitRequest())
	assert.ErrorIs(t, err, ErrNoDraft)

	select {
	case event := <-f.producer.events:
		assert.Equal(t, notifications.EventBookingConfirmed, event.Type)
		assert.Equal(t, "CB-ABCDEF1234", event.BookingRef)
		assert.Equal(t, testSession, event.SessionID)
	case <-time.After(time.Second):
		t.Fatal("booking event was not published")
	}
}

func TestSubmitRecordsPromotionUsage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.promos.CheckFunc = func(ctx context.Context, req promotions.CheckCouponRequest) (*promotions.CheckCouponResult, error) {
		return &promotions.CheckCouponResult{
			PromotionID:    "8a7b6c5d-0000-0000-0000-000000000002",
			Name:           "Save 10 Percent",
			DiscountAmount: 90,
		}, nil
	}
	quoteDraft(t, f, "SAVE10")

	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		assert.Equal(t, float64(90), req.Discount)
		assert.Equal(t, float64(810), req.Total)
		assert.Equal(t, "SAVE10", req.PromotionCode)
		return confirmedBooking(), nil
	}

	var usagePromotionID, usageBookingID string
	f.promos.RecordUsageFunc = func(ctx context.Context, promotionID, bookingID string, discount float64) error {
		usagePromotionID = promotionID
		usageBookingID = bookingID
		assert.Equal(t, float64(90), discount)
		return nil
	}

	_, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	require.NoError(t, err)
	assert.Equal(t, "8a7b6c5d-0000-0000-0000-000000000002", usagePromotionID)
	assert.Equal(t, "33333333-0000-0000-0000-000000000001", usageBookingID)
}

func TestSubmitSeatConflictDiscardsDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quoteDraft(t, f, "")

	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		return nil, bookings.ErrSeatsTaken
	}

	_, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	assert.ErrorIs(t, err, bookings.ErrSeatsTaken)

	// The priced selection is no longer bookable as a unit, so the user
	// must start over from live seat data.
	_, err = f.store.Load(ctx, testSession)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestSubmitTransientFailureKeepsDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quoteDraft(t, f, "")

	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		return nil, errors.New("database timeout")
	}

	_, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, bookings.ErrSeatsTaken)

	// The draft survives so the retry does not re-price anything.
	draft, loadErr := f.store.Load(ctx, testSession)
	require.NoError(t, loadErr)
	assert.Equal(t, float64(900), draft.Total)

	// Retry succeeds against the same draft.
	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		return confirmedBooking(), nil
	}
	result, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded.String(), result.State)
}

func TestSubmitSingleFlight(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quoteDraft(t, f, "")

	// Simulate an in-flight submission holding the lock.
	acquired, err := f.mem.SetNX(ctx, submitLockPrefix+testSession, 1, 30*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = f.svc.Submit(ctx, testSession, "", submitRequest())
	assert.ErrorIs(t, err, ErrSubmitInProgress)
}

func TestSubmitReleasesLock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	quoteDraft(t, f, "")

	f.bookings.CreateBookingFunc = func(ctx context.Context, req bookings.CreateBookingRequest) (*bookings.BookingConfirmation, error) {
		return nil, errors.New("database timeout")
	}
	_, err := f.svc.Submit(ctx, testSession, "", submitRequest())
	require.Error(t, err)

	assert.False(t, f.mem.Exists(ctx, submitLockPrefix+testSession))
}
