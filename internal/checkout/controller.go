package checkout

import (
	"errors"
	"net/http"

	"cinebook/internal/bookings"
	"cinebook/internal/promotions"
	"cinebook/internal/seats"
	"cinebook/internal/showtimes"
	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Quote handles POST /api/v1/checkout/quote
func (c *Controller) Quote(ctx *gin.Context) {
	var req QuoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	quote, err := c.service.Quote(ctx.Request.Context(), ctx.GetString("session_id"), req)
	if err != nil {
		c.respondQuoteError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Selection priced", quote, nil)
}

// Load handles GET /api/v1/checkout
func (c *Controller) Load(ctx *gin.Context) {
	view, err := c.service.Load(ctx.Request.Context(), ctx.GetString("session_id"))
	if err != nil {
		if errors.Is(err, ErrNoDraft) {
			response.RespondError(ctx, http.StatusNotFound, "NO_DRAFT", "No checkout in progress, select seats first", nil)
			return
		}
		response.RespondError(ctx, http.StatusBadGateway, "CHECKOUT_LOAD_FAILED", "Could not load checkout, please retry", nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Checkout ready", view, nil)
}

// Submit handles POST /api/v1/checkout/submit
func (c *Controller) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := c.service.Submit(ctx.Request.Context(), ctx.GetString("session_id"), ctx.GetString("user_id"), req)
	if err != nil {
		c.respondSubmitError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Booking confirmed", result, nil)
}

func (c *Controller) respondQuoteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, showtimes.ErrShowtimeNotFound):
		response.RespondError(ctx, http.StatusNotFound, "SHOWTIME_NOT_FOUND", err.Error(), nil)
	case errors.Is(err, seats.ErrNoSeatsSelected), errors.Is(err, seats.ErrDuplicateSeat), errors.Is(err, seats.ErrUnknownSeat):
		response.RespondError(ctx, http.StatusBadRequest, "INVALID_SELECTION", err.Error(), nil)
	case errors.Is(err, seats.ErrSeatUnavailable):
		response.RespondError(ctx, http.StatusConflict, "SEAT_UNAVAILABLE", err.Error(), nil)
	case promotions.IsRejection(err):
		response.RespondError(ctx, http.StatusUnprocessableEntity, "COUPON_REJECTED", err.Error(), nil)
	default:
		response.RespondError(ctx, http.StatusBadGateway, "QUOTE_FAILED", "Could not price selection, please retry", nil)
	}
}

func (c *Controller) respondSubmitError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPaymentMethodRequired), errors.Is(err, ErrTermsNotAccepted):
		response.RespondError(ctx, http.StatusBadRequest, "SUBMIT_INCOMPLETE", err.Error(), nil)
	case errors.Is(err, ErrNoDraft):
		response.RespondError(ctx, http.StatusNotFound, "NO_DRAFT", "No checkout in progress, select seats first", nil)
	case errors.Is(err, ErrSubmitInProgress):
		response.RespondError(ctx, http.StatusConflict, "SUBMIT_IN_FLIGHT", err.Error(), nil)
	case errors.Is(err, bookings.ErrSeatsTaken):
		response.RespondError(ctx, http.StatusConflict, "SEATS_TAKEN", "One or more seats were just booked by someone else, please choose again", nil)
	default:
		response.RespondError(ctx, http.StatusBadGateway, "SUBMIT_FAILED", "Booking could not be completed, please retry", nil)
	}
}
