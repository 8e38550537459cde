package promotions

import (
	"net/http"

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

// CheckCoupon handles POST /api/v1/promotions/check
func (c *Controller) CheckCoupon(ctx *gin.Context) {
	var req CheckCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Check(ctx.Request.Context(), req)
	if err != nil {
		if IsRejection(err) {
			// User-correctable: the client keeps the seat selection and
			// shows the reason inline.
			response.RespondError(ctx, http.StatusUnprocessableEntity, "COUPON_REJECTED", err.Error(), nil)
			return
		}
		response.RespondError(ctx, http.StatusBadGateway, "COUPON_CHECK_FAILED", "Coupon check failed, please retry", nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Coupon is valid", result, nil)
}
