package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/myusernamejeep/dineflow-backend/internal/dto"
	"github.com/myusernamejeep/dineflow-backend/internal/service"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/payments/process", h.ProcessPayment)
}

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	var req dto.ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BookingID == "" || req.PaymentMethodID == "" || req.Amount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required payment details")
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	booking, err := h.svc.ProcessPayment(c.Request().Context(), bookingID, req.PaymentMethodID, req.Amount)
	if err != nil {
		var declined *service.PaymentDeclinedError
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyPaid):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.As(err, &declined):
			return c.JSON(http.StatusBadRequest, dto.PaymentResponse{
				Success:      false,
				Message:      "payment failed",
				StripeStatus: declined.Status,
			})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error during payment processing")
		}
	}

	return c.JSON(http.StatusOK, dto.PaymentResponse{
		Success:   true,
		Message:   "payment successful, booking confirmed",
		BookingID: booking.ID.String(),
	})
}
