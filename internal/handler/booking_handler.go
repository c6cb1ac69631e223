package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/myusernamejeep/dineflow-backend/internal/dto"
	"github.com/myusernamejeep/dineflow-backend/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/bookings", h.CreateBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if !req.HasRequiredFields() {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required booking details")
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "restaurant not found")
	}

	result, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		RestaurantID:  restaurantID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BookingDate:   req.BookingDate,
		BookingTime:   req.BookingTime,
		NumGuests:     req.NumGuests,
		TableID:       req.TableID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTableNotInInventory),
			errors.Is(err, service.ErrTableTooSmall):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTableUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message:        "booking created successfully, awaiting payment",
		BookingID:      result.Booking.ID.String(),
		DepositAmount:  result.Booking.DepositAmount,
		RestaurantName: result.RestaurantName,
		TableDetails:   result.Table,
	})
}
