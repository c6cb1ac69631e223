package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/myusernamejeep/dineflow-backend/internal/dto"
	"github.com/myusernamejeep/dineflow-backend/internal/models"
	"github.com/myusernamejeep/dineflow-backend/internal/service"
)

type AdminHandler struct {
	restaurantSvc service.RestaurantService
	bookingSvc    service.BookingService
}

func NewAdminHandler(restaurantSvc service.RestaurantService, bookingSvc service.BookingService) *AdminHandler {
	return &AdminHandler{restaurantSvc: restaurantSvc, bookingSvc: bookingSvc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	// No authentication on the admin surface; auth middleware would attach
	// to this group.
	admin := e.Group("/api/admin")
	admin.POST("/restaurants", h.CreateRestaurant)
	admin.GET("/bookings", h.ListBookings)
	admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
}

func (h *AdminHandler) CreateRestaurant(c echo.Context) error {
	var req dto.CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	restaurant := &models.Restaurant{
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		Phone:            req.Phone,
		Image:            req.Image,
		DepositPerPerson: req.DepositPerPerson,
	}
	for _, t := range req.Tables {
		restaurant.Tables = append(restaurant.Tables, models.Table{
			TableID:  t.TableID,
			Capacity: t.Capacity,
			Type:     t.Type,
		})
	}

	if err := h.restaurantSvc.CreateRestaurant(c.Request().Context(), restaurant); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusCreated, restaurant)
}

func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingSvc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) UpdateBookingStatus(c echo.Context) error {
	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Status validity is checked before the booking lookup, so an invalid
	// status always answers 400 even for an unknown id.
	status := models.BookingStatus(req.Status)
	if status != models.BookingConfirmed && status != models.BookingCancelled && status != models.BookingNoShow {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking status")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	booking, err := h.bookingSvc.UpdateBookingStatus(c.Request().Context(), bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, dto.UpdateBookingStatusResponse{
		Message: "booking status updated successfully",
		Booking: booking,
	})
}
