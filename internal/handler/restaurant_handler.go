package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/myusernamejeep/dineflow-backend/internal/service"
)

type RestaurantHandler struct {
	svc service.RestaurantService
}

func NewRestaurantHandler(svc service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{svc: svc}
}

func (h *RestaurantHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/restaurants", h.ListRestaurants)
	e.GET("/api/restaurants/:id/tables/available", h.CheckAvailability)
}

func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.svc.ListRestaurants(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) CheckAvailability(c echo.Context) error {
	date := c.QueryParam("date")
	timeOfDay := c.QueryParam("time")
	guests := c.QueryParam("guests")

	if date == "" || timeOfDay == "" || guests == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required query parameters (date, time, guests)")
	}

	numGuests, err := strconv.Atoi(guests)
	if err != nil || numGuests < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "number of guests must be a positive integer")
	}

	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "restaurant not found")
	}

	tables, err := h.svc.CheckAvailability(c.Request().Context(), restaurantID, date, timeOfDay, numGuests)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidGuestCount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusOK, tables)
}
