package handler

import (
	"errors"
	"net/http"

	"autocatalog/api/middleware"
	"autocatalog/internal/dto"
	"autocatalog/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CarHandler struct {
	Cars *service.CarService
}

func NewCarHandler(cars *service.CarService) *CarHandler {
	return &CarHandler{Cars: cars}
}

// Create decodes the body and hands it to the service untouched; payload
// validation happens there, after the role check, so callers who may not
// publish at all get a 403 rather than a schema complaint.
func (h *CarHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CarRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	car, err := h.Cars.Create(c.Request().Context(), claims, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp, err := dto.CarResponseFromEntity(car)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *CarHandler) Update(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, errors.New("car not found"))
	}
	var req dto.CarRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	car, err := h.Cars.Update(c.Request().Context(), claims, carID, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp, err := dto.CarResponseFromEntity(car)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CarHandler) Get(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, errors.New("car not found"))
	}
	car, err := h.Cars.Get(c.Request().Context(), carID)
	if err != nil {
		return writeServiceError(c, err)
	}
	resp, err := dto.CarResponseFromEntity(car)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CarHandler) List(c echo.Context) error {
	cars, err := h.Cars.ListAvailable(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	resp, err := dto.CarResponsesFromEntities(cars)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
