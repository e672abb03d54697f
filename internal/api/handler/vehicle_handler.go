package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autoyard/inventory-system/internal/api/metrics"
	"github.com/autoyard/inventory-system/internal/core/ports"
)

// VehicleHandler handles HTTP requests for the vehicle catalog.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// List handles GET /api/cars. Public.
//
// @Summary      List all vehicles
// @Tags         cars
// @Produce      json
// @Success      200  {array}  vehicleResponse
// @Router       /api/cars [get]
func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleListResponse(vehicles))
}

// Get handles GET /api/cars/:id. Public.
//
// @Summary      Get a vehicle by id
// @Tags         cars
// @Produce      json
// @Param        id   path      string  true  "Vehicle id"
// @Success      200  {object}  vehicleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/cars/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	vehicle, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

// Create handles POST /api/cars. Requires an admin actor.
//
// @Summary      Add a vehicle to the catalog
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  createVehicleResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/cars [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	id, err := h.service.Create(c.Request().Context(), userID, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.VehiclesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createVehicleResponse{
		Message: "Car added successfully",
		ID:      id,
	})
}

// Update handles PUT /api/cars/:id. Any authenticated user may call it; the
// policy engine decides what, if anything, they may change.
//
// @Summary      Update a vehicle
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Vehicle id"
// @Param        body  body      updateVehicleRequest  true  "Field changes"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/cars/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toChanges(req))
	if err != nil {
		return err
	}

	if result.Reserved {
		metrics.ReservationsTotal.Inc()
		metrics.VehicleUpdatesTotal.WithLabelValues("user").Inc()
		return c.JSON(http.StatusOK, messageResponse{Message: "Car reserved successfully"})
	}
	metrics.VehicleUpdatesTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Car updated successfully"})
}

// Delete handles DELETE /api/cars/:id. Requires an admin actor.
//
// @Summary      Delete a vehicle
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Vehicle id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/cars/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.VehiclesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Car deleted successfully"})
}
