package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/repository"
	"gorm.io/gorm"
)

// DeviceHandler handles device endpoints, including the catalog reads
type DeviceHandler struct {
	deviceRepo  *repository.DeviceRepository
	catalogRepo *repository.CatalogRepository
}

func NewDeviceHandler(deviceRepo *repository.DeviceRepository, catalogRepo *repository.CatalogRepository) *DeviceHandler {
	return &DeviceHandler{deviceRepo: deviceRepo, catalogRepo: catalogRepo}
}

func deviceResponses(devices []model.Device) []model.DeviceResponse {
	out := make([]model.DeviceResponse, 0, len(devices))
	for i := range devices {
		out = append(out, devices[i].ToResponse())
	}
	return out
}

// List godoc
// @Summary List devices
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param client_id query string false "Filter by owning client"
// @Param page query int false "1-based page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} model.Page[model.DeviceResponse]
// @Router /devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	page, limit := pageParams(c)

	devices, total, err := h.deviceRepo.List(clientID, page, limit)
	if err != nil {
		log.Printf("Failed to fetch devices: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch devices"})
		return
	}

	c.JSON(http.StatusOK, model.Page[model.DeviceResponse]{
		Data:  deviceResponses(devices),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ListByClient godoc
// @Summary List every device of one client
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {array} model.DeviceResponse
// @Router /devices/client/{clientId} [get]
func (h *DeviceHandler) ListByClient(c *gin.Context) {
	clientID, ok := pathID(c, "clientId", "Invalid client ID")
	if !ok {
		return
	}

	devices, err := h.deviceRepo.ListByClient(clientID)
	if err != nil {
		log.Printf("Failed to fetch devices for client %s: %v", clientID, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch devices"})
		return
	}

	c.JSON(http.StatusOK, deviceResponses(devices))
}

// DeviceTypes godoc
// @Summary List device types
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.DeviceType
// @Router /devices/types [get]
func (h *DeviceHandler) DeviceTypes(c *gin.Context) {
	types, err := h.catalogRepo.DeviceTypes()
	if err != nil {
		log.Printf("Failed to fetch device types: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch device types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

// Brands godoc
// @Summary List brands
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Brand
// @Router /devices/brands [get]
func (h *DeviceHandler) Brands(c *gin.Context) {
	brands, err := h.catalogRepo.Brands()
	if err != nil {
		log.Printf("Failed to fetch brands: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// ModelsByBrand godoc
// @Summary List catalog models of a brand
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param brandId path string true "Brand ID"
// @Success 200 {array} model.CatalogModel
// @Router /devices/brands/{brandId}/models [get]
func (h *DeviceHandler) ModelsByBrand(c *gin.Context) {
	brandID, ok := pathID(c, "brandId", "Invalid brand ID")
	if !ok {
		return
	}

	models, err := h.catalogRepo.ModelsByBrand(brandID)
	if err != nil {
		log.Printf("Failed to fetch models for brand %s: %v", brandID, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch models"})
		return
	}
	c.JSON(http.StatusOK, models)
}

// Get godoc
// @Summary Get a single device
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} model.DeviceResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /devices/{id} [get]
func (h *DeviceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid device ID")
	if !ok {
		return
	}

	device, err := h.deviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Device not found"})
			return
		}
		log.Printf("Failed to fetch device %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch device"})
		return
	}

	c.JSON(http.StatusOK, device.ToResponse())
}

// Create godoc
// @Summary Create a device
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateDeviceRequest true "Device fields"
// @Success 201 {object} model.DeviceResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /devices [post]
func (h *DeviceHandler) Create(c *gin.Context) {
	var req model.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Client ID and device type are required"})
		return
	}

	device, err := h.deviceRepo.Create(req)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Unknown client, device type, brand or model"})
			return
		}
		log.Printf("Failed to create device: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create device"})
		return
	}

	c.JSON(http.StatusCreated, device.ToResponse())
}

// Update godoc
// @Summary Replace a device's fields
// @Tags Devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Param body body model.UpdateDeviceRequest true "Device fields"
// @Success 200 {object} model.DeviceResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /devices/{id} [put]
func (h *DeviceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid device ID")
	if !ok {
		return
	}

	var req model.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Device type is required"})
		return
	}

	device, err := h.deviceRepo.Update(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Device not found"})
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Unknown device type, brand or model"})
			return
		}
		log.Printf("Failed to update device %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update device"})
		return
	}

	c.JSON(http.StatusOK, device.ToResponse())
}

// Delete godoc
// @Summary Delete a device
// @Description Tasks referencing the device survive with the reference cleared
// @Tags Devices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Device ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /devices/{id} [delete]
func (h *DeviceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid device ID")
	if !ok {
		return
	}

	if err := h.deviceRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Device not found"})
			return
		}
		log.Printf("Failed to delete device %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete device"})
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Device deleted successfully"})
}
