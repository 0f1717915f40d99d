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

// ClientHandler handles client CRUD endpoints
type ClientHandler struct {
	clientRepo *repository.ClientRepository
}

func NewClientHandler(clientRepo *repository.ClientRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo}
}

// List godoc
// @Summary List clients
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name, email or phone"
// @Param page query int false "1-based page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} model.Page[model.Client]
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	clients, total, err := h.clientRepo.List(c.Query("search"), page, limit)
	if err != nil {
		log.Printf("Failed to fetch clients: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, model.Page[model.Client]{
		Data:  clients,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get godoc
// @Summary Get a single client
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} model.Client
// @Failure 404 {object} model.ErrorResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid client ID")
	if !ok {
		return
	}

	client, err := h.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Client not found"})
			return
		}
		log.Printf("Failed to fetch client %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// Create godoc
// @Summary Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.ClientRequest true "Client fields"
// @Success 201 {object} model.Client
// @Failure 400 {object} model.ErrorResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Client name is required"})
		return
	}

	client, err := h.clientRepo.Create(req)
	if err != nil {
		log.Printf("Failed to create client: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

// Update godoc
// @Summary Replace a client's fields
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param body body model.ClientRequest true "Client fields"
// @Success 200 {object} model.Client
// @Failure 404 {object} model.ErrorResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid client ID")
	if !ok {
		return
	}

	var req model.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Client name is required"})
		return
	}

	client, err := h.clientRepo.Update(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Client not found"})
			return
		}
		log.Printf("Failed to update client %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// Delete godoc
// @Summary Delete a client and its devices and tasks
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid client ID")
	if !ok {
		return
	}

	if err := h.clientRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Client not found"})
			return
		}
		log.Printf("Failed to delete client %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Client deleted successfully"})
}
