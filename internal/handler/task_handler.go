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

// TaskHandler handles service task endpoints
type TaskHandler struct {
	taskRepo *repository.TaskRepository
}

func NewTaskHandler(taskRepo *repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

func taskResponses(tasks []model.Task) []model.TaskResponse {
	out := make([]model.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, tasks[i].ToResponse())
	}
	return out
}

// List godoc
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param client_id query string false "Filter by client"
// @Param priority query string false "Filter by priority"
// @Param page query int false "1-based page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} model.Page[model.TaskResponse]
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	page, limit := pageParams(c)

	filter := repository.TaskFilter{
		Status:   model.TaskStatus(c.Query("status")),
		ClientID: clientID,
		Priority: model.TaskPriority(c.Query("priority")),
	}

	tasks, total, err := h.taskRepo.List(filter, page, limit)
	if err != nil {
		log.Printf("Failed to fetch tasks: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, model.Page[model.TaskResponse]{
		Data:  taskResponses(tasks),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Get godoc
// @Summary Get a single task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.TaskResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid task ID")
	if !ok {
		return
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Task not found"})
			return
		}
		log.Printf("Failed to fetch task %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, task.ToResponse())
}

// Create godoc
// @Summary Create a task
// @Description Status defaults to pending and priority to medium
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateTaskRequest true "Task fields"
// @Success 201 {object} model.TaskResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Client ID and title are required"})
		return
	}

	task, err := h.taskRepo.Create(req)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Unknown client or device"})
			return
		}
		log.Printf("Failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, task.ToResponse())
}

// Update godoc
// @Summary Replace a task's fields
// @Description Any enumerated status value is accepted; transitions are not guarded
// @Tags Tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param body body model.UpdateTaskRequest true "Task fields"
// @Success 200 {object} model.TaskResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid task ID")
	if !ok {
		return
	}

	var req model.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Client ID, title, status and priority are required"})
		return
	}

	task, err := h.taskRepo.Update(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Task not found"})
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Unknown client or device"})
			return
		}
		log.Printf("Failed to update task %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task.ToResponse())
}

// Delete godoc
// @Summary Delete a task
// @Tags Tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid task ID")
	if !ok {
		return
	}

	if err := h.taskRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Task not found"})
			return
		}
		log.Printf("Failed to delete task %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Task deleted successfully"})
}
