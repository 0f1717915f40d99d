package repository

import (
	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for Task
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) withRefs() *gorm.DB {
	return r.db.
		Preload("Client").
		Preload("Device").
		Preload("Device.DeviceType")
}

// TaskFilter narrows the task list; zero values mean no filtering
type TaskFilter struct {
	Status   model.TaskStatus
	ClientID *uuid.UUID
	Priority model.TaskPriority
}

// List returns one page of tasks ordered by scheduled date (newest first,
// unscheduled last), plus the unpaginated total for the active filter.
func (r *TaskRepository) List(filter TaskFilter, page, limit int) ([]model.Task, int64, error) {
	scopes := []func(*gorm.DB) *gorm.DB{
		ByStatus(filter.Status),
		ByClient(filter.ClientID),
		ByPriority(filter.Priority),
	}

	var total int64
	if err := r.db.Model(&model.Task{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := r.withRefs().
		Scopes(append(scopes, Paginate(page, limit))...).
		Order("scheduled_date DESC NULLS LAST").
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, total, err
}

// FindByID returns the task with client and device references preloaded
func (r *TaskRepository) FindByID(id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.withRefs().Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts a new task, defaulting status to pending and priority to
// medium when omitted.
func (r *TaskRepository) Create(req model.CreateTaskRequest) (*model.Task, error) {
	task := model.Task{
		ClientID:          req.ClientID,
		DeviceID:          req.DeviceID,
		Title:             req.Title,
		Description:       req.Description,
		Status:            req.Status,
		Priority:          req.Priority,
		ScheduledDate:     req.ScheduledDate,
		EstimatedDuration: req.EstimatedDuration,
		TechnicianNotes:   req.TechnicianNotes,
		MaterialsUsed:     req.MaterialsUsed,
		Cost:              req.Cost,
	}
	if task.Status == "" {
		task.Status = model.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = model.TaskPriorityMedium
	}
	if err := r.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return r.FindByID(task.ID)
}

// Update replaces every mutable column; omitted optional fields become
// NULL. Status transitions are deliberately not guarded.
func (r *TaskRepository) Update(id uuid.UUID, req model.UpdateTaskRequest) (*model.Task, error) {
	var completed interface{}
	if req.CompletedDate != nil {
		completed = req.CompletedDate.Time
	}

	res := r.db.Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
		"client_id":          req.ClientID,
		"device_id":          req.DeviceID,
		"title":              req.Title,
		"description":        req.Description,
		"status":             req.Status,
		"priority":           req.Priority,
		"scheduled_date":     req.ScheduledDate,
		"completed_date":     completed,
		"estimated_duration": req.EstimatedDuration,
		"actual_duration":    req.ActualDuration,
		"technician_notes":   req.TechnicianNotes,
		"materials_used":     req.MaterialsUsed,
		"cost":               req.Cost,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	res := r.db.Where("id = ?", id).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
