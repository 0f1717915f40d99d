package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus enumerates the lifecycle of a service task. Transitions are not
// guarded server-side; callers may move a task to any enumerated value.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskPriority enumerates scheduling urgency
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents scheduled or completed service work for a client,
// optionally tied to one of their devices.
type Task struct {
	ID                uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID    `json:"client_id" gorm:"type:uuid;not null;index"`
	Client            Client       `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	DeviceID          *uuid.UUID   `json:"device_id" gorm:"type:uuid;index"`
	Device            *Device      `json:"-" gorm:"foreignKey:DeviceID;constraint:OnDelete:SET NULL"`
	Title             string       `json:"title" gorm:"not null;size:255"`
	Description       *string      `json:"description" gorm:"type:text"`
	Status            TaskStatus   `json:"status" gorm:"size:50;default:'pending'"`
	Priority          TaskPriority `json:"priority" gorm:"size:50;default:'medium'"`
	ScheduledDate     *Date        `json:"scheduled_date"`
	CompletedDate     *time.Time   `json:"completed_date"`
	EstimatedDuration *int         `json:"estimated_duration"`
	ActualDuration    *int         `json:"actual_duration"`
	TechnicianNotes   *string      `json:"technician_notes" gorm:"type:text"`
	MaterialsUsed     *string      `json:"materials_used" gorm:"type:text"`
	Cost              *float64     `json:"cost" gorm:"type:decimal(10,2)"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskResponse flattens client contact details and device identification
// onto the task for list and detail views.
type TaskResponse struct {
	Task
	ClientName       string  `json:"client_name"`
	ClientPhone      *string `json:"client_phone"`
	ClientEmail      *string `json:"client_email"`
	DeviceSerial     *string `json:"device_serial"`
	DeviceTypeName   *string `json:"device_type_name"`
	DeviceTypeNameSl *string `json:"device_type_name_sl"`
}

// ToResponse builds the read model from a task with preloaded associations
func (t *Task) ToResponse() TaskResponse {
	resp := TaskResponse{
		Task:        *t,
		ClientName:  t.Client.Name,
		ClientPhone: t.Client.Phone,
		ClientEmail: t.Client.Email,
	}
	if t.Device != nil {
		resp.DeviceSerial = t.Device.SerialNumber
		resp.DeviceTypeName = &t.Device.DeviceType.Name
		resp.DeviceTypeNameSl = &t.Device.DeviceType.NameSl
	}
	return resp
}
