package model

import "github.com/google/uuid"

// ========== Shared ==========

// ErrorResponse carries a short stable error message; internal detail stays
// in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges deletes
type MessageResponse struct {
	Message string `json:"message"`
}

// Page is the envelope for paginated collections
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ========== Auth DTOs ==========

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ========== Client DTOs ==========

// ClientRequest is used for both create and update; PUT is full-replace, so
// omitted optional fields are written back as NULL.
type ClientRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	Country    *string `json:"country" binding:"omitempty,max=100"`
	Notes      *string `json:"notes"`
}

// ========== Device DTOs ==========

type CreateDeviceRequest struct {
	ClientID            uuid.UUID  `json:"client_id" binding:"required"`
	DeviceTypeID        uuid.UUID  `json:"device_type_id" binding:"required"`
	BrandID             *uuid.UUID `json:"brand_id"`
	ModelID             *uuid.UUID `json:"model_id"`
	CustomBrand         *string    `json:"custom_brand" binding:"omitempty,max=100"`
	CustomModel         *string    `json:"custom_model" binding:"omitempty,max=100"`
	SerialNumber        *string    `json:"serial_number" binding:"omitempty,max=100"`
	InstallationDate    *Date      `json:"installation_date"`
	LastMaintenanceDate *Date      `json:"last_maintenance_date"`
	NextMaintenanceDate *Date      `json:"next_maintenance_date"`
	Notes               *string    `json:"notes"`
}

// UpdateDeviceRequest cannot move a device between clients
type UpdateDeviceRequest struct {
	DeviceTypeID        uuid.UUID  `json:"device_type_id" binding:"required"`
	BrandID             *uuid.UUID `json:"brand_id"`
	ModelID             *uuid.UUID `json:"model_id"`
	CustomBrand         *string    `json:"custom_brand" binding:"omitempty,max=100"`
	CustomModel         *string    `json:"custom_model" binding:"omitempty,max=100"`
	SerialNumber        *string    `json:"serial_number" binding:"omitempty,max=100"`
	InstallationDate    *Date      `json:"installation_date"`
	LastMaintenanceDate *Date      `json:"last_maintenance_date"`
	NextMaintenanceDate *Date      `json:"next_maintenance_date"`
	Notes               *string    `json:"notes"`
}

// ========== Task DTOs ==========

type CreateTaskRequest struct {
	ClientID          uuid.UUID    `json:"client_id" binding:"required"`
	DeviceID          *uuid.UUID   `json:"device_id"`
	Title             string       `json:"title" binding:"required,max=255"`
	Description       *string      `json:"description"`
	Status            TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Priority          TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	ScheduledDate     *Date        `json:"scheduled_date"`
	EstimatedDuration *int         `json:"estimated_duration"`
	TechnicianNotes   *string      `json:"technician_notes"`
	MaterialsUsed     *string      `json:"materials_used"`
	Cost              *float64     `json:"cost"`
}

type UpdateTaskRequest struct {
	ClientID          uuid.UUID    `json:"client_id" binding:"required"`
	DeviceID          *uuid.UUID   `json:"device_id"`
	Title             string       `json:"title" binding:"required,max=255"`
	Description       *string      `json:"description"`
	Status            TaskStatus   `json:"status" binding:"required,oneof=pending in_progress completed cancelled"`
	Priority          TaskPriority `json:"priority" binding:"required,oneof=low medium high"`
	ScheduledDate     *Date        `json:"scheduled_date"`
	CompletedDate     *Date        `json:"completed_date"`
	EstimatedDuration *int         `json:"estimated_duration"`
	ActualDuration    *int         `json:"actual_duration"`
	TechnicianNotes   *string      `json:"technician_notes"`
	MaterialsUsed     *string      `json:"materials_used"`
	Cost              *float64     `json:"cost"`
}

// ========== Settings DTOs ==========

type UpdateNotificationSettingsRequest struct {
	EmailEnabled       bool    `json:"email_enabled"`
	SMSEnabled         bool    `json:"sms_enabled"`
	AppEnabled         bool    `json:"app_enabled"`
	DaysBeforeReminder int     `json:"days_before_reminder" binding:"omitempty,min=1,max=365"`
	SMTPHost           *string `json:"smtp_host" binding:"omitempty,max=255"`
	SMTPPort           *int    `json:"smtp_port" binding:"omitempty,min=1,max=65535"`
	SMTPUser           *string `json:"smtp_user" binding:"omitempty,max=255"`
	SMTPPassword       *string `json:"smtp_password" binding:"omitempty,max=255"`
	TwilioAccountSID   *string `json:"twilio_account_sid" binding:"omitempty,max=255"`
	TwilioAuthToken    *string `json:"twilio_auth_token" binding:"omitempty,max=255"`
	TwilioPhoneNumber  *string `json:"twilio_phone_number" binding:"omitempty,max=50"`
}

// ========== Statistics DTOs ==========

// DeviceTypeCount is one row of the devices-by-type breakdown. Types with no
// devices still appear with a zero count.
type DeviceTypeCount struct {
	Name   string `json:"name"`
	NameSl string `json:"name_sl"`
	Count  int64  `json:"count"`
}

// TaskStatusCount is one row of the tasks-by-status breakdown
type TaskStatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int64      `json:"count"`
}

// DashboardStats is the aggregation served at /statistics/dashboard
type DashboardStats struct {
	Clients             int64             `json:"clients"`
	Devices             int64             `json:"devices"`
	Tasks               int64             `json:"tasks"`
	PendingTasks        int64             `json:"pendingTasks"`
	InProgressTasks     int64             `json:"inProgressTasks"`
	CompletedTasks      int64             `json:"completedTasks"`
	CancelledTasks      int64             `json:"cancelledTasks"`
	DevicesByType       []DeviceTypeCount `json:"devicesByType"`
	TasksByStatus       []TaskStatusCount `json:"tasksByStatus"`
	UpcomingMaintenance int64             `json:"upcomingMaintenance"`
	OverdueMaintenance  int64             `json:"overdueMaintenance"`
}
