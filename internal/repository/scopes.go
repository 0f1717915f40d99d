package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

const (
	// DefaultPage is the 1-based page applied when none is requested
	DefaultPage = 1
	// DefaultLimit is the page size applied when none is requested
	DefaultLimit = 50
)

// Normalize clamps page/limit to sane values
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Paginate applies 1-based page/limit as offset/limit
func Paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	page, limit = Normalize(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// ClientSearch matches a case-insensitive substring against name, email and
// phone. Values are always bound as parameters, never spliced into SQL.
func ClientSearch(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + strings.ToLower(search) + "%"
		return db.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			pattern, pattern, pattern,
		)
	}
}

// ByClient filters rows belonging to a client
func ByClient(clientID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if clientID == nil {
			return db
		}
		return db.Where("client_id = ?", *clientID)
	}
}

// ByStatus filters tasks by status
func ByStatus(status model.TaskStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

// ByPriority filters tasks by priority
func ByPriority(priority model.TaskPriority) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if priority == "" {
			return db
		}
		return db.Where("priority = ?", priority)
	}
}
