package service

import (
	"github.com/mkralj/heating-cms/internal/model"
	"gorm.io/gorm"
)

// UpcomingWindowDays is the dashboard's look-ahead for maintenance that is
// coming due. Inclusive on both ends.
const UpcomingWindowDays = 30

// StatsService computes the dashboard aggregation. It reads the store
// directly; every call is a fresh, side-effect-free snapshot.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Dashboard returns entity totals, per-status task counts, the
// devices-by-type breakdown and the maintenance windows as of now.
func (s *StatsService) Dashboard() (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		DevicesByType: []model.DeviceTypeCount{},
		TasksByStatus: []model.TaskStatusCount{},
	}

	if err := s.db.Model(&model.Client{}).Count(&stats.Clients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Device{}).Count(&stats.Devices).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Task{}).Count(&stats.Tasks).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.TasksByStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range stats.TasksByStatus {
		switch row.Status {
		case model.TaskStatusPending:
			stats.PendingTasks = row.Count
		case model.TaskStatusInProgress:
			stats.InProgressTasks = row.Count
		case model.TaskStatusCompleted:
			stats.CompletedTasks = row.Count
		case model.TaskStatusCancelled:
			stats.CancelledTasks = row.Count
		}
	}

	// Left join so types with zero installed devices still show up
	if err := s.db.Table("device_types").
		Select("device_types.name AS name, device_types.name_sl AS name_sl, COUNT(devices.id) AS count").
		Joins("LEFT JOIN devices ON devices.device_type_id = device_types.id").
		Group("device_types.id, device_types.name, device_types.name_sl").
		Order("count DESC").
		Scan(&stats.DevicesByType).Error; err != nil {
		return nil, err
	}

	today := model.Today()
	horizon := today.AddDays(UpcomingWindowDays)

	if err := s.db.Model(&model.Device{}).
		Where("next_maintenance_date IS NOT NULL").
		Where("next_maintenance_date >= ? AND next_maintenance_date <= ?", today.Time, horizon.Time).
		Count(&stats.UpcomingMaintenance).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&model.Device{}).
		Where("next_maintenance_date IS NOT NULL").
		Where("next_maintenance_date < ?", today.Time).
		Count(&stats.OverdueMaintenance).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
