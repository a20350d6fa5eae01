package services

import (
	"errors"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/logger"
	"strings"

	"gorm.io/gorm"
)

// InterfaceActivityLogService defines the activity log service interface
type InterfaceActivityLogService interface {
	Append(entry *models.ActivityLog)
	GetAllLogs(q models.ListQuery) ([]models.ActivityLog, int64, int64, error)
	DeleteLog(id uint) (*models.ActivityLog, error)
}

// ActivityLogService 提供操作审计日志相关的服务
type ActivityLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewActivityLogService 创建一个新的操作日志服务
func NewActivityLogService(db *gorm.DB, cfg *config.Config) InterfaceActivityLogService {
	return &ActivityLogService{
		DB:     db,
		Config: cfg,
	}
}

// Append 追加一条审计记录。旁路通道：异步写入，失败只记日志，
// 永远不影响主请求的响应
func (s *ActivityLogService) Append(entry *models.ActivityLog) {
	go func() {
		if err := s.DB.Create(entry).Error; err != nil {
			logger.Warning("写入操作日志失败: %v", err)
		}
	}()
}

// GetAllLogs 获取操作日志列表，按创建时间倒序。返回匹配当前搜索条件
// 的总数和忽略搜索条件的全量总数，两者供调用方区分"无匹配"与"无日志"
func (s *ActivityLogService) GetAllLogs(q models.ListQuery) ([]models.ActivityLog, int64, int64, error) {
	var logs []models.ActivityLog
	var filteredTotal, overallTotal int64

	query := s.DB.Model(&models.ActivityLog{}).Where("deleted = ?", false)

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		query = query.Where(
			"LOWER(activity) LIKE ? OR LOWER(email) LIKE ? OR LOWER(action) LIKE ? OR LOWER(url) LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&filteredTotal).Error; err != nil {
		return nil, 0, 0, err
	}
	if err := s.DB.Model(&models.ActivityLog{}).Where("deleted = ?", false).
		Count(&overallTotal).Error; err != nil {
		return nil, 0, 0, err
	}

	limit, offset := q.Normalize()
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, 0, err
	}

	return logs, filteredTotal, overallTotal, nil
}

// DeleteLog 软删除一条操作日志
func (s *ActivityLogService) DeleteLog(id uint) (*models.ActivityLog, error) {
	var entry models.ActivityLog
	err := s.DB.Where("id = ? AND deleted = ?", id, false).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.DB.Model(&models.ActivityLog{}).Where("id = ?", id).
		Update("deleted", true).Error; err != nil {
		return nil, err
	}

	entry.Deleted = true
	return &entry, nil
}
