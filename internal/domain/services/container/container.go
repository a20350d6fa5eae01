package container

import (
	"sync"

	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	accountService     services.InterfaceAccountService
	adminService       services.InterfaceAdminService
	employeeService    services.InterfaceEmployeeService
	activityLogService services.InterfaceActivityLogService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// 测试Redis连接，失败时会话黑名单降级
	if err := c.redisService.Ping(); err != nil {
		logger.Warning("Redis连接测试失败: %v，注销令牌黑名单将不可用", err)
	}

	// 初始化业务服务
	c.accountService = services.NewAccountService(c.db, c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.employeeService = services.NewEmployeeService(c.db, c.config)
	c.activityLogService = services.NewActivityLogService(c.db, c.config)
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetJWTService 获取JWT服务
func (c *ServiceContainer) GetJWTService() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// GetRedisService 获取Redis会话服务
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetAccountService 获取账户服务
func (c *ServiceContainer) GetAccountService() services.InterfaceAccountService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountService
}

// GetAdminService 获取管理员服务
func (c *ServiceContainer) GetAdminService() services.InterfaceAdminService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.adminService
}

// GetEmployeeService 获取员工服务
func (c *ServiceContainer) GetEmployeeService() services.InterfaceEmployeeService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.employeeService
}

// GetActivityLogService 获取操作日志服务
func (c *ServiceContainer) GetActivityLogService() services.InterfaceActivityLogService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activityLogService
}
