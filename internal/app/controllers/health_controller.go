package controllers

import (
	"staffdesk-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController 健康检查控制器
type HealthController struct {
	BaseControllerImpl
}

// NewHealthController 创建健康检查控制器实例
func (f *ControllerFactory) NewHealthController(ctx *gin.Context) *HealthController {
	return &HealthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewHealthController(ctx)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.ParamError(ctx)
		}
	}
}

// Ping 存活探针
// @Summary      Liveness Probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (c *HealthController) Ping() {
	response.Success(c.Context, "pong", gin.H{
		"status": "healthy",
	})
}

// Status 健康状态，包含数据库连通性检查
// @Summary      Health Status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "up"
	sqlDB, err := c.Container.GetDB().DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	if err := c.Container.GetRedisService().Ping(); err != nil {
		redisStatus = "down"
	}

	response.Success(c.Context, "Status fetched successfully", gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
