package controllers

import (
	"errors"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/domain/validators"
	"staffdesk-http-service/internal/error/code"
	"staffdesk-http-service/internal/error/response"
	"staffdesk-http-service/pkg/logger"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ActivityLogController 处理操作审计日志相关的请求，仅超级管理员可访问
type ActivityLogController struct {
	BaseControllerImpl
}

// NewActivityLogController 创建一个新的操作日志控制器
func (f *ControllerFactory) NewActivityLogController(ctx *gin.Context) *ActivityLogController {
	return &ActivityLogController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleActivityLogFunc 返回一个处理操作日志请求的Gin处理函数
func HandleActivityLogFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewActivityLogController(ctx)

		switch method {
		case "list":
			controller.GetLogs()
		case "delete":
			controller.DeleteLog()
		default:
			response.ParamError(ctx)
		}
	}
}

// GetLogs 获取操作日志列表
// @Summary      List Activity Logs
// @Description  Paginated audit log, newest first; returns both the filtered total and the overall total
// @Tags         ActivityLog
// @Produce      json
// @Param        limit query int false "Page size, max 100"
// @Param        skip query int false "Records to skip; takes precedence over page"
// @Param        page query int false "1-based page number"
// @Param        search query string false "Substring match on activity, email, action or url"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /activity-log [get]
// @Security     CookieAuth
func (c *ActivityLogController) GetLogs() {
	var q models.ListQuery
	if err := c.Context.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Context)
		return
	}

	logs, filteredTotal, overallTotal, err := c.Container.GetActivityLogService().GetAllLogs(q)
	if err != nil {
		logger.Error("查询操作日志失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	limit, offset := q.Normalize()
	response.Success(c.Context, "Activity logs fetched successfully", gin.H{
		"items":        logs,
		"overallTotal": overallTotal,
		"pagination":   models.NewPaginationResult(filteredTotal, offset/limit+1, limit),
	})
}

// DeleteLog 软删除一条操作日志
// @Summary      Delete Activity Log
// @Tags         ActivityLog
// @Produce      json
// @Param        id path int true "Activity log ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /activity-log/{id} [delete]
// @Security     CookieAuth
func (c *ActivityLogController) DeleteLog() {
	idStr := c.Context.Param("id")
	if msg := validators.ID(idStr); msg != "" {
		response.ValidationFailed(c.Context, gin.H{"id": msg})
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.ValidationFailed(c.Context, gin.H{"id": "ID is not a valid identifier"})
		return
	}

	entry, err := c.Container.GetActivityLogService().DeleteLog(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Fail(c.Context, code.ErrActivityLogNotFound, nil)
			return
		}
		logger.Error("删除操作日志失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Activity log deleted successfully", entry)
}
