package middleware

import (
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"time"

	"github.com/gin-gonic/gin"
)

// ActivityLogger 审计日志中间件。请求完成后把请求结果作为旁路写入
// 操作日志；写入由日志服务异步执行，永远不会阻塞或失败主请求
func ActivityLogger(logService services.InterfaceActivityLogService, description string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := &models.ActivityLog{
			Email:      "Guest",
			Action:     c.Request.Method,
			URL:        c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			SourceIP:   c.ClientIP(),
			DurationMs: time.Since(start).Milliseconds(),
			Activity:   description,
		}

		// 已认证请求记录账户快照
		if account := CurrentAccount(c); account != nil {
			entry.AccountID = &account.ID
			entry.Email = account.Email
		}

		logService.Append(entry)
	}
}
