package middleware

import (
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/error/response"
	"staffdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 上下文键，鉴权通过后已解析的账户挂在请求上下文里
const (
	ContextAccountKey = "account"
	ContextTokenKey   = "sessionToken"
)

var (
	jwtService     services.InterfaceJWTService
	redisService   services.InterfaceRedisService
	accountService services.InterfaceAccountService
	adminService   services.InterfaceAdminService
	cookieName     string
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB, redis services.InterfaceRedisService) {
	jwtService = services.NewJWTService(cfg)
	redisService = redis
	accountService = services.NewAccountService(db, cfg)
	adminService = services.NewAdminService(db, cfg)
	cookieName = cfg.SessionCookieName
}

// Authenticate 会话鉴权中间件。凭证从HTTP-only Cookie中读取；
// 所有失败路径(缺失、签名或过期无效、账户不存在或已删除、角色不在
// 许可列表内、管理员权限被吊销)统一返回同一个401响应，不暴露原因。
// permittedRoles为空表示任何已认证账户均可访问
func Authenticate(permittedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cookieName)
		if err != nil || tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 已注销的令牌视为无效
		if redisService != nil && redisService.IsTokenBlacklisted(tokenString) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 解析为未删除的账户
		account, err := accountService.GetAccountByID(claims.AccountID)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 角色许可列表检查
		if len(permittedRoles) > 0 && !roleAllowed(account.Role, permittedRoles) {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 第二层开关：REVOKED的管理员即使账户有效也不能通过授权
		if account.Role == models.RoleAdmin {
			profile, err := adminService.GetAdminByAccountID(account.ID)
			if err != nil || profile.Permission != models.PermissionGranted {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		// 存储已解析的账户到上下文
		c.Set(ContextAccountKey, account)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}

// roleAllowed 检查角色是否在许可列表内
func roleAllowed(role models.Role, permitted []models.Role) bool {
	for _, p := range permitted {
		if role == p {
			return true
		}
	}
	return false
}

// CurrentAccount 从上下文取出已解析的账户
func CurrentAccount(c *gin.Context) *models.Account {
	value, exists := c.Get(ContextAccountKey)
	if !exists {
		return nil
	}
	account, ok := value.(*models.Account)
	if !ok {
		return nil
	}
	return account
}
