package routes

import (
	_ "staffdesk-http-service/docs"
	"staffdesk-http-service/internal/app/controllers"
	"staffdesk-http-service/internal/app/middleware"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services/container"
	"staffdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，带凭证的跨域请求只允许配置中的来源
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 为每个请求附加请求ID
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(cfg, db, serviceContainer.GetRedisService())
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	serviceContainer *container.ServiceContainer,
) {
	factory := controllers.NewControllerFactory(serviceContainer)
	logService := serviceContainer.GetActivityLogService()

	// API 路由根路径
	api := r.Group("/api")

	// 公共路由 - 每秒允许10个请求，最多突发20个请求
	public := api.Group("/")
	public.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	public.GET("/ping", controllers.HandleHealthFunc(factory, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(factory, "ping"))
	public.GET("/health/status", controllers.HandleHealthFunc(factory, "status"))

	// 认证路由 - 按路径限流，登录口是暴力破解的首要目标
	authGroup := public.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.Use(middleware.ActivityLogger(logService, "Authentication"))
	authGroup.POST("/login", controllers.HandleAuthFunc(factory, "login"))
	authGroup.POST("/logout",
		middleware.Authenticate(),
		controllers.HandleAuthFunc(factory, "logout"))

	// 账户本人路由 - 任何已认证账户
	users := api.Group("/users")
	users.Use(middleware.IPRateLimiter(30, 50))
	users.Use(middleware.Authenticate())
	users.Use(middleware.ActivityLogger(logService, "Self profile"))
	users.GET("/getProfile", controllers.HandleUserFunc(factory, "getProfile"))
	users.PATCH("/updateProfile", controllers.HandleUserFunc(factory, "updateProfile"))
	users.DELETE("/deleteProfile", controllers.HandleUserFunc(factory, "deleteProfile"))

	// 员工CRUD路由 - 管理员及超级管理员
	employees := api.Group("/employees")
	employees.Use(middleware.IPRateLimiter(30, 50))
	employees.Use(middleware.Authenticate(models.RoleAdmin, models.RoleSuperAdmin))
	employees.Use(middleware.ActivityLogger(logService, "Employee management"))
	employees.GET("", controllers.HandleEmployeeFunc(factory, "list"))
	employees.POST("", controllers.HandleEmployeeFunc(factory, "create"))
	employees.GET("/:id", controllers.HandleEmployeeFunc(factory, "get"))
	employees.PATCH("/:id", controllers.HandleEmployeeFunc(factory, "update"))
	employees.DELETE("/:id", controllers.HandleEmployeeFunc(factory, "delete"))

	// 管理员CRUD路由 - 仅超级管理员
	superAdmin := api.Group("/super-admin")
	superAdmin.Use(middleware.IPRateLimiter(30, 50))
	superAdmin.Use(middleware.Authenticate(models.RoleSuperAdmin))
	superAdmin.Use(middleware.ActivityLogger(logService, "Admin management"))
	superAdmin.GET("", controllers.HandleAdminFunc(factory, "list"))
	superAdmin.POST("", controllers.HandleAdminFunc(factory, "create"))
	superAdmin.GET("/:id", controllers.HandleAdminFunc(factory, "get"))
	superAdmin.DELETE("/:id", controllers.HandleAdminFunc(factory, "delete"))

	// 操作日志路由 - 仅超级管理员
	activityLog := api.Group("/activity-log")
	activityLog.Use(middleware.IPRateLimiter(30, 50))
	activityLog.Use(middleware.Authenticate(models.RoleSuperAdmin))
	activityLog.GET("", controllers.HandleActivityLogFunc(factory, "list"))
	activityLog.DELETE("/:id", controllers.HandleActivityLogFunc(factory, "delete"))
}
