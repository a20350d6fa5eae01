// @title           StaffDesk HTTP Service API
// @version         1.0
// @description     A role-based employee and admin management backend with session authentication and activity auditing
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.yourcompany.com/support
// @contact.email  support@yourcompany.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
// @description                 Session token issued by the login endpoint
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"staffdesk-http-service/internal/app/routes"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/infrastructure/config"
	"staffdesk-http-service/internal/infrastructure/database"
	Logger "staffdesk-http-service/pkg/logger"
	"staffdesk-http-service/pkg/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建优化的数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	if err := pool.HealthCheck(); err != nil {
		log.Fatalf("数据库健康检查失败: %v", err)
	}
	db := pool.GetDB()

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表，不会删除或修改列
		log.Println("在标准模式下运行，将只添加新列和新表")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有超级管理员账户
	ensureSuperAdminExists(db, cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 使用配置中的端口，而不是直接从环境变量获取
	port := cfg.ServerPort

	// 打印系统信息
	printSystemInfo(pool)

	// 启动服务器 - 注意监听所有接口(0.0.0.0)而不是只监听localhost
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.AdminProfile{},
		&models.EmployeeProfile{},
		&models.ActivityLog{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	// 获取底层SQL连接
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	// 禁用外键约束检查
	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("禁用外键约束检查失败: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1") // 确保在函数结束时重新启用外键约束

	// 删除所有表
	tables := []string{
		"accounts", "admin_profiles", "employee_profiles", "activity_logs",
	}

	for _, table := range tables {
		log.Printf("删除表: %s", table)
		_, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
		if err != nil {
			log.Printf("删除表失败: %v", err)
		}
	}

	// 重新创建表
	return autoMigrate(db)
}

// ensureSuperAdminExists 确保系统中有超级管理员账户
func ensureSuperAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Account{}).
		Where("role = ? AND deleted = ?", models.RoleSuperAdmin, false).
		Count(&count)

	if count == 0 {
		// 如果没有超级管理员，创建默认超级管理员
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("生成密码哈希失败: %v", err)
		}

		account := models.Account{
			Name:     "Super Admin",
			Email:    cfg.SuperAdminEmail,
			Password: string(hashedPassword),
			Role:     models.RoleSuperAdmin,
		}

		if err := db.Create(&account).Error; err != nil {
			log.Fatalf("创建默认超级管理员失败: %v", err)
		}

		profile := models.AdminProfile{
			AccountID:  account.ID,
			Code:       utils.GenerateAdminCode(),
			Department: "Operations",
			Permission: models.PermissionGranted,
			Active:     true,
		}

		if err := db.Create(&profile).Error; err != nil {
			log.Fatalf("创建超级管理员档案失败: %v", err)
		}

		log.Println("已创建默认超级管理员账户")
	}
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	// 打印数据库连接池信息
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("数据库连接池状态: %+v", stats)
	}

	// 打印系统资源信息
	log.Printf("系统CPU核心数: %d", runtime.NumCPU())
	log.Printf("当前Go协程数: %d", runtime.NumGoroutine())

	// 打印内存信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
