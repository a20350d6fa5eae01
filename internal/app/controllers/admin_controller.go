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

// AdminController 处理管理员档案相关的请求，仅超级管理员可访问
type AdminController struct {
	BaseControllerImpl
}

// NewAdminController 创建一个新的管理员控制器
func (f *ControllerFactory) NewAdminController(ctx *gin.Context) *AdminController {
	return &AdminController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewAdminController(ctx)

		switch method {
		case "list":
			controller.GetAdmins()
		case "get":
			controller.GetAdmin()
		case "create":
			controller.CreateAdmin()
		case "delete":
			controller.DeleteAdmin()
		default:
			response.ParamError(ctx)
		}
	}
}

// parseIDParam 解析并校验URL中的ID参数
func (c *AdminController) parseIDParam() (uint, bool) {
	idStr := c.Context.Param("id")
	if msg := validators.ID(idStr); msg != "" {
		response.ValidationFailed(c.Context, gin.H{"id": msg})
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		response.ValidationFailed(c.Context, gin.H{"id": "ID is not a valid identifier"})
		return 0, false
	}
	return uint(id), true
}

// GetAdmins 获取管理员列表
// @Summary      List Admins
// @Description  Paginated admin list with case-insensitive search over name/email
// @Tags         SuperAdmin
// @Produce      json
// @Param        limit query int false "Page size, max 100"
// @Param        skip query int false "Records to skip; takes precedence over page"
// @Param        page query int false "1-based page number"
// @Param        search query string false "Substring match on name or email"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /super-admin [get]
// @Security     CookieAuth
func (c *AdminController) GetAdmins() {
	var q models.ListQuery
	if err := c.Context.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Context)
		return
	}

	admins, total, err := c.Container.GetAdminService().GetAllAdmins(q)
	if err != nil {
		logger.Error("查询管理员列表失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	limit, offset := q.Normalize()
	response.Success(c.Context, "Admins fetched successfully", gin.H{
		"items":      admins,
		"pagination": models.NewPaginationResult(total, offset/limit+1, limit),
	})
}

// GetAdmin 获取单个管理员详情
// @Summary      Get Admin By ID
// @Tags         SuperAdmin
// @Produce      json
// @Param        id path int true "Admin profile ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /super-admin/{id} [get]
// @Security     CookieAuth
func (c *AdminController) GetAdmin() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	admin, err := c.Container.GetAdminService().GetAdminByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Fail(c.Context, code.ErrAdminNotFound, nil)
			return
		}
		logger.Error("查询管理员失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Admin fetched successfully", admin)
}

// CreateAdmin 创建新管理员
// @Summary      Create Admin
// @Description  Provision an admin account plus linked profile
// @Tags         SuperAdmin
// @Accept       json
// @Produce      json
// @Param        request body models.CreateAdminRequest true "Admin fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /super-admin [post]
// @Security     CookieAuth
func (c *AdminController) CreateAdmin() {
	var req models.CreateAdminRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context)
		return
	}

	if errs := validators.CreateAdmin(req); len(errs) > 0 {
		response.ValidationFailed(c.Context, errs)
		return
	}

	admin, err := c.Container.GetAdminService().CreateAdmin(req)
	if err != nil {
		c.failFromServiceError(err)
		return
	}

	response.Created(c.Context, "Admin created successfully", admin)
}

// DeleteAdmin 软删除管理员档案并级联账户
// @Summary      Delete Admin
// @Tags         SuperAdmin
// @Produce      json
// @Param        id path int true "Admin profile ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /super-admin/{id} [delete]
// @Security     CookieAuth
func (c *AdminController) DeleteAdmin() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	admin, err := c.Container.GetAdminService().DeleteAdmin(id)
	if err != nil {
		c.failFromServiceError(err)
		return
	}

	response.Success(c.Context, "Admin deleted successfully", admin)
}

// failFromServiceError 将服务层错误映射为统一响应
func (c *AdminController) failFromServiceError(err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(c.Context, code.ErrAdminNotFound, nil)
	case errors.Is(err, services.ErrEmailConflict):
		response.FailWithMessage(c.Context, code.ErrEmailAlreadyExist,
			"Email already in use", gin.H{"email": "Email already in use"})
	case errors.Is(err, services.ErrCodeConflict):
		response.FailWithMessage(c.Context, code.ErrAdminCodeAlreadyExist,
			"Admin code already in use", gin.H{"code": "Admin code already in use"})
	case errors.Is(err, services.ErrSuperAdminProtected):
		response.Fail(c.Context, code.ErrSuperAdminProtected, nil)
	default:
		logger.Error("管理员操作失败: %v", err)
		response.ServerError(c.Context)
	}
}
