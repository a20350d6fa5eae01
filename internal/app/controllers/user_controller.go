package controllers

import (
	"errors"
	"staffdesk-http-service/internal/app/middleware"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/domain/validators"
	"staffdesk-http-service/internal/error/code"
	"staffdesk-http-service/internal/error/response"
	"staffdesk-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UserController 处理账户本人相关的请求
type UserController struct {
	BaseControllerImpl
}

// NewUserController 创建一个新的用户控制器
func (f *ControllerFactory) NewUserController(ctx *gin.Context) *UserController {
	return &UserController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleUserFunc 返回一个处理账户本人请求的Gin处理函数
func HandleUserFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewUserController(ctx)

		switch method {
		case "getProfile":
			controller.GetProfile()
		case "updateProfile":
			controller.UpdateProfile()
		case "deleteProfile":
			controller.DeleteProfile()
		default:
			response.ParamError(ctx)
		}
	}
}

// GetProfile 获取账户本人的档案视图
// @Summary      Get Own Profile
// @Description  Return the caller's profile; employees get the employee view, admins the admin view
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/getProfile [get]
// @Security     CookieAuth
func (c *UserController) GetProfile() {
	account := middleware.CurrentAccount(c.Context)
	if account == nil {
		response.Unauthorized(c.Context)
		return
	}

	profile, err := c.Container.GetAccountService().GetSelfProfile(account)
	if err != nil {
		logger.Error("获取本人档案失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Profile fetched successfully", profile)
}

// UpdateProfile 更新账户本人资料，仅允许姓名和密码
// @Summary      Update Own Profile
// @Description  Update the caller's own name and/or password
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body models.UpdateSelfRequest true "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/updateProfile [patch]
// @Security     CookieAuth
func (c *UserController) UpdateProfile() {
	account := middleware.CurrentAccount(c.Context)
	if account == nil {
		response.Unauthorized(c.Context)
		return
	}

	var req models.UpdateSelfRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context)
		return
	}

	if errs := validators.UpdateSelf(req); len(errs) > 0 {
		response.ValidationFailed(c.Context, errs)
		return
	}

	updated, err := c.Container.GetAccountService().UpdateSelf(account, req)
	if err != nil {
		logger.Error("更新本人资料失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Profile updated successfully", updated)
}

// DeleteProfile 软删除账户本人，超级管理员不可删除
// @Summary      Delete Own Profile
// @Description  Soft delete the caller's own account and linked profile
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/deleteProfile [delete]
// @Security     CookieAuth
func (c *UserController) DeleteProfile() {
	account := middleware.CurrentAccount(c.Context)
	if account == nil {
		response.Unauthorized(c.Context)
		return
	}

	deleted, err := c.Container.GetAccountService().DeleteSelf(account)
	if err != nil {
		if errors.Is(err, services.ErrSuperAdminProtected) {
			response.Fail(c.Context, code.ErrSuperAdminProtected, nil)
			return
		}
		logger.Error("删除本人账户失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Profile deleted successfully", deleted)
}
