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
	"strconv"

	"github.com/gin-gonic/gin"
)

// EmployeeController 处理员工档案相关的请求
type EmployeeController struct {
	BaseControllerImpl
}

// NewEmployeeController 创建一个新的员工控制器
func (f *ControllerFactory) NewEmployeeController(ctx *gin.Context) *EmployeeController {
	return &EmployeeController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleEmployeeFunc 返回一个处理员工请求的Gin处理函数
func HandleEmployeeFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewEmployeeController(ctx)

		switch method {
		case "list":
			controller.GetEmployees()
		case "get":
			controller.GetEmployee()
		case "create":
			controller.CreateEmployee()
		case "update":
			controller.UpdateEmployee()
		case "delete":
			controller.DeleteEmployee()
		default:
			response.ParamError(ctx)
		}
	}
}

// parseIDParam 解析并校验URL中的ID参数
func (c *EmployeeController) parseIDParam() (uint, bool) {
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

// GetEmployees 获取员工列表
// @Summary      List Employees
// @Description  Paginated employee list with case-insensitive search over name/email and optional department filter
// @Tags         Employees
// @Produce      json
// @Param        limit query int false "Page size, max 100"
// @Param        skip query int false "Records to skip; takes precedence over page"
// @Param        page query int false "1-based page number"
// @Param        search query string false "Substring match on name or email"
// @Param        department query string false "Department filter"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employees [get]
// @Security     CookieAuth
func (c *EmployeeController) GetEmployees() {
	var q models.ListQuery
	if err := c.Context.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Context)
		return
	}
	department := c.Context.Query("department")

	employees, total, err := c.Container.GetEmployeeService().GetAllEmployees(q, department)
	if err != nil {
		logger.Error("查询员工列表失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	limit, offset := q.Normalize()
	response.Success(c.Context, "Employees fetched successfully", gin.H{
		"items":      employees,
		"pagination": models.NewPaginationResult(total, offset/limit+1, limit),
	})
}

// GetEmployee 获取单个员工详情
// @Summary      Get Employee By ID
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee profile ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
// @Security     CookieAuth
func (c *EmployeeController) GetEmployee() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	employee, err := c.Container.GetEmployeeService().GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Fail(c.Context, code.ErrEmployeeNotFound, nil)
			return
		}
		logger.Error("查询员工失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	response.Success(c.Context, "Employee fetched successfully", employee)
}

// CreateEmployee 创建新员工
// @Summary      Create Employee
// @Description  Provision an employee account plus linked profile
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request body models.CreateEmployeeRequest true "Employee fields"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /employees [post]
// @Security     CookieAuth
func (c *EmployeeController) CreateEmployee() {
	var req models.CreateEmployeeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context)
		return
	}

	if errs := validators.CreateEmployee(req); len(errs) > 0 {
		response.ValidationFailed(c.Context, errs)
		return
	}

	createdBy := middleware.CurrentAccount(c.Context)
	employee, err := c.Container.GetEmployeeService().CreateEmployee(req, createdBy)
	if err != nil {
		c.failFromServiceError(err)
		return
	}

	response.Created(c.Context, "Employee created successfully", employee)
}

// UpdateEmployee 部分更新员工档案
// @Summary      Update Employee
// @Description  Apply only the whitelisted fields present in the payload
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee profile ID"
// @Param        request body models.UpdateEmployeeRequest true "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [patch]
// @Security     CookieAuth
func (c *EmployeeController) UpdateEmployee() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context)
		return
	}

	if errs := validators.UpdateEmployee(req); len(errs) > 0 {
		response.ValidationFailed(c.Context, errs)
		return
	}

	employee, err := c.Container.GetEmployeeService().UpdateEmployee(id, req)
	if err != nil {
		c.failFromServiceError(err)
		return
	}

	response.Success(c.Context, "Employee updated successfully", employee)
}

// DeleteEmployee 软删除员工档案并级联账户
// @Summary      Delete Employee
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee profile ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [delete]
// @Security     CookieAuth
func (c *EmployeeController) DeleteEmployee() {
	id, ok := c.parseIDParam()
	if !ok {
		return
	}

	employee, err := c.Container.GetEmployeeService().DeleteEmployee(id)
	if err != nil {
		c.failFromServiceError(err)
		return
	}

	response.Success(c.Context, "Employee deleted successfully", employee)
}

// failFromServiceError 将服务层错误映射为统一响应
func (c *EmployeeController) failFromServiceError(err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.Fail(c.Context, code.ErrEmployeeNotFound, nil)
	case errors.Is(err, services.ErrEmailConflict):
		response.FailWithMessage(c.Context, code.ErrEmailAlreadyExist,
			"Email already in use", gin.H{"email": "Email already in use"})
	case errors.Is(err, services.ErrCodeConflict):
		response.FailWithMessage(c.Context, code.ErrEmployeeCodeAlreadyExist,
			"Employee code already in use", gin.H{"code": "Employee code already in use"})
	case errors.Is(err, services.ErrSuperAdminProtected):
		response.Fail(c.Context, code.ErrSuperAdminProtected, nil)
	default:
		logger.Error("员工操作失败: %v", err)
		response.ServerError(c.Context)
	}
}
