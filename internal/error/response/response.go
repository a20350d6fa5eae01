package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffdesk-http-service/internal/error/code"
)

// 响应状态标识
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// Response 定义统一的响应格式，statusCode与HTTP状态码保持一致
type Response struct {
	StatusCode int         `json:"statusCode"`
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = code.GetMessage(code.ErrSuccess)
	}
	c.JSON(http.StatusOK, Response{
		StatusCode: http.StatusOK,
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		StatusCode: http.StatusCreated,
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		StatusCode: httpStatus,
		Status:     StatusFailure,
		Message:    code.GetMessage(errorCode),
		Data:       data,
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		StatusCode: httpStatus,
		Status:     StatusFailure,
		Message:    message,
		Data:       data,
	})
}

// ValidationFailed 字段校验失败响应，data为字段到错误消息的映射
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	Fail(c, code.ErrValidation, fieldErrors)
}

// ParamError 参数错误响应
func ParamError(c *gin.Context) {
	Fail(c, code.ErrBind, nil)
}

// ServerError 服务器错误响应
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message, nil)
}

// Unauthorized 未授权响应，认证与授权失败统一走这里，不区分401/403
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}
