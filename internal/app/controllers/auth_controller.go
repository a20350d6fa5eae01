package controllers

import (
	"errors"
	"net/http"
	"staffdesk-http-service/internal/app/middleware"
	"staffdesk-http-service/internal/domain/models"
	"staffdesk-http-service/internal/domain/services"
	"staffdesk-http-service/internal/domain/validators"
	"staffdesk-http-service/internal/error/response"
	"staffdesk-http-service/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthController 处理身份验证请求
type AuthController struct {
	BaseControllerImpl
}

// NewAuthController 创建一个新的认证控制器
func (f *ControllerFactory) NewAuthController(ctx *gin.Context) *AuthController {
	return &AuthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(factory *ControllerFactory, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := factory.NewAuthController(ctx)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			response.ParamError(ctx)
		}
	}
}

// Login 处理用户登录
// @Summary      User Login
// @Description  Authenticate with email and password, set the HTTP-only session cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Login request parameters"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req models.LoginRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context)
		return
	}

	// 登录表单校验返回扁平的消息列表
	if errs := validators.Login(req); len(errs) > 0 {
		response.ValidationFailed(c.Context, errs)
		return
	}

	account, err := c.Container.GetAccountService().Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(c.Context)
			return
		}
		logger.Error("登录失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	token, err := c.Container.GetJWTService().GenerateToken(account.ID, string(account.Role))
	if err != nil {
		logger.Error("生成令牌失败: %v", err)
		response.ServerError(c.Context)
		return
	}

	c.setSessionCookie(token, 24*60*60)

	response.Success(c.Context, "Login successful", gin.H{
		"account": account,
	})
}

// Logout 处理用户注销：清除会话Cookie并将令牌加入黑名单
// @Summary      User Logout
// @Description  Clear the session cookie and revoke the current token
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     CookieAuth
func (c *AuthController) Logout() {
	// 黑名单是尽力而为的：失败只记日志，注销依然成功
	if token, exists := c.Context.Get(middleware.ContextTokenKey); exists {
		if tokenString, ok := token.(string); ok {
			if claims, err := c.Container.GetJWTService().ExtractClaims(tokenString); err == nil && claims.ExpiresAt != nil {
				ttl := time.Until(claims.ExpiresAt.Time)
				if err := c.Container.GetRedisService().BlacklistToken(tokenString, ttl); err != nil {
					logger.Warning("令牌黑名单写入失败: %v", err)
				}
			}
		}
	}

	c.setSessionCookie("", -1)
	response.Success(c.Context, "Logout successful", nil)
}

// setSessionCookie 写入或清除HTTP-only会话Cookie
func (c *AuthController) setSessionCookie(token string, maxAge int) {
	cfg := c.Container.GetConfig()
	c.Context.SetSameSite(http.SameSiteLaxMode)
	c.Context.SetCookie(cfg.SessionCookieName, token, maxAge, "/",
		cfg.SessionCookieDomain, cfg.SessionCookieSecure, true)
}
