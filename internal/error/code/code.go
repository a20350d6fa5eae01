package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效或权限不足.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 账户相关错误码 (101xxx).
const (
	// ErrAccountNotFound - 404: 账户不存在.
	ErrAccountNotFound int = iota + 101000
	// ErrEmailAlreadyExist - 400: 邮箱已被占用.
	ErrEmailAlreadyExist
	// ErrSuperAdminProtected - 401: 超级管理员账户不可删除.
	ErrSuperAdminProtected
)

// 员工相关错误码 (102xxx).
const (
	// ErrEmployeeNotFound - 404: 员工不存在.
	ErrEmployeeNotFound int = iota + 102000
	// ErrEmployeeCodeAlreadyExist - 400: 员工编号已存在.
	ErrEmployeeCodeAlreadyExist
)

// 管理员相关错误码 (103xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 103000
	// ErrAdminCodeAlreadyExist - 400: 管理员编号已存在.
	ErrAdminCodeAlreadyExist
)

// 操作日志相关错误码 (104xxx).
const (
	// ErrActivityLogNotFound - 404: 操作日志不存在.
	ErrActivityLogNotFound int = iota + 104000
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
