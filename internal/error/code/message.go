package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "Success",
	ErrUnknown:         "Something went wrong, please try again later",
	ErrBind:            "Invalid request payload",
	ErrValidation:      "Validation failed",
	ErrTokenInvalid:    "Unauthorized access",
	ErrTooManyRequests: "Too many requests, please try again later",

	// 账户相关错误码
	ErrAccountNotFound:     "Account not found",
	ErrEmailAlreadyExist:   "Email already in use",
	ErrSuperAdminProtected: "Unauthorized access",

	// 员工相关错误码
	ErrEmployeeNotFound:         "Employee not found",
	ErrEmployeeCodeAlreadyExist: "Employee code already in use",

	// 管理员相关错误码
	ErrAdminNotFound:         "Admin not found",
	ErrAdminCodeAlreadyExist: "Admin code already in use",

	// 操作日志相关错误码
	ErrActivityLogNotFound: "Activity log not found",

	// 数据库相关错误码
	ErrDatabase:       "Something went wrong, please try again later",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 账户相关错误码
	ErrAccountNotFound:     StatusNotFound,
	ErrEmailAlreadyExist:   StatusBadRequest,
	ErrSuperAdminProtected: StatusUnauthorized,

	// 员工相关错误码
	ErrEmployeeNotFound:         StatusNotFound,
	ErrEmployeeCodeAlreadyExist: StatusBadRequest,

	// 管理员相关错误码
	ErrAdminNotFound:         StatusNotFound,
	ErrAdminCodeAlreadyExist: StatusBadRequest,

	// 操作日志相关错误码
	ErrActivityLogNotFound: StatusNotFound,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 返回错误码对应的消息
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 返回错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
