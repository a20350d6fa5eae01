package services

import "errors"

// 服务层哨兵错误，控制器据此映射到统一的错误码
var (
	// ErrNotFound 目标记录不存在或已被软删除
	ErrNotFound = errors.New("record not found")
	// ErrEmailConflict 邮箱在非删除账户中已被占用
	ErrEmailConflict = errors.New("email already in use")
	// ErrCodeConflict 业务编号在非删除档案中已被占用
	ErrCodeConflict = errors.New("code already in use")
	// ErrSuperAdminProtected 超级管理员账户不允许被删除
	ErrSuperAdminProtected = errors.New("super admin account cannot be deleted")
	// ErrInvalidCredentials 认证失败，对外不区分具体原因
	ErrInvalidCredentials = errors.New("invalid credentials")
)
