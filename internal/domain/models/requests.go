package models

// 各操作的请求载荷。更新类载荷使用指针字段区分"未提供"与
// "显式设置为空值"：nil表示保持不变，非nil的零值表示清空

// LoginRequest 表示登录请求
type LoginRequest struct {
	Email    string `json:"email" example:"jane.doe@staffdesk.com"`
	Password string `json:"password" example:"Sup3rSecret!"`
}

// CreateEmployeeRequest 表示创建员工请求
type CreateEmployeeRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Code             string  `json:"code"` // 可选，缺省时系统生成
	Age              int     `json:"age"`
	Department       string  `json:"department"`
	Phone            string  `json:"phone"`
	Salary           *string `json:"salary"`
	Address          Address `json:"address"`
	ReportingManager string  `json:"reporting_manager"`
	JoiningDate      *string `json:"joining_date"`
}

// UpdateEmployeeRequest 表示员工的部分更新请求
type UpdateEmployeeRequest struct {
	Name             *string  `json:"name"`
	Email            *string  `json:"email"`
	Code             *string  `json:"code"`
	Age              *int     `json:"age"`
	Department       *string  `json:"department"`
	Phone            *string  `json:"phone"`
	Salary           *string  `json:"salary"`
	Address          *Address `json:"address"`
	ReportingManager *string  `json:"reporting_manager"`
	JoiningDate      *string  `json:"joining_date"`
	Active           *bool    `json:"active"`
}

// CreateAdminRequest 表示创建管理员请求
type CreateAdminRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Code       string  `json:"code"` // 可选，缺省时系统生成
	Age        int     `json:"age"`
	Department string  `json:"department"`
	Phone      string  `json:"phone"`
	Salary     *string `json:"salary"`
	Address    Address `json:"address"`
	Permission string  `json:"permission"` // 可选，默认GRANTED
}

// UpdateAdminRequest 表示管理员的部分更新请求
type UpdateAdminRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Code       *string  `json:"code"`
	Age        *int     `json:"age"`
	Department *string  `json:"department"`
	Phone      *string  `json:"phone"`
	Salary     *string  `json:"salary"`
	Address    *Address `json:"address"`
	Permission *string  `json:"permission"`
	Active     *bool    `json:"active"`
}

// UpdateSelfRequest 表示账户本人资料更新请求，仅允许姓名和密码
type UpdateSelfRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}
