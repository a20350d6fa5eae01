package validators

import (
	"staffdesk-http-service/internal/domain/models"
)

// 每个操作组合出一套校验集合：创建/更新表单收集字段到消息的映射，
// 登录表单收集扁平的消息列表。更新集合与创建集合的唯一区别是所有
// 字段变为可选：缺失不报错，出现则套用与创建相同的规则

// Login 校验登录表单，返回消息列表
func Login(req models.LoginRequest) []string {
	var errs []string
	if NormalizeEmail(req.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if req.Password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

// CreateEmployee 校验创建员工表单
func CreateEmployee(req models.CreateEmployeeRequest) map[string]string {
	errs := make(map[string]string)

	if msg := Name(req.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Email(req.Email, models.RoleEmployee); msg != "" {
		errs["email"] = msg
	}
	if msg := Password(req.Password); msg != "" {
		errs["password"] = msg
	}
	if req.Code != "" {
		if msg := EmployeeCode(req.Code); msg != "" {
			errs["code"] = msg
		}
	}
	if msg := Age(req.Age); msg != "" {
		errs["age"] = msg
	}
	if msg := Department(req.Department); msg != "" {
		errs["department"] = msg
	}
	if msg := Phone(req.Phone); msg != "" {
		errs["phone"] = msg
	}
	if req.Salary != nil {
		if msg := Salary(*req.Salary); msg != "" {
			errs["salary"] = msg
		}
	}
	for field, msg := range Address(req.Address) {
		errs[field] = msg
	}
	if msg := ReportingManager(req.ReportingManager); msg != "" {
		errs["reporting_manager"] = msg
	}
	if req.JoiningDate != nil {
		if msg := JoiningDate(*req.JoiningDate); msg != "" {
			errs["joining_date"] = msg
		}
	}
	return errs
}

// UpdateEmployee 校验员工部分更新表单，仅校验出现的字段
func UpdateEmployee(req models.UpdateEmployeeRequest) map[string]string {
	errs := make(map[string]string)

	if req.Name != nil {
		if msg := Name(*req.Name); msg != "" {
			errs["name"] = msg
		}
	}
	if req.Email != nil {
		if msg := Email(*req.Email, models.RoleEmployee); msg != "" {
			errs["email"] = msg
		}
	}
	if req.Code != nil {
		if msg := EmployeeCode(*req.Code); msg != "" {
			errs["code"] = msg
		}
	}
	if req.Age != nil {
		if msg := Age(*req.Age); msg != "" {
			errs["age"] = msg
		}
	}
	if req.Department != nil {
		if msg := Department(*req.Department); msg != "" {
			errs["department"] = msg
		}
	}
	if req.Phone != nil {
		if msg := Phone(*req.Phone); msg != "" {
			errs["phone"] = msg
		}
	}
	if req.Salary != nil {
		if msg := Salary(*req.Salary); msg != "" {
			errs["salary"] = msg
		}
	}
	if req.Address != nil {
		for field, msg := range Address(*req.Address) {
			errs[field] = msg
		}
	}
	if req.ReportingManager != nil {
		if msg := ReportingManager(*req.ReportingManager); msg != "" {
			errs["reporting_manager"] = msg
		}
	}
	if req.JoiningDate != nil {
		if msg := JoiningDate(*req.JoiningDate); msg != "" {
			errs["joining_date"] = msg
		}
	}
	return errs
}

// CreateAdmin 校验创建管理员表单
func CreateAdmin(req models.CreateAdminRequest) map[string]string {
	errs := make(map[string]string)

	if msg := Name(req.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Email(req.Email, models.RoleAdmin); msg != "" {
		errs["email"] = msg
	}
	if msg := Password(req.Password); msg != "" {
		errs["password"] = msg
	}
	if req.Code != "" {
		if msg := AdminCode(req.Code); msg != "" {
			errs["code"] = msg
		}
	}
	if msg := Age(req.Age); msg != "" {
		errs["age"] = msg
	}
	if msg := Department(req.Department); msg != "" {
		errs["department"] = msg
	}
	if msg := Phone(req.Phone); msg != "" {
		errs["phone"] = msg
	}
	if req.Salary != nil {
		if msg := Salary(*req.Salary); msg != "" {
			errs["salary"] = msg
		}
	}
	for field, msg := range Address(req.Address) {
		errs[field] = msg
	}
	if req.Permission != "" &&
		req.Permission != models.PermissionGranted && req.Permission != models.PermissionRevoked {
		errs["permission"] = "Permission must be GRANTED or REVOKED"
	}
	return errs
}

// UpdateAdmin 校验管理员部分更新表单，仅校验出现的字段
func UpdateAdmin(req models.UpdateAdminRequest) map[string]string {
	errs := make(map[string]string)

	if req.Name != nil {
		if msg := Name(*req.Name); msg != "" {
			errs["name"] = msg
		}
	}
	if req.Email != nil {
		if msg := Email(*req.Email, models.RoleAdmin); msg != "" {
			errs["email"] = msg
		}
	}
	if req.Code != nil {
		if msg := AdminCode(*req.Code); msg != "" {
			errs["code"] = msg
		}
	}
	if req.Age != nil {
		if msg := Age(*req.Age); msg != "" {
			errs["age"] = msg
		}
	}
	if req.Department != nil {
		if msg := Department(*req.Department); msg != "" {
			errs["department"] = msg
		}
	}
	if req.Phone != nil {
		if msg := Phone(*req.Phone); msg != "" {
			errs["phone"] = msg
		}
	}
	if req.Salary != nil {
		if msg := Salary(*req.Salary); msg != "" {
			errs["salary"] = msg
		}
	}
	if req.Address != nil {
		for field, msg := range Address(*req.Address) {
			errs[field] = msg
		}
	}
	if req.Permission != nil &&
		*req.Permission != models.PermissionGranted && *req.Permission != models.PermissionRevoked {
		errs["permission"] = "Permission must be GRANTED or REVOKED"
	}
	return errs
}

// UpdateSelf 校验账户本人资料更新表单，仅允许姓名和密码
func UpdateSelf(req models.UpdateSelfRequest) map[string]string {
	errs := make(map[string]string)

	if req.Name != nil {
		if msg := Name(*req.Name); msg != "" {
			errs["name"] = msg
		}
	}
	if req.Password != nil {
		if msg := Password(*req.Password); msg != "" {
			errs["password"] = msg
		}
	}
	return errs
}
