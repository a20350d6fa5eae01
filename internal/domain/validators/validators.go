package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"staffdesk-http-service/internal/domain/models"
)

// 角色对应的公司邮箱域名，管理员与员工使用不同的保留域名
const (
	AdminEmailDomain    = "staffdesk.com"
	EmployeeEmailDomain = "staffdesk.in"
)

// 密码必须包含的特殊字符集
const PasswordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

var (
	nameRegexp         = regexp.MustCompile(`^[\p{L}][\p{L}\p{N} '-]*$`)
	emailRegexp        = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	phoneRegexp        = regexp.MustCompile(`^\+?[0-9][0-9\s()-]*$`)
	zipRegexp          = regexp.MustCompile(`^[0-9]{4,10}$`)
	salaryRegexp       = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	joiningDateRegexp  = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`)
	employeeCodeRegexp = regexp.MustCompile(`^EMP[0-9]{3,7}$`)
	adminCodeRegexp    = regexp.MustCompile(`^ADMIN[0-9]{2,6}$`)
	idRegexp           = regexp.MustCompile(`^[1-9][0-9]*$`)
	lowerRegexp        = regexp.MustCompile(`[a-z]`)
	upperRegexp        = regexp.MustCompile(`[A-Z]`)
	digitRegexp        = regexp.MustCompile(`[0-9]`)
)

// Name 校验姓名。规则：必填、去除首尾空白后3-50个字符、无连续空格、
// 不以连字符或撇号开头结尾、仅含Unicode字母/数字/空格/连字符/撇号、
// 每个空白分隔的单词至少2个字符
func Name(value string) string {
	return nameField(value, "Name")
}

// nameField 按姓名规则校验，错误消息以label开头
func nameField(value, label string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return label + " is required"
	}
	length := len([]rune(trimmed))
	if length < 3 || length > 50 {
		return label + " must be between 3 and 50 characters"
	}
	if strings.Contains(trimmed, "  ") {
		return label + " must not contain consecutive spaces"
	}
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "'") ||
		strings.HasSuffix(trimmed, "-") || strings.HasSuffix(trimmed, "'") {
		return label + " must not start or end with a hyphen or apostrophe"
	}
	if !nameRegexp.MatchString(trimmed) {
		return label + " may only contain letters, digits, spaces, hyphens and apostrophes"
	}
	for _, word := range strings.Fields(trimmed) {
		if len([]rune(word)) < 2 {
			return fmt.Sprintf("Each word in %s must be at least 2 characters", strings.ToLower(label))
		}
	}
	return ""
}

// NormalizeEmail 去除首尾空白并转为小写
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Email 校验邮箱，域名必须与目标角色的保留域名一致
func Email(value string, role models.Role) string {
	email := NormalizeEmail(value)
	if email == "" {
		return "Email is required"
	}
	if len(email) > 254 {
		return "Email must not exceed 254 characters"
	}
	if !emailRegexp.MatchString(email) {
		return "Email is not a valid email address"
	}

	if !role.Valid() {
		return "Email role is not recognised"
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	switch role {
	case models.RoleSuperAdmin, models.RoleAdmin:
		if domain != AdminEmailDomain {
			return fmt.Sprintf("Admin email must use the %s domain", AdminEmailDomain)
		}
	case models.RoleEmployee:
		if domain != EmployeeEmailDomain {
			return fmt.Sprintf("Employee email must use the %s domain", EmployeeEmailDomain)
		}
	}
	return ""
}

// Password 校验密码。8-128个字符，必须同时包含小写字母、大写字母、
// 数字和特殊字符，且任何字符不得连续重复3次及以上
func Password(value string) string {
	if value == "" {
		return "Password is required"
	}
	if len(value) < 8 || len(value) > 128 {
		return "Password must be between 8 and 128 characters"
	}
	if !lowerRegexp.MatchString(value) {
		return "Password must contain at least one lowercase letter"
	}
	if !upperRegexp.MatchString(value) {
		return "Password must contain at least one uppercase letter"
	}
	if !digitRegexp.MatchString(value) {
		return "Password must contain at least one digit"
	}
	if !strings.ContainsAny(value, PasswordSpecialChars) {
		return "Password must contain at least one special character"
	}

	// 检查连续重复字符
	runes := []rune(value)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return "Password must not repeat the same character 3 or more times in a row"
		}
	}
	return ""
}

// Age 校验年龄，18-65周岁（含）
func Age(value int) string {
	if value < 18 || value > 65 {
		return "Age must be between 18 and 65"
	}
	return ""
}

// Department 校验部门，必须属于固定的部门列表
func Department(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Department is required"
	}
	if !models.ValidDepartment(value) {
		return fmt.Sprintf("Department must be one of: %s", strings.Join(models.Departments, ", "))
	}
	return ""
}

// Phone 校验电话号码，去除首尾空白后7-15个字符，宽松的国际号码格式
func Phone(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "Phone is required"
	}
	if len(trimmed) < 7 || len(trimmed) > 15 {
		return "Phone must be between 7 and 15 characters"
	}
	if !phoneRegexp.MatchString(trimmed) {
		return "Phone is not a valid phone number"
	}
	return ""
}

// Address 校验地址对象，返回字段到错误消息的映射，键带address.前缀
func Address(addr models.Address) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(addr.Line1) == "" {
		errs["address.line1"] = "Address line1 is required"
	}
	if strings.TrimSpace(addr.City) == "" {
		errs["address.city"] = "City is required"
	}
	if strings.TrimSpace(addr.State) == "" {
		errs["address.state"] = "State is required"
	}
	if strings.TrimSpace(addr.Zip) == "" {
		errs["address.zip"] = "Zip is required"
	} else if !zipRegexp.MatchString(strings.TrimSpace(addr.Zip)) {
		errs["address.zip"] = "Zip must be 4 to 10 digits"
	}
	return errs
}

// Salary 校验工资，可选字段，给出时必须是非负的十进制数字串
func Salary(value string) string {
	if !salaryRegexp.MatchString(strings.TrimSpace(value)) {
		return "Salary must be a non-negative decimal number"
	}
	return ""
}

// JoiningDate 校验入职日期，格式为DD-MM-YYYY且必须是真实存在的日期
func JoiningDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if !joiningDateRegexp.MatchString(trimmed) {
		return "Joining date must be in DD-MM-YYYY format"
	}
	if _, err := time.Parse("02-01-2006", trimmed); err != nil {
		return "Joining date is not a valid calendar date"
	}
	return ""
}

// NormalizeCode 去除首尾空白并转为大写
func NormalizeCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// EmployeeCode 校验员工编号，格式为EMP加3-7位数字
func EmployeeCode(value string) string {
	if !employeeCodeRegexp.MatchString(NormalizeCode(value)) {
		return "Employee code must be EMP followed by 3 to 7 digits"
	}
	return ""
}

// AdminCode 校验管理员编号，格式为ADMIN加2-6位数字
func AdminCode(value string) string {
	if !adminCodeRegexp.MatchString(NormalizeCode(value)) {
		return "Admin code must be ADMIN followed by 2 to 6 digits"
	}
	return ""
}

// ReportingManager 校验汇报上级姓名，与姓名使用同一套规则
func ReportingManager(value string) string {
	return nameField(value, "Reporting manager")
}

// ID 校验记录标识符，必须符合存储层的标识符格式（正十进制整数）
func ID(value string) string {
	if strings.TrimSpace(value) == "" {
		return "ID is required"
	}
	if !idRegexp.MatchString(strings.TrimSpace(value)) {
		return "ID is not a valid identifier"
	}
	return ""
}
