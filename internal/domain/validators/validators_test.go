package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk-http-service/internal/domain/models"
)

func TestName(t *testing.T) {
	// 合法姓名
	assert.Empty(t, Name("Jane Doe"))
	assert.Empty(t, Name("Mary-Jane O'Connor"))
	assert.Empty(t, Name("  Jane Doe  ")) // 首尾空白被忽略

	// 非法姓名
	assert.Equal(t, "Name is required", Name(""))
	assert.Equal(t, "Name is required", Name("   "))
	assert.Equal(t, "Name must be between 3 and 50 characters", Name("Jo"))
	assert.Equal(t, "Name must not contain consecutive spaces", Name("Jane  Doe"))
	assert.Equal(t, "Name must not start or end with a hyphen or apostrophe", Name("-Jane"))
	assert.Equal(t, "Name must not start or end with a hyphen or apostrophe", Name("Jane'"))
	assert.Equal(t, "Name may only contain letters, digits, spaces, hyphens and apostrophes", Name("Jane_Doe"))
	assert.Equal(t, "Each word in name must be at least 2 characters", Name("Jane D"))
}

func TestEmail(t *testing.T) {
	// 域名必须与角色匹配
	assert.Empty(t, Email("jane.doe@staffdesk.com", models.RoleAdmin))
	assert.Empty(t, Email("jane.doe@staffdesk.com", models.RoleSuperAdmin))
	assert.Empty(t, Email("john.smith@staffdesk.in", models.RoleEmployee))

	// 大小写与空白被归一化
	assert.Empty(t, Email("  Jane.Doe@STAFFDESK.COM  ", models.RoleAdmin))

	assert.Equal(t, "Email is required", Email("", models.RoleAdmin))
	assert.Equal(t, "Email is not a valid email address", Email("not-an-email", models.RoleAdmin))
	assert.Equal(t, "Admin email must use the staffdesk.com domain",
		Email("jane@staffdesk.in", models.RoleAdmin))
	assert.Equal(t, "Employee email must use the staffdesk.in domain",
		Email("john@staffdesk.com", models.RoleEmployee))
	assert.Equal(t, "Employee email must use the staffdesk.in domain",
		Email("john@gmail.com", models.RoleEmployee))

	// 未知角色无法确定域名规则
	assert.Equal(t, "Email role is not recognised",
		Email("jane@staffdesk.com", models.Role("AUDITOR")))
}

func TestPassword(t *testing.T) {
	assert.Empty(t, Password("Passw0rd!"))
	assert.Empty(t, Password("Sup3rSecret#"))

	assert.Equal(t, "Password is required", Password(""))
	assert.Equal(t, "Password must be between 8 and 128 characters", Password("Ab1!xyz"))
	assert.Equal(t, "Password must contain at least one lowercase letter", Password("PASSW0RD!"))
	assert.Equal(t, "Password must contain at least one uppercase letter", Password("passw0rd!"))
	assert.Equal(t, "Password must contain at least one digit", Password("Password!"))
	// 缺少特殊字符
	assert.Equal(t, "Password must contain at least one special character", Password("Passw0rd"))
	// 连续重复3次
	assert.Equal(t, "Password must not repeat the same character 3 or more times in a row",
		Password("Paaassw0rd!"))
}

func TestAge(t *testing.T) {
	assert.Empty(t, Age(18))
	assert.Empty(t, Age(65))
	assert.Equal(t, "Age must be between 18 and 65", Age(17))
	assert.Equal(t, "Age must be between 18 and 65", Age(66))
}

func TestDepartment(t *testing.T) {
	assert.Empty(t, Department("Engineering"))
	assert.Empty(t, Department("HR"))
	assert.Equal(t, "Department is required", Department(""))
	assert.NotEmpty(t, Department("Astronomy"))
}

func TestPhone(t *testing.T) {
	assert.Empty(t, Phone("+1 555 0100"))
	assert.Empty(t, Phone("9876543210"))
	assert.Equal(t, "Phone is required", Phone(""))
	assert.Equal(t, "Phone must be between 7 and 15 characters", Phone("12345"))
	assert.Equal(t, "Phone is not a valid phone number", Phone("phone#1"))
}

func TestAddress(t *testing.T) {
	errs := Address(models.Address{
		Line1: "42 Main Street",
		City:  "Pune",
		State: "MH",
		Zip:   "411001",
	})
	assert.Empty(t, errs)

	errs = Address(models.Address{Zip: "12"})
	assert.Equal(t, "Address line1 is required", errs["address.line1"])
	assert.Equal(t, "City is required", errs["address.city"])
	assert.Equal(t, "State is required", errs["address.state"])
	assert.Equal(t, "Zip must be 4 to 10 digits", errs["address.zip"])
}

func TestSalary(t *testing.T) {
	assert.Empty(t, Salary("50000"))
	assert.Empty(t, Salary("50000.50"))
	assert.NotEmpty(t, Salary("-100"))
	assert.NotEmpty(t, Salary("fifty"))
}

func TestJoiningDate(t *testing.T) {
	assert.Empty(t, JoiningDate("15-08-2024"))
	assert.Empty(t, JoiningDate("29-02-2024")) // 闰年

	assert.Equal(t, "Joining date must be in DD-MM-YYYY format", JoiningDate("2024-08-15"))
	assert.Equal(t, "Joining date must be in DD-MM-YYYY format", JoiningDate("15/08/2024"))
	assert.Equal(t, "Joining date is not a valid calendar date", JoiningDate("31-02-2024"))
	assert.Equal(t, "Joining date is not a valid calendar date", JoiningDate("29-02-2023"))
}

func TestCodes(t *testing.T) {
	assert.Empty(t, EmployeeCode("EMP123"))
	assert.Empty(t, EmployeeCode("emp1234567")) // 大小写被归一化
	assert.NotEmpty(t, EmployeeCode("EMP12"))
	assert.NotEmpty(t, EmployeeCode("EMP12345678"))
	assert.NotEmpty(t, EmployeeCode("ADMIN123"))

	assert.Empty(t, AdminCode("ADMIN12"))
	assert.Empty(t, AdminCode("admin123456"))
	assert.NotEmpty(t, AdminCode("ADMIN1"))
	assert.NotEmpty(t, AdminCode("EMP123"))
}

func TestReportingManager(t *testing.T) {
	assert.Empty(t, ReportingManager("Jane Doe"))
	assert.Equal(t, "Reporting manager is required", ReportingManager(""))
	assert.Equal(t, "Reporting manager must be between 3 and 50 characters", ReportingManager("Jo"))

	// 每条消息都以字段标签开头，不残留"Name"字样
	assert.Equal(t, "Each word in reporting manager must be at least 2 characters",
		ReportingManager("Jane D"))
	assert.Equal(t, "Reporting manager must not start or end with a hyphen or apostrophe",
		ReportingManager("-Jane"))
}

func TestID(t *testing.T) {
	assert.Empty(t, ID("1"))
	assert.Empty(t, ID("42"))
	assert.Equal(t, "ID is required", ID(""))
	assert.Equal(t, "ID is not a valid identifier", ID("0"))
	assert.Equal(t, "ID is not a valid identifier", ID("-5"))
	assert.Equal(t, "ID is not a valid identifier", ID("abc"))
}

func TestUpdateEmployeeSet(t *testing.T) {
	// nil字段不参与校验
	errs := UpdateEmployee(models.UpdateEmployeeRequest{})
	assert.Empty(t, errs)

	// 非nil字段按规则校验
	bad := "Jo"
	errs = UpdateEmployee(models.UpdateEmployeeRequest{Name: &bad})
	assert.Equal(t, "Name must be between 3 and 50 characters", errs["name"])

	good := "Jane Doe"
	errs = UpdateEmployee(models.UpdateEmployeeRequest{Name: &good})
	assert.Empty(t, errs)
}

func TestCreateEmployeeSet(t *testing.T) {
	salary := "50000"
	joining := "15-08-2024"
	req := models.CreateEmployeeRequest{
		Name:       "John Smith",
		Email:      "john.smith@staffdesk.in",
		Password:   "Passw0rd!",
		Age:        30,
		Department: "Engineering",
		Phone:      "+1 555 0100",
		Salary:     &salary,
		Address: models.Address{
			Line1: "42 Main Street",
			City:  "Pune",
			State: "MH",
			Zip:   "411001",
		},
		ReportingManager: "Jane Doe",
		JoiningDate:      &joining,
	}
	assert.Empty(t, CreateEmployee(req))

	req.Email = "john.smith@staffdesk.com"
	errs := CreateEmployee(req)
	assert.Equal(t, "Employee email must use the staffdesk.in domain", errs["email"])
}
