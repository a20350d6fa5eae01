package models

// Address 表示档案中的通讯地址
type Address struct {
	Line1 string `gorm:"type:varchar(100)" json:"line1"`
	Line2 string `gorm:"type:varchar(100)" json:"line2,omitempty"`
	City  string `gorm:"type:varchar(50)" json:"city"`
	State string `gorm:"type:varchar(50)" json:"state"`
	Zip   string `gorm:"type:varchar(10)" json:"zip"`
}

// AdminPermission 的取值，控制管理员是否仍可通过授权检查
const (
	PermissionGranted = "GRANTED"
	PermissionRevoked = "REVOKED"
)

// 员工可选的部门列表
var Departments = []string{
	"HR",
	"Engineering",
	"Finance",
	"Marketing",
	"Sales",
	"Operations",
	"Support",
}

// ValidDepartment 检查部门是否在固定列表内
func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}
