package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// randomDigits 生成指定位数的随机数字串，首位不为0
func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		v := RandomInt32()
		if v < 0 {
			v = -v
		}
		if i == 0 {
			digits[i] = byte('1' + v%9)
		} else {
			digits[i] = byte('0' + v%10)
		}
	}
	return string(digits)
}

// GenerateAdminCode 生成管理员业务编号，格式为 ADMIN + 2-6位数字
func GenerateAdminCode() string {
	return fmt.Sprintf("ADMIN%s", randomDigits(4))
}

// GenerateEmployeeCode 生成员工业务编号，格式为 EMP + 3-7位数字
func GenerateEmployeeCode() string {
	return fmt.Sprintf("EMP%s", randomDigits(5))
}
