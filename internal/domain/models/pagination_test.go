package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	// 缺省值
	limit, offset := ListQuery{}.Normalize()
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	// 上限封顶
	limit, _ = ListQuery{Limit: 500}.Normalize()
	assert.Equal(t, 100, limit)

	// 非法值回退到缺省
	limit, _ = ListQuery{Limit: -3}.Normalize()
	assert.Equal(t, 10, limit)

	// page从1开始
	limit, offset = ListQuery{Limit: 5, Page: 3}.Normalize()
	assert.Equal(t, 5, limit)
	assert.Equal(t, 10, offset)

	// page为1与不给page等价
	_, offset = ListQuery{Limit: 5, Page: 1}.Normalize()
	assert.Equal(t, 0, offset)

	// skip优先于page
	_, offset = ListQuery{Limit: 5, Skip: 7, Page: 3}.Normalize()
	assert.Equal(t, 7, offset)
}
