package shared

import "github.com/gin-gonic/gin"

// GetContextUintWithKeys 依次尝试多个 key 读取 uint 上下文值
func GetContextUintWithKeys(c *gin.Context, keys ...string) (uint, bool) {
	for _, key := range keys {
		value, ok := c.Get(key)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case uint:
			return v, true
		case uint64:
			return uint(v), true
		case int:
			if v >= 0 {
				return uint(v), true
			}
		case int64:
			if v >= 0 {
				return uint(v), true
			}
		case float64:
			if v >= 0 {
				return uint(v), true
			}
		}
	}
	return 0, false
}

// GetAdminID 读取登录管理员 ID
func GetAdminID(c *gin.Context) (uint, bool) {
	return GetContextUintWithKeys(c, "admin_id")
}
