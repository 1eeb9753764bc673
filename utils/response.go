// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// Error 输出统一的错误响应体 {"error": "..."}
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// TotalPages 按每页条数计算总页数
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
