package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 统一响应约定（与既有前端契约一致）：
//
//	成功: {"success": true, ...payload}
//	失败: {"success": false, "error": "<message>"}
//
// payload 键名按端点各异（courses / rooms / schedule / statistics 等），
// 因此成功响应以扁平键值合并而非固定 data 包装。

// OK 200 成功响应，payload 键值平铺进响应体
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, flatten(payload))
}

// Created 201 创建成功
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, flatten(payload))
}

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   message,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}

func flatten(payload gin.H) gin.H {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}
