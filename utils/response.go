// file: utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// Response 统一响应信封。code 为 0 表示成功，
// 1xxx 请求参数、2xxx 账号、3xxx 业务规则、4xxx 权限与资源、5xxx 服务器内部错误
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 成功响应，data 为空时 JSON 中省略该字段
func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

// Error 失败响应。HTTP 状态恒为 200，错误语义只由 code 表达
func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}
