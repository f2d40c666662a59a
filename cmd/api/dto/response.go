package dto

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// success -> {"success": true, "data": ...} or {"success": true, "message": ...}
// failure -> {"success": false, "error": ...}

// SuccessResponse documents the success envelope for swagger.
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty" example:"deleted successfully"`
}

// ErrorResponse documents the failure envelope for swagger.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid news ID format"`
}

// OK writes a success envelope carrying data.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Message writes a success envelope carrying only a message.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": true, "message": msg})
}

// Fail writes a failure envelope.
func Fail(c *gin.Context, status int, errMsg string) {
	c.JSON(status, gin.H{"success": false, "error": errMsg})
}
