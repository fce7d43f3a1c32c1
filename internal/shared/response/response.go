package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the wire format every endpoint returns:
// {"status": 200, "message": "Success", "data": ...}
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope with data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Envelope{Status: 200, Message: message, Data: data})
}

// Created writes a 201 envelope with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(201, Envelope{Status: 201, Message: message, Data: data})
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Status: statusCode, Message: message})
}

// Common error responses.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, 500, "Internal server error")
}
