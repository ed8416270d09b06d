package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns:
// {success, data?, message?, count?}. Count is only present on list endpoints.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// Success responses

func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func DataWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List attaches the record count alongside the data.
func List(c *gin.Context, statusCode int, data interface{}, count int) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

// Error responses

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Fail(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Fail(c, 500, message)
}
