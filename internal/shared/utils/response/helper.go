package response

import "github.com/gin-gonic/gin"

// Detail writes an error response with the given status code
func Detail(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorDetail{Detail: message})
}

// AbortWithDetail writes an error response and stops the handler chain
func AbortWithDetail(c *gin.Context, code int, message string) {
	Detail(c, code, message)
	c.Abort()
}
