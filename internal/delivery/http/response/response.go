package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every endpoint returns.
type ErrorBody struct {
	Error string `json:"error" example:"Unauthorized"`
}

// SuccessBody acknowledges a mutation without a payload.
type SuccessBody struct {
	Success bool `json:"success" example:"true"`
}

// JSON writes body as-is. Success payloads are endpoint-specific objects
// such as {"cvs": [...]} or {"adId": "..."}.
func JSON(c *gin.Context, code int, body interface{}) {
	c.JSON(code, body)
}

// Success sends {"success": true}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// Error sends {"error": message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// Abort sends an error and stops the handler chain.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorBody{Error: message})
}
