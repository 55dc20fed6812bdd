package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

func readLimited(c *gin.Context, limit int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return io.ReadAll(c.Request.Body)
}
