package gin

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Invalid request body"

// bindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value so missing fields are reported by the domain.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
