package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"payments_backend/internal/shared/apperr"
)

// PathID parses a positive integer path parameter. On failure it writes a 400
// envelope and returns false.
func PathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		Fail(c, apperr.Validation(name+" must be a positive integer"))
		return 0, false
	}
	return uint(n), true
}

// QueryAlias returns the first non-empty query parameter among names.
func QueryAlias(c *gin.Context, names ...string) string {
	for _, n := range names {
		if v := c.Query(n); v != "" {
			return v
		}
	}
	return ""
}
