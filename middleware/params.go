package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ValidateIDParam checks that the named path parameter is a positive
// integer. Invalid ids are rejected with 404 before the handler runs;
// valid ids are stored in the context under key so handlers skip
// re-parsing.
func ValidateIDParam(param, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil || id < 1 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid parameter"})
			c.Abort()
			return
		}
		c.Set(key, uint(id))
		c.Next()
	}
}
