package server

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// pathID parses a snowflake id out of a path segment. Returns 0 when the
// segment is not a number; callers treat that as a validation failure.
func pathID(c *gin.Context, name string) snowflake.ID {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return snowflake.ID(id)
}
