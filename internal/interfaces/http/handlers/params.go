package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	domainerrors "parts-market.backend/internal/domain/errors"
)

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.BadRequest("invalid " + name + " parameter")
	}
	return id, nil
}
