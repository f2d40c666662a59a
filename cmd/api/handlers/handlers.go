package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/services"
	"news-cms/cmd/internal/logger"
	"news-cms/config"
)

// writeError maps service errors onto the response envelope. Unclassified
// errors become a 500; the raw message only leaves the server in
// development.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrConflict):
		dto.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		dto.Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		dto.Fail(c, http.StatusUnauthorized, err.Error())
	default:
		logger.Log.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		msg := "internal server error"
		if config.IsDevelopment() {
			msg = err.Error()
		}
		dto.Fail(c, http.StatusInternalServerError, msg)
	}
}

// pageQuery reads page/page_size with defaults.
func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// boolQuery parses an optional bool query parameter.
func boolQuery(c *gin.Context, name string) *bool {
	if v := c.Query(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
