package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/services"
	"news-cms/repositories"
)

// @Summary List news
// @Description List published news with pagination and optional filtering
// @Tags news
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param category query string false "Filter by category value"
// @Param tag query string false "Filter by tag"
// @Param search query string false "Full-text search"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/news [get]
func ListNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageQuery(c)
		resp, err := svc.List(c.Request.Context(), repositories.ListNewsOptions{
			Page:     page,
			PageSize: pageSize,
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
			Search:   c.Query("search"),
		}, true)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, resp)
	}
}

// @Summary List news for admin
// @Description List news across all statuses
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category value"
// @Param tag query string false "Filter by tag"
// @Param search query string false "Full-text search"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/news [get]
// @Security BearerAuth
func AdminListNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageQuery(c)
		resp, err := svc.List(c.Request.Context(), repositories.ListNewsOptions{
			Page:     page,
			PageSize: pageSize,
			Category: c.Query("category"),
			Status:   c.Query("status"),
			Tag:      c.Query("tag"),
			Search:   c.Query("search"),
		}, false)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, resp)
	}
}

// @Summary Get one news item
// @Description Fetch a published news item by ObjectID or semantic ID
// @Tags news
// @Produce json
// @Param id path string true "ObjectID hex or semantic ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/news/{id} [get]
func GetNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"), true)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Get one news item for admin
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex or semantic ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/news/{id} [get]
// @Security BearerAuth
func AdminGetNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"), false)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Create a news item
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CreateNewsRequest true "News item"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/news [post]
// @Security BearerAuth
func CreateNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateNewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		item, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusCreated, item)
	}
}

// @Summary Update a news item
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ObjectID hex"
// @Param body body dto.UpdateNewsRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/news/{id} [put]
// @Security BearerAuth
func UpdateNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateNewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		item, err := svc.Update(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Delete a news item
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/news/{id} [delete]
// @Security BearerAuth
func DeleteNewsHandler(svc *services.NewsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		dto.Message(c, http.StatusOK, "news deleted successfully")
	}
}
