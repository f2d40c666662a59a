package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/services"
	"news-cms/repositories"
)

func articleListOptions(c *gin.Context) (repositories.ListArticlesOptions, error) {
	page, pageSize := pageQuery(c)
	opts := repositories.ListArticlesOptions{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		Search:      c.Query("search"),
		IsHot:       boolQuery(c, "is_hot"),
		IsImportant: boolQuery(c, "is_important"),
		IsCritical:  boolQuery(c, "is_critical"),
	}
	if v := c.Query("category"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return opts, err
		}
		opts.Category = id
	}
	if v := c.Query("tag"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return opts, err
		}
		opts.Tag = id
	}
	return opts, nil
}

// @Summary List articles
// @Description List published articles with pagination; category/tag filters take ObjectID hex
// @Tags articles
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param category query string false "Category ObjectID"
// @Param tag query string false "Tag ObjectID"
// @Param search query string false "Full-text search"
// @Param is_hot query bool false "Only hot articles"
// @Param is_important query bool false "Only important articles"
// @Param is_critical query bool false "Only critical articles"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/articles [get]
func ListArticlesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := articleListOptions(c)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid filter id format")
			return
		}
		resp, err := svc.List(c.Request.Context(), opts, true)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, resp)
	}
}

// @Summary List articles for admin
// @Description List articles across all statuses
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Filter by status"
// @Param category query string false "Category ObjectID"
// @Param tag query string false "Tag ObjectID"
// @Param search query string false "Full-text search"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles [get]
// @Security BearerAuth
func AdminListArticlesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts, err := articleListOptions(c)
		if err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid filter id format")
			return
		}
		resp, err := svc.List(c.Request.Context(), opts, false)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, resp)
	}
}

// @Summary Get one article
// @Description Fetch a published article and count the view
// @Tags articles
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/articles/{id} [get]
func GetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"), true, true)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Get one article for admin
// @Description Fetch any article without counting a view
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles/{id} [get]
// @Security BearerAuth
func AdminGetArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"), false, false)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Create an article
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CreateArticleRequest true "Article"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles [post]
// @Security BearerAuth
func CreateArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateArticleRequest
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

// @Summary Update an article
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ObjectID hex"
// @Param body body dto.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles/{id} [put]
// @Security BearerAuth
func UpdateArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateArticleRequest
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

// @Summary Delete an article
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles/{id} [delete]
// @Security BearerAuth
func DeleteArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		dto.Message(c, http.StatusOK, "article deleted successfully")
	}
}

// @Summary Rebuild category and tag article counts
// @Description Recompute every denormalized article_count from the articles collection
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/admin/articles/recount [post]
// @Security BearerAuth
func RecountArticlesHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RecountArticleCounts(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		dto.Message(c, http.StatusOK, "article counts rebuilt")
	}
}
