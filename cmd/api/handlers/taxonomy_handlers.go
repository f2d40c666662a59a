package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/services"
)

// @Summary List categories
// @Description Active categories ordered by display_order; pass all=true for inactive ones too
// @Tags categories
// @Produce json
// @Param all query bool false "Include inactive"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/v1/categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
		items, err := svc.List(c.Request.Context(), !all)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, items)
	}
}

// @Summary Get one category
// @Tags categories
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/categories/{id} [get]
func GetCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/categories [post]
// @Security BearerAuth
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateCategoryRequest
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

// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ObjectID hex"
// @Param body body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/categories/{id} [put]
// @Security BearerAuth
func UpdateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateCategoryRequest
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

// @Summary Delete a category
// @Description Fails while articles still reference the category
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/categories/{id} [delete]
// @Security BearerAuth
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		dto.Message(c, http.StatusOK, "category deleted successfully")
	}
}

// @Summary List tags
// @Tags tags
// @Produce json
// @Param all query bool false "Include inactive"
// @Success 200 {object} dto.SuccessResponse
// @Router /api/v1/tags [get]
func ListTagsHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
		items, err := svc.List(c.Request.Context(), !all)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, items)
	}
}

// @Summary Get one tag
// @Tags tags
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/tags/{id} [get]
func GetTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, item)
	}
}

// @Summary Create a tag
// @Description Value defaults to a slug derived from the name
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CreateTagRequest true "Tag"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/tags [post]
// @Security BearerAuth
func CreateTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateTagRequest
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

// @Summary Update a tag
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ObjectID hex"
// @Param body body dto.UpdateTagRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/tags/{id} [put]
// @Security BearerAuth
func UpdateTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UpdateTagRequest
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

// @Summary Delete a tag
// @Tags admin
// @Produce json
// @Param id path string true "ObjectID hex"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/tags/{id} [delete]
// @Security BearerAuth
func DeleteTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		dto.Message(c, http.StatusOK, "tag deleted successfully")
	}
}
