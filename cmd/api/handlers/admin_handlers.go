package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/services"
)

// @Summary Browse a collection
// @Description Raw documents of a collection plus the union of their field names
// @Tags admin
// @Produce json
// @Param collection path string true "Collection name" Enums(news, articles, categories, tags, adminuser)
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/database/{collection} [get]
// @Security BearerAuth
func BrowseCollectionHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := svc.Browse(c.Request.Context(), c.Param("collection"))
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, data)
	}
}

// @Summary Apply a field operation
// @Description Add, remove, or rename a field across a collection or a single document
// @Tags admin
// @Accept json
// @Produce json
// @Param collection path string true "Collection name"
// @Param body body services.FieldOperation true "Operation"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/admin/database/{collection}/fields [post]
// @Security BearerAuth
func FieldOperationHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var op services.FieldOperation
		if err := c.ShouldBindJSON(&op); err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		result, err := svc.ApplyFieldOperation(c.Request.Context(), c.Param("collection"), op)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, result)
	}
}

// @Summary List field comments
// @Description Annotations stored in the field-comments side file
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/v1/admin/database/news/comments [get]
// @Security BearerAuth
func ListFieldCommentsHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := svc.FieldComments()
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, comments)
	}
}

// @Summary Set a field comment
// @Description Store or clear the annotation for one field; an empty comment deletes it
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.FieldCommentRequest true "Annotation"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/admin/database/news/comments [post]
// @Security BearerAuth
func SetFieldCommentHandler(svc *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FieldCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		comments, err := svc.SetFieldComment(req.Field, req.Comment)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, comments)
	}
}
