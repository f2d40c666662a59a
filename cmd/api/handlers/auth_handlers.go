package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/dto"
	"news-cms/cmd/api/middleware"
	"news-cms/cmd/api/services"
)

// @Summary Log in
// @Description Exchange admin credentials for a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.Fail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		resp, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, resp)
	}
}

// @Summary List admin users
// @Description Return every admin account without password hashes
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/admin/users [get]
// @Security BearerAuth
func ListUsersHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, users)
	}
}

// @Summary Current user
// @Description Return the account behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/admin/auth/me [get]
// @Security BearerAuth
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserID)
		user, err := svc.CurrentUser(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		dto.OK(c, http.StatusOK, dto.NewAdminUserDTO(*user))
	}
}
