package handlers

import (
	"net/http"

	"github.com/VoyageGenie/voyage-backend/errors"
	"github.com/VoyageGenie/voyage-backend/logger"
	"github.com/VoyageGenie/voyage-backend/middleware"
	"github.com/VoyageGenie/voyage-backend/models"
	"github.com/VoyageGenie/voyage-backend/types"
	"github.com/gin-gonic/gin"
)

// AuthHandler exposes account registration, login, and the password flows.
type AuthHandler struct {
	userModel *models.UserModel
}

func NewAuthHandler(userModel *models.UserModel) *AuthHandler {
	return &AuthHandler{userModel: userModel}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	resp, err := h.userModel.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	resp, err := h.userModel.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	if err := h.userModel.ChangePassword(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

// GetSecurityQuestion is step one of the forgot-password flow.
func (h *AuthHandler) GetSecurityQuestion(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		_ = c.Error(errors.ValidationFailed("Missing username", "username query parameter is required"))
		return
	}

	question, err := h.userModel.GetSecurityQuestion(c.Request.Context(), username)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": username, "securityQuestion": question})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req types.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	if err := h.userModel.ResetPassword(c.Request.Context(), &req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}

// Me returns the account behind the current session token.
func (h *AuthHandler) Me(c *gin.Context) {
	username := middleware.GetUserID(c)
	if username == "" {
		logger.GetLogger().Warn("Me handler reached without authenticated user")
		_ = c.Error(errors.Unauthorized("missing_user", "User not authenticated"))
		return
	}

	user, err := h.userModel.GetUser(c.Request.Context(), username)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SecurityQuestions lists the preset questions offered at registration.
func (h *AuthHandler) SecurityQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": types.SecurityQuestions})
}
