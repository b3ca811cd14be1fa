package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz-backend/internal/app"
)

type AuthHandler struct {
	service *app.AuthService
}

func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req app.Registration
	if !bindJSON(c, &req) {
		return
	}
	user, tokens, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{
		Message: "User registered successfully",
		User:    toUserView(user, false),
		Tokens:  tokens,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req app.Credentials
	if !bindJSON(c, &req) {
		return
	}
	user, tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{
		Message: "Login successful",
		User:    toUserView(user, false),
		Tokens:  tokens,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}
	access, err := h.service.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	user, _ := currentUser(c)
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Logout(c.Request.Context(), user, req.Refresh); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user, _ := currentUser(c)
	c.JSON(http.StatusOK, userResponse{User: toUserView(user, true)})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, _ := currentUser(c)
	var patch app.ProfilePatch
	if !bindJSON(c, &patch) {
		return
	}
	updated, err := h.service.UpdateProfile(c.Request.Context(), user.ID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{Message: "Profile updated successfully", User: toUserView(updated, true)})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, _ := currentUser(c)
	var req app.PasswordChange
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), user.ID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Password changed successfully"})
}
