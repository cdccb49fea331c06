package handlers

import (
	"net/http"

	"footballclub/middleware"
	"footballclub/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token exchanges form-encoded username and password for a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		respondValidation(c, err)
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, services.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, identity)
}
