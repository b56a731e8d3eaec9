package controllers

import (
	"net/http"
	"time"

	"DocTrackerGo/config"
	"DocTrackerGo/middleware"
	"DocTrackerGo/models"
	"DocTrackerGo/services"
	"DocTrackerGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	users   *services.UserService
	revoker utils.TokenRevoker
}

func NewAuthController(users *services.UserService, revoker utils.TokenRevoker) *AuthController {
	return &AuthController{users: users, revoker: revoker}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.users.Register(c.Request.Context(), req, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	ac.issueToken(c, user, "Registration successful")
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ac.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	ac.issueToken(c, user, "Login successful")
}

// Logout revokes the presented token until it expires.
func (ac *AuthController) Logout(c *gin.Context) {
	claims, _ := c.MustGet(middleware.ContextClaims).(*utils.Claims)
	if ac.revoker != nil && claims != nil && claims.ExpiresAt != nil {
		if err := ac.revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (ac *AuthController) issueToken(c *gin.Context, user *models.User, message string) {
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	config.Logger.Infow("token issued", "userID", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data": models.AuthResponse{
			Token: token,
			User:  models.NewUserResponse(user),
		},
	})
}
