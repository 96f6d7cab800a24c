package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Login handles guardian login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ctrl.authService.Login(req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err, "login")
		return
	}

	log.Info("Guardian logged in", nil)

	c.JSON(http.StatusOK, gin.H{
		"message": "로그인 성공",
		"token":   token,
	})
}

// Logout ends the session and revokes the presented token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)

	if err := ctrl.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err, "logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "로그아웃되었습니다",
	})
}

// Me returns the guardian profile and the patient card
// GET /api/v1/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	profile, err := ctrl.authService.Me()
	if err != nil {
		respondError(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
