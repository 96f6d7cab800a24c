package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/config"
	"github.com/ikkim/bohoja-backend/internal/app/controller"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/internal/middleware"
)

type Router struct {
	signupController         *controller.SignupController
	authController           *controller.AuthController
	benefitController        *controller.BenefitController
	recommendationController *controller.RecommendationController
	historyController        *controller.HistoryController
	prescriptionController   *controller.PrescriptionController
	facilityController       *controller.FacilityController
	chatController           *controller.ChatController
	notificationController   *controller.NotificationController
	uploadController         *controller.UploadController
	authMiddleware           *middleware.AuthMiddleware
	metrics                  *metrics.Metrics
	config                   *config.Config
}

func NewRouter(
	signupController *controller.SignupController,
	authController *controller.AuthController,
	benefitController *controller.BenefitController,
	recommendationController *controller.RecommendationController,
	historyController *controller.HistoryController,
	prescriptionController *controller.PrescriptionController,
	facilityController *controller.FacilityController,
	chatController *controller.ChatController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	cfg *config.Config,
) *Router {
	return &Router{
		signupController:         signupController,
		authController:           authController,
		benefitController:        benefitController,
		recommendationController: recommendationController,
		historyController:        historyController,
		prescriptionController:   prescriptionController,
		facilityController:       facilityController,
		chatController:           chatController,
		notificationController:   notificationController,
		uploadController:         uploadController,
		authMiddleware:           authMiddleware,
		metrics:                  m,
		config:                   cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(r.metrics.Middleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "BOHOJA API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	auth := r.authMiddleware.Authenticate()

	v1 := router.Group("/api/v1")
	{
		signup := v1.Group("/signup")
		{
			signup.POST("", r.signupController.Start)
			signup.GET("/options", r.signupController.Options)
			signup.GET("/:id", r.signupController.Get)
			signup.PUT("/:id/credentials", r.signupController.SubmitCredentials)
			signup.PUT("/:id/guardian", r.signupController.SubmitGuardian)
			signup.PUT("/:id/patient", r.signupController.SubmitPatient)
			signup.POST("/:id/complete", r.signupController.Complete)
			signup.POST("/:id/back", r.signupController.Back)
		}

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", r.authController.Login)
			authGroup.POST("/logout", auth, r.authController.Logout)
			authGroup.GET("/me", auth, r.authController.Me)
		}

		benefits := v1.Group("/benefits")
		{
			benefits.GET("", r.benefitController.List)
			benefits.GET("/categories", r.benefitController.Categories)
			benefits.GET("/:id", r.benefitController.Detail)
			benefits.POST("/:id/apply", auth, r.benefitController.Apply)
		}

		recommendations := v1.Group("/recommendations", auth)
		{
			recommendations.GET("", r.recommendationController.Get)
			recommendations.POST("/apply", r.recommendationController.Apply)
		}

		v1.GET("/history", auth, r.historyController.GetHistory)
		v1.GET("/history/export", auth, r.historyController.Export)
		v1.GET("/expenditure", auth, r.historyController.GetExpenditure)

		prescriptions := v1.Group("/prescriptions")
		{
			prescriptions.GET("", auth, r.prescriptionController.List)
			prescriptions.POST("", auth, r.prescriptionController.Add)
		}

		facilities := v1.Group("/facilities")
		{
			facilities.GET("", r.facilityController.List)
			facilities.GET("/types", r.facilityController.Types)
			facilities.GET("/:id", r.facilityController.Detail)
		}

		chat := v1.Group("/chat", auth)
		{
			chat.POST("", r.chatController.Send)
			chat.GET("/messages", r.chatController.Messages)
		}

		v1.GET("/notifications", auth, r.notificationController.GetNotifications)
		// WebSocket은 헤더를 못 붙이는 클라이언트가 있어 ?token= 으로 인증
		v1.GET("/ws/notifications", auth, r.notificationController.Subscribe)

		v1.POST("/upload/presigned-url", r.uploadController.GeneratePresignedURL)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
