package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort) {
	authController := &AuthController{AuthService: authService, LS: logService}

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", authController.SignUp)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.Refresh)
		authGroup.POST("/logout", authController.Logout)
		authGroup.GET("/me", authController.Me)
	}

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", authController.AdminLogin)
	}
}
