package dashboard

import (
	"healthpulse-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dashboardService *DashboardService) {
	dashboardController := &DashboardController{DashboardService: dashboardService}

	dashboardGroup := r.Group("/api/dashboard", middlewares.AuthMiddleware())
	{
		dashboardGroup.GET("/overview", dashboardController.Overview)
		dashboardGroup.GET("/general", dashboardController.GetGeneral)
		dashboardGroup.GET("/anc", dashboardController.GetANC)
		dashboardGroup.POST("/drill", dashboardController.Drill)
		dashboardGroup.GET("/residents/:id/anc", dashboardController.ResidentANC)
		dashboardGroup.POST("/download", dashboardController.Download)
	}
}
