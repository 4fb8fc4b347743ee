package household

import (
	"healthpulse-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ LogServicePort = (*logs.LogService)(nil)

// Registration is submitted from the public form like the survey
// endpoints; listing is used by the admin dashboard but served here.
func RegisterRoutes(r *gin.Engine, householdService *HouseholdService, logService LogServicePort) {
	householdController := &HouseholdController{HouseholdService: householdService, LS: logService}

	householdGroup := r.Group("/api")
	{
		householdGroup.GET("/households", householdController.GetHouseholds)
		householdGroup.POST("/households", householdController.RegisterHousehold)
	}
}
