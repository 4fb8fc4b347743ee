package survey

import (
	"healthpulse-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ LogServicePort = (*logs.LogService)(nil)

// Intake endpoints stay open: field workers submit from the public
// form, authentication guards only the admin views.
func RegisterRoutes(r *gin.Engine, surveyService *SurveyService, logService LogServicePort) {
	surveyController := &SurveyController{SurveyService: surveyService, LS: logService}

	surveyGroup := r.Group("/api")
	{
		surveyGroup.GET("/general-surveys", surveyController.GetGeneralSurveys)
		surveyGroup.POST("/general-surveys", surveyController.CreateGeneralSurvey)
		surveyGroup.GET("/anc-surveys", surveyController.GetANCSurveys)
		surveyGroup.POST("/anc-surveys", surveyController.CreateANCSurvey)
	}
}
