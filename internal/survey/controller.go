package survey

import (
	"fmt"
	"net/http"

	"healthpulse-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	SurveyService *SurveyService
	LS            LogServicePort
}

func (sc *SurveyController) GetGeneralSurveys(c *gin.Context) {
	surveys, err := sc.SurveyService.GetGeneralSurveys()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

func (sc *SurveyController) CreateGeneralSurvey(c *gin.Context) {
	var req CreateGeneralSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := sc.SurveyService.CreateGeneralSurvey(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log := logs.SystemLog{
		Level:   "INFO",
		Service: "survey",
		Action:  "SUBMIT_GENERAL",
		Message: fmt.Sprintf("General survey submitted for %s", row.FullName),
	}
	if err := sc.LS.Log(log, req); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, row)
}

func (sc *SurveyController) GetANCSurveys(c *gin.Context) {
	surveys, err := sc.SurveyService.GetANCSurveys()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, surveys)
}

func (sc *SurveyController) CreateANCSurvey(c *gin.Context) {
	var req CreateANCSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := sc.SurveyService.CreateANCSurvey(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log := logs.SystemLog{
		Level:   "INFO",
		Service: "survey",
		Action:  "SUBMIT_ANC",
		Message: fmt.Sprintf("ANC survey submitted for %s", row.FullName),
	}
	if err := sc.LS.Log(log, req); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, row)
}
