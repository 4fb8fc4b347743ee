package household

import (
	"errors"
	"fmt"
	"net/http"

	"healthpulse-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type HouseholdController struct {
	HouseholdService *HouseholdService
	LS               LogServicePort
}

func (hc *HouseholdController) RegisterHousehold(c *gin.Context) {
	var req RegisterHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := hc.HouseholdService.Register(req)
	if err != nil {
		var ve ValidationError
		var de *DuplicateAdharError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		case errors.As(err, &de):
			c.JSON(http.StatusConflict, gin.H{"error": de.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log := logs.SystemLog{
		Level:   "INFO",
		Service: "household",
		Action:  "REGISTER_HOUSEHOLD",
		Message: fmt.Sprintf("Household of %s registered with %d members", resp.Household.HeadName, resp.MembersCreated),
		Village: &resp.Household.Village,
	}
	if err := hc.LS.Log(log, req); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, resp)
}

func (hc *HouseholdController) GetHouseholds(c *gin.Context) {
	rows, err := hc.HouseholdService.GetHouseholds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
