package main

import (
	"log"
	"net/http"
	"os"

	"healthpulse-api/config"
	"healthpulse-api/internal/auth"
	"healthpulse-api/internal/dashboard"
	"healthpulse-api/internal/household"
	"healthpulse-api/internal/logs"
	"healthpulse-api/internal/survey"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()
	cfg.CheckCritical()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&auth.Account{},
		&auth.AdminCredential{},
		&survey.GeneralSurvey{},
		&survey.ANCSurvey{},
		&household.Household{},
		&household.HouseholdMember{},
		&household.MemberANCRecord{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Health survey API is running"})
	}
	r.GET("/health", healthHandler)
	r.GET("/api/health", healthHandler)

	logService := &logs.LogService{DB: db}
	logs.RegisterRoutes(r, logService)

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, logService)

	surveyService := &survey.SurveyService{DB: db}
	survey.RegisterRoutes(r, surveyService, logService)

	householdService := &household.HouseholdService{DB: db}
	household.RegisterRoutes(r, householdService, logService)

	dashboardService := &dashboard.DashboardService{DB: db}
	dashboard.RegisterRoutes(r, dashboardService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
