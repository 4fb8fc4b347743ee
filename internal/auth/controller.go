package auth

import (
	"fmt"
	"net/http"
	"time"

	"healthpulse-api/config"
	"healthpulse-api/internal/logs"
	"healthpulse-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
)

type AuthController struct {
	AuthService AuthServicePort
	LS          LogServicePort
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req struct {
		FirstName string   `json:"firstname" binding:"required"`
		LastName  string   `json:"lastname" binding:"required"`
		Email     string   `json:"email" binding:"required,email"`
		Password  string   `json:"password" binding:"required,min=6"`
		Villages  []string `json:"villages"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password, err := util.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	account := Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  password,
	}

	if len(req.Villages) > 0 {
		account.Villages = pq.StringArray(req.Villages)
	}

	newAccount, err := ac.AuthService.CreateAccount(account)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := uint(newAccount.ID)

	log := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "SIGNUP",
		Message: fmt.Sprintf("Account created with email %s", account.Email),
		UserID:  &uid,
	}

	if err := ac.LS.Log(log, account); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": map[string]interface{}{
			"id":        newAccount.ID,
			"firstname": newAccount.FirstName,
			"lastname":  newAccount.LastName,
			"email":     newAccount.Email,
			"villages":  newAccount.Villages,
		},
	})
}

func setAuthCookies(c *gin.Context, secret string, userID int, role string, villages []string, rememberMe bool) {
	// Short-lived access token
	accessExp := time.Now().Add(15 * time.Minute)
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"villages": villages,
		"exp":      accessExp.Unix(),
	})
	accessTokenString, _ := accessToken.SignedString([]byte(secret))

	refreshDuration := 24 * time.Hour
	if rememberMe {
		refreshDuration = 30 * 24 * time.Hour
	}
	refreshExp := time.Now().Add(refreshDuration)
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"role":     role,
		"villages": villages,
		"exp":      refreshExp.Unix(),
	})
	refreshTokenString, _ := refreshToken.SignedString([]byte(secret))

	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    accessTokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode, // required for cross-site cookies
	}
	refreshCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshTokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, accessCookie)
	http.SetCookie(c.Writer, refreshCookie)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ac.AuthService.GetAccount(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oops! We couldn’t log you in. Please check your email and password and try again."})
		return
	}

	if err := util.VerifyPassword(req.Password, account.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oops! We couldn’t log you in. Please check your email and password and try again."})
		return
	}

	cfg := config.LoadConfig()
	setAuthCookies(c, cfg.JWTSecret, account.ID, account.Role, account.Villages, req.RememberMe)

	uid := uint(account.ID)
	log := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "LOGIN",
		Message: fmt.Sprintf("User logged in with email: %s", account.Email),
		UserID:  &uid,
	}
	if err := ac.LS.Log(log, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Role:      account.Role,
			Villages:  account.Villages,
		},
	})
}

func (ac *AuthController) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cred, err := ac.AuthService.AdminLogin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	cfg := config.LoadConfig()
	setAuthCookies(c, cfg.JWTSecret, int(cred.ID), "admin", nil, false)

	uid := cred.ID
	log := logs.SystemLog{
		Level:   "INFO",
		Service: "auth",
		Action:  "ADMIN_LOGIN",
		Message: fmt.Sprintf("Admin logged in: %s", cred.Username),
		UserID:  &uid,
	}
	if err := ac.LS.Log(log, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": map[string]interface{}{
			"id":       cred.ID,
			"username": cred.Username,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	}
	refreshCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	}
	http.SetCookie(c.Writer, accessCookie)
	http.SetCookie(c.Writer, refreshCookie)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie("access_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := int(claims["user_id"].(float64))
	role, _ := claims["role"].(string)

	if role == "admin" {
		cred, err := ac.AuthService.GetAdminByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"admin": map[string]interface{}{
				"id":       cred.ID,
				"username": cred.Username,
			},
		})
		return
	}

	account, err := ac.AuthService.GetAccountByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": LoginResponse{
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Role:      account.Role,
			Villages:  account.Villages,
		},
	})
}

// Refresh endpoint to generate a new access token pair
func (ac *AuthController) Refresh(c *gin.Context) {
	cfg := config.LoadConfig()

	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := int(claims["user_id"].(float64))
	role, _ := claims["role"].(string)

	villages := []string{}
	if raw, ok := claims["villages"].([]interface{}); ok {
		for _, v := range raw {
			if s, ok := v.(string); ok && s != "" {
				villages = append(villages, s)
			}
		}
	}

	setAuthCookies(c, cfg.JWTSecret, userID, role, villages, false)

	c.JSON(http.StatusOK, gin.H{"message": "Token refreshed"})
}
