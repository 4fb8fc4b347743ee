package auth

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"healthpulse-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Account{}, &AdminCredential{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		t.Cleanup(func() { _ = sqlDB.Close() })
	}

	return db
}

type mockAuthService struct {
	CreateAccountFn  func(account Account) (*Account, error)
	GetAccountFn     func(email string) (*Account, error)
	GetAccountByIDFn func(id int) (*Account, error)
	AdminLoginFn     func(username, password string) (*AdminCredential, error)
	GetAdminByIDFn   func(id int) (*AdminCredential, error)
}

func (m *mockAuthService) CreateAccount(account Account) (*Account, error) {
	if m.CreateAccountFn == nil {
		return nil, assertErr("CreateAccount not implemented")
	}
	return m.CreateAccountFn(account)
}

func (m *mockAuthService) GetAccount(email string) (*Account, error) {
	if m.GetAccountFn == nil {
		return nil, assertErr("GetAccount not implemented")
	}
	return m.GetAccountFn(email)
}

func (m *mockAuthService) GetAccountByID(id int) (*Account, error) {
	if m.GetAccountByIDFn == nil {
		return nil, assertErr("GetAccountByID not implemented")
	}
	return m.GetAccountByIDFn(id)
}

func (m *mockAuthService) AdminLogin(username, password string) (*AdminCredential, error) {
	if m.AdminLoginFn == nil {
		return nil, assertErr("AdminLogin not implemented")
	}
	return m.AdminLoginFn(username, password)
}

func (m *mockAuthService) GetAdminByID(id int) (*AdminCredential, error) {
	if m.GetAdminByIDFn == nil {
		return nil, assertErr("GetAdminByID not implemented")
	}
	return m.GetAdminByIDFn(id)
}

type mockLogService struct {
	LogFn func(entry logs.SystemLog, payload any) error
}

func (m *mockLogService) Log(entry logs.SystemLog, payload any) error {
	if m.LogFn == nil {
		return nil
	}
	return m.LogFn(entry, payload)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func setupAuthRouter(ac *AuthController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/api/auth/signup", ac.SignUp)
	r.POST("/api/auth/login", ac.Login)
	r.POST("/api/auth/refresh", ac.Refresh)
	r.POST("/api/auth/logout", ac.Logout)
	r.GET("/api/auth/me", ac.Me)
	r.POST("/api/admin/login", ac.AdminLogin)

	return r
}

func postJSON(r http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func doReq(r http.Handler, method, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func requireContains(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected %q to contain %q", s, sub)
	}
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(b)
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
