package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hall-booking-api/config"
)

// newMockDB swaps config.DB for a sqlmock-backed connection for one test.
// SkipDefaultTransaction keeps single-statement writes free of BEGIN/COMMIT
// expectations.
func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	prev := config.DB
	config.DB = gormDB
	t.Cleanup(func() {
		config.DB = prev
		_ = sqlDB.Close()
	})
	return mock
}

// authedRouter registers the handlers under test behind a stub session that
// injects the given identity, the way AuthMiddleware would.
func authedRouter(userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
	})
	router.GET("/notifications", GetNotifications)
	router.PATCH("/notifications", MarkNotificationsRead)
	router.GET("/notifications/counter", GetNotificationCounter)
	router.PATCH("/booking-requests/:id/approve", ApproveBookingRequest)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func verifyMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet database expectations: %v", err)
	}
}

func bodyContains(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), want) {
		t.Fatalf("response body %q missing %q", w.Body.String(), want)
	}
}
