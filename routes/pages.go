package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// SetupPages registers the page routes the session guard protects. The real
// UI is a separate frontend build; when WEB_ROOT points at it, pages are
// served from there, otherwise a minimal placeholder keeps the routes (and the
// guard's redirect targets) alive.
func SetupPages(router *gin.Engine) {
	webRoot := os.Getenv("WEB_ROOT")

	page := func(name, title string) gin.HandlerFunc {
		return func(c *gin.Context) {
			if webRoot != "" {
				file := filepath.Join(webRoot, name+".html")
				if _, err := os.Stat(file); err == nil {
					c.File(file)
					return
				}
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8",
				[]byte("<!DOCTYPE html><html><head><title>"+title+"</title></head><body><h1>"+title+"</h1></body></html>"))
		}
	}

	router.GET("/", page("index", "Seminar Hall Booking"))
	router.GET("/login", page("login", "Login"))
	router.GET("/admin/dashboard", page("admin-dashboard", "Admin Dashboard"))
	router.GET("/faculty/dashboard", page("faculty-dashboard", "Faculty Dashboard"))
	router.GET("/club/dashboard", page("club-dashboard", "Club Dashboard"))
}
