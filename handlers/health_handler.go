package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health ใช้สำหรับ /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "acad service is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
