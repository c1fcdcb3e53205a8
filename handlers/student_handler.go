package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/IrfanFared/package-uas/database"
	"github.com/IrfanFared/package-uas/models"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

// List returns every registered student.
// GET /api/acad/mahasiswa
func (h *StudentHandler) List(c echo.Context) error {
	var students []models.Mahasiswa
	if err := database.DB.WithContext(c.Request().Context()).Order("nim").Find(&students).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{
			"error":  "INTERNAL_ERROR",
			"detail": "failed to read students",
		})
	}
	return c.JSON(http.StatusOK, students)
}

// GetByNIM returns one student.
// GET /api/acad/mahasiswa/:nim
func (h *StudentHandler) GetByNIM(c echo.Context) error {
	var student models.Mahasiswa
	err := database.DB.WithContext(c.Request().Context()).
		Where("nim = ?", c.Param("nim")).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{
			"error":  "STUDENT_NOT_FOUND",
			"detail": "student not found",
		})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{
			"error":  "INTERNAL_ERROR",
			"detail": "failed to read student",
		})
	}
	return c.JSON(http.StatusOK, student)
}
