package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/IrfanFared/package-uas/database"
	"github.com/IrfanFared/package-uas/models"
)

type GradeHandler struct{}

func NewGradeHandler() *GradeHandler { return &GradeHandler{} }

var errNoGradeRecords = errors.New("no grade records")

// GetGradeIndex computes the term grade index (IPS) for one student:
// GET /api/acad/nilai/:nim
//
// Inner joins mean an enrollment whose letter grade has no entry in
// bobot_nilai simply drops out of the result.
func (h *GradeHandler) GetGradeIndex(c echo.Context) error {
	nim := c.Param("nim")

	var entries []models.TranscriptEntry
	err := database.DB.WithContext(c.Request().Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("krs").
			Select("mata_kuliah.nama_mk AS nama_mk, mata_kuliah.sks AS sks, krs.nilai AS nilai_huruf, bobot_nilai.bobot AS nilai_angka").
			Joins("JOIN mata_kuliah ON krs.kode_mk = mata_kuliah.kode_mk").
			Joins("JOIN bobot_nilai ON krs.nilai = bobot_nilai.nilai").
			Where("krs.nim = ?", nim).
			Scan(&entries).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return errNoGradeRecords
		}
		return nil
	})
	if errors.Is(err, errNoGradeRecords) {
		// covers both "unknown student" and "no weighted enrollments"
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{
			"error":  "GRADES_NOT_FOUND",
			"detail": "no grade records for this student",
		})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{
			"error":  "INTERNAL_ERROR",
			"detail": "failed to read grade records",
		})
	}

	totalSKS, ips := summarize(entries)
	return c.JSON(http.StatusOK, models.GradeIndex{
		NIM:          nim,
		TotalCredits: totalSKS,
		IPS:          ips,
		Transcript:   entries,
	})
}

// summarize reduces the joined rows in one pass to total credit hours and the
// credit-weighted, rounded grade index. Zero total credits yields 0.0.
func summarize(entries []models.TranscriptEntry) (int, float64) {
	totalSKS := 0
	totalPoints := 0.0
	for _, e := range entries {
		totalSKS += e.Credits
		totalPoints += float64(e.Credits) * e.GradeWeight
	}
	if totalSKS == 0 {
		return 0, 0.0
	}
	return totalSKS, roundIndex(totalPoints / float64(totalSKS))
}

// roundIndex rounds half away from zero to 2 decimal places.
func roundIndex(v float64) float64 {
	return math.Round(v*100) / 100
}
