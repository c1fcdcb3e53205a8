package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/IrfanFared/package-uas/authclient"
	"github.com/IrfanFared/package-uas/handlers"
	"github.com/IrfanFared/package-uas/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, verifier authclient.Verifier) {
	grades := handlers.NewGradeHandler()
	students := handlers.NewStudentHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)

	// ===== Protected: everything academic needs a token the auth service accepts =====
	acad := e.Group("/api/acad", middlewares.RequireAuth(verifier))
	acad.GET("/nilai/:nim", grades.GetGradeIndex)
	acad.GET("/mahasiswa", students.List)
	acad.GET("/mahasiswa/:nim", students.GetByNIM)
}
