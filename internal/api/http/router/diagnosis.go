package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hongik-triple/acnelog_backend/internal/api/http/handler"
)

func (r *Router) registerDiagnosisRoutes(
	api fiber.Router,
	dh *handler.DiagnosisHandler,
	authRequired fiber.Handler,
	authOptional fiber.Handler,
) {
	diag := api.Group("/diagnosis")

	// Anonymous callers are allowed; claims attach an owner when present.
	diag.Post("/", dh.Diagnose, authOptional)
	diag.Get("/", dh.ListPublic)
	diag.Get("/main", dh.MainPage)
	diag.Get("/me", dh.ListOwn, authRequired)
	diag.Get("/:id", dh.Get, authOptional)
	diag.Patch("/:id/visibility", dh.SetVisibility, authRequired)
}
