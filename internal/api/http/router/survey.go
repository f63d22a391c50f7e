package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hongik-triple/acnelog_backend/internal/api/http/handler"
)

func (r *Router) registerSurveyRoutes(
	api fiber.Router,
	sh *handler.SurveyHandler,
	authRequired fiber.Handler,
	authOptional fiber.Handler,
) {
	surveys := api.Group("/surveys")

	surveys.Get("/questions", sh.Questions)
	surveys.Post("/", sh.Register, authOptional)
	surveys.Get("/me", sh.ListOwn, authRequired)
	surveys.Get("/:id", sh.Get, authRequired)
}
