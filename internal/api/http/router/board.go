package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hongik-triple/acnelog_backend/internal/api/http/handler"
)

func (r *Router) registerBoardRoutes(
	api fiber.Router,
	bh *handler.BoardHandler,
	authRequired fiber.Handler,
) {
	boards := api.Group("/boards")

	boards.Get("/", bh.List)
	boards.Get("/:id", bh.Get)

	// Notice management requires a signed-in operator.
	boards.Post("/", bh.Create, authRequired)
	boards.Patch("/:id", bh.Update, authRequired)
	boards.Delete("/:id", bh.Delete, authRequired)
}
