package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hongik-triple/acnelog_backend/internal/api/http/handler"
)

func (r *Router) registerMemberRoutes(
	api fiber.Router,
	mh *handler.MemberHandler,
	authRequired fiber.Handler,
) {
	auth := api.Group("/auth")
	auth.Get("/:provider/url", mh.AuthURL)
	auth.Post("/:provider/login", mh.Login)
	auth.Post("/refresh", mh.Refresh)
	auth.Post("/logout", mh.Logout, authRequired)

	me := api.Group("/members/me", authRequired)
	me.Get("/", mh.GetProfile)
	me.Patch("/", mh.UpdateProfile)
	me.Delete("/", mh.Withdraw)
}
