package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/hongik-triple/acnelog_backend/internal/service/member"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

type MemberHandler struct {
	svc member.Service
}

func NewMemberHandler(svc member.Service) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func mapMemberError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, member.ErrUnknownProvider):
		return badRequest(c, err.Error())
	case errors.Is(err, member.ErrInvalidSkinType):
		return badRequest(c, err.Error())
	case errors.Is(err, member.ErrLoginFailed):
		return unauthorized(c)
	case errors.Is(err, member.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /auth/:provider/url
func (h *MemberHandler) AuthURL(c fiber.Ctx) error {
	url, err := h.svc.AuthURL(c.Params("provider"), c.Query("state"))
	if err != nil {
		return mapMemberError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// POST /auth/:provider/login
// Exchanges the OAuth authorization code for a session and token pair.
func (h *MemberHandler) Login(c fiber.Ctx) error {
	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Code == "" {
		return badRequest(c, "code is required")
	}

	res, err := h.svc.Login(c.Context(), c.Params("provider"), body.Code)
	if err != nil {
		return mapMemberError(c, err)
	}

	return ok(c, res)
}

// POST /auth/refresh
func (h *MemberHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	res, err := h.svc.Refresh(c.Context(), body.RefreshToken)
	if err != nil {
		return mapMemberError(c, err)
	}

	return ok(c, res)
}

// POST /auth/logout
func (h *MemberHandler) Logout(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}
	if claims.SessionID != nil {
		if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
			return mapMemberError(c, err)
		}
	}
	return noContent(c)
}

// GET /members/me
func (h *MemberHandler) GetProfile(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	profile, err := h.svc.GetProfile(c.Context(), claims.MemberID)
	if err != nil {
		return mapMemberError(c, err)
	}

	return ok(c, profile)
}

// PATCH /members/me
func (h *MemberHandler) UpdateProfile(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	var body struct {
		Name     *string `json:"name"`
		SkinType *string `json:"skin_type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	profile, err := h.svc.UpdateProfile(c.Context(), claims.MemberID, member.UpdateProfileRequest{
		Name:     body.Name,
		SkinType: body.SkinType,
	})
	if err != nil {
		return mapMemberError(c, err)
	}

	return ok(c, profile)
}

// DELETE /members/me
func (h *MemberHandler) Withdraw(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	if err := h.svc.Withdraw(c.Context(), claims.MemberID); err != nil {
		return mapMemberError(c, err)
	}
	if claims.SessionID != nil {
		_ = h.svc.Logout(c.Context(), *claims.SessionID)
	}

	return noContent(c)
}
