package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hongik-triple/acnelog_backend/internal/service/survey"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

type SurveyHandler struct {
	svc survey.Service
}

func NewSurveyHandler(svc survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

func mapSurveyError(c fiber.Ctx, err error) error {
	var verr *skin.ValidationError
	switch {
	case errors.As(err, &verr):
		return badRequest(c, verr.Error())
	case errors.Is(err, survey.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, survey.ErrUnauthorized):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /surveys/questions
func (h *SurveyHandler) Questions(c fiber.Ctx) error {
	return ok(c, h.svc.Questions(c.Context()))
}

// POST /surveys
// Accepts both authenticated and anonymous submissions.
func (h *SurveyHandler) Register(c fiber.Ctx) error {
	var body struct {
		Answers skin.AnswerSet `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Register(c.Context(), survey.RegisterRequest{
		MemberID: requesterID(c),
		Answers:  body.Answers,
	})
	if err != nil {
		return mapSurveyError(c, err)
	}

	return created(c, res)
}

// GET /surveys/me
func (h *SurveyHandler) ListOwn(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, err := h.svc.ListOwn(c.Context(), claims.MemberID, q.Page, q.PerPage)
	if err != nil {
		return mapSurveyError(c, err)
	}

	return ok(c, page)
}

// GET /surveys/:id
func (h *SurveyHandler) Get(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid survey id")
	}

	detail, err := h.svc.GetDetail(c.Context(), id, claims.MemberID)
	if err != nil {
		return mapSurveyError(c, err)
	}

	return ok(c, detail)
}
