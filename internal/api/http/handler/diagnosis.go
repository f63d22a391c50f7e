package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hongik-triple/acnelog_backend/internal/service/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/skin"
	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
)

type DiagnosisHandler struct {
	svc diagnosis.Service
}

func NewDiagnosisHandler(svc diagnosis.Service) *DiagnosisHandler {
	return &DiagnosisHandler{svc: svc}
}

func mapDiagnosisError(c fiber.Ctx, err error) error {
	var verr *skin.ValidationError
	switch {
	case errors.Is(err, diagnosis.ErrEmptyImage):
		return badRequest(c, err.Error())
	case errors.Is(err, diagnosis.ErrInvalidClassification):
		return badRequest(c, err.Error())
	case errors.Is(err, skin.ErrUnknownClassification):
		return badRequest(c, err.Error())
	case errors.As(err, &verr):
		return badRequest(c, verr.Error())
	case errors.Is(err, diagnosis.ErrInferenceUnavailable):
		return badGateway(c, "inference server unavailable")
	case errors.Is(err, diagnosis.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diagnosis.ErrUnauthorized):
		return forbidden(c)
	case errors.Is(err, diagnosis.ErrMissingOwner):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

// requesterID returns the caller's member id when authenticated, nil otherwise.
func requesterID(c fiber.Ctx) *uuid.UUID {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return nil
	}
	id := claims.MemberID
	return &id
}

// POST /diagnosis
// Multipart image submission; runs the full inference pipeline.
func (h *DiagnosisHandler) Diagnose(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file field is required")
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer f.Close()

	img, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "unreadable file")
	}

	res, err := h.svc.Diagnose(c.Context(), diagnosis.DiagnoseRequest{
		MemberID:    requesterID(c),
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Image:       img,
	})
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return created(c, res)
}

// GET /diagnosis/main
func (h *DiagnosisHandler) MainPage(c fiber.Ctx) error {
	digest, err := h.svc.MainPage(c.Context())
	if err != nil {
		return mapDiagnosisError(c, err)
	}
	return ok(c, digest)
}

// GET /diagnosis
func (h *DiagnosisHandler) ListPublic(c fiber.Ctx) error {
	var q struct {
		Filter  string `query:"filter"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, err := h.svc.ListPublic(c.Context(), diagnosis.ListRequest{
		Filter:  q.Filter,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return ok(c, page)
}

// GET /diagnosis/me
func (h *DiagnosisHandler) ListOwn(c fiber.Ctx) error {
	requester := requesterID(c)
	if requester == nil {
		return unauthorized(c)
	}

	var q struct {
		Filter  string `query:"filter"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, err := h.svc.ListOwn(c.Context(), requester, diagnosis.ListRequest{
		Filter:  q.Filter,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return ok(c, page)
}

// GET /diagnosis/:id
func (h *DiagnosisHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid diagnosis id")
	}

	detail, err := h.svc.GetDetail(c.Context(), id, requesterID(c))
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return ok(c, detail)
}

// PATCH /diagnosis/:id/visibility
func (h *DiagnosisHandler) SetVisibility(c fiber.Ctx) error {
	claims, authOK := pasetotoken.ClaimsFromFiber(c)
	if !authOK {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid diagnosis id")
	}

	var body struct {
		IsPublic *bool `json:"is_public"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.IsPublic == nil {
		return badRequest(c, "is_public is required")
	}

	detail, err := h.svc.SetVisibility(c.Context(), id, claims.MemberID, *body.IsPublic)
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return ok(c, detail)
}
