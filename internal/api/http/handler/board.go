package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/hongik-triple/acnelog_backend/internal/service/board"
)

type BoardHandler struct {
	svc board.Service
}

func NewBoardHandler(svc board.Service) *BoardHandler {
	return &BoardHandler{svc: svc}
}

func mapBoardError(c fiber.Ctx, err error) error {
	if errors.Is(err, board.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c)
}

// GET /boards
func (h *BoardHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	page, err := h.svc.List(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapBoardError(c, err)
	}

	return ok(c, page)
}

// GET /boards/:id
func (h *BoardHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notice id")
	}

	n, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapBoardError(c, err)
	}

	return ok(c, n)
}

// POST /boards
func (h *BoardHandler) Create(c fiber.Ctx) error {
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Pinned  bool   `json:"pinned"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" || body.Content == "" {
		return badRequest(c, "title and content are required")
	}

	n, err := h.svc.Create(c.Context(), board.CreateRequest{
		Title:   body.Title,
		Content: body.Content,
		Pinned:  body.Pinned,
	})
	if err != nil {
		return mapBoardError(c, err)
	}

	return created(c, n)
}

// PATCH /boards/:id
func (h *BoardHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notice id")
	}

	var body struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		Pinned  *bool   `json:"pinned"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	n, err := h.svc.Update(c.Context(), id, board.UpdateRequest{
		Title:   body.Title,
		Content: body.Content,
		Pinned:  body.Pinned,
	})
	if err != nil {
		return mapBoardError(c, err)
	}

	return ok(c, n)
}

// DELETE /boards/:id
func (h *BoardHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notice id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapBoardError(c, err)
	}

	return noContent(c)
}
