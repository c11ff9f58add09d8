package handlers

import (
	"github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PaintingHandler struct {
	svc    *services.PaintingService
	logger *zap.SugaredLogger
}

func NewPaintingHandler(svc *services.PaintingService, logger *zap.SugaredLogger) *PaintingHandler {
	return &PaintingHandler{svc: svc, logger: logger}
}

// GET /paintings
func (h *PaintingHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		h.logger.Errorf("list paintings: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}
	return c.Render("paintings", fiber.Map{"Title": "Paintings", "Items": items})
}

// POST /paintings (multipart/form-data 'image')
func (h *PaintingHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("image file missing")
	}
	_, err = h.svc.Upload(c.Context(), c.FormValue("name"), c.FormValue("desc"), fh)
	if err != nil {
		h.logger.Errorf("upload painting: %v", err)
		return c.Status(statusFor(err)).SendString("Error uploading painting")
	}
	return c.Redirect("/paintings")
}

// GET /paintings/:id
func (h *PaintingHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Painting not found")
	}
	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return c.Status(statusFor(err)).SendString("Painting not found")
	}
	return c.Render("details", fiber.Map{"Title": "Image Details", "Painting": p})
}

// DELETE /paintings/:id
func (h *PaintingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Painting not found")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return c.Status(statusFor(err)).SendString("Painting not found")
	}
	return c.Redirect("/paintings")
}
