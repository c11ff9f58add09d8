package handlers

import (
	"github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MusicHandler struct {
	svc    *services.AudioService
	logger *zap.SugaredLogger
}

func NewMusicHandler(svc *services.AudioService, logger *zap.SugaredLogger) *MusicHandler {
	return &MusicHandler{svc: svc, logger: logger}
}

// GET /music
func (h *MusicHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		h.logger.Errorf("list music: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}
	return c.Render("music", fiber.Map{"Title": "Music Library", "Items": items})
}

// POST /music (multipart/form-data 'file')
func (h *MusicHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("audio file missing")
	}
	in := services.AudioUpload{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Artist:      c.FormValue("artist"),
		Genre:       c.FormValue("genre"),
		Tags:        c.FormValue("tags"),
	}
	if _, err := h.svc.Upload(c.Context(), in, fh); err != nil {
		h.logger.Errorf("upload music: %v", err)
		return c.Status(statusFor(err)).SendString("Error uploading music")
	}
	return c.Redirect("/music")
}

// GET /music/:id
func (h *MusicHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Audio not found")
	}
	a, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return c.Status(statusFor(err)).SendString("Audio not found")
	}
	return c.Render("music-details", fiber.Map{"Title": "Music Details", "Audio": a})
}

// DELETE /music/:id
func (h *MusicHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Audio not found")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return c.Status(statusFor(err)).SendString("Audio not found")
	}
	return c.Redirect("/music")
}
