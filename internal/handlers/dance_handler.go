package handlers

import (
	"github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DanceHandler struct {
	svc    *services.DanceVideoService
	logger *zap.SugaredLogger
}

func NewDanceHandler(svc *services.DanceVideoService, logger *zap.SugaredLogger) *DanceHandler {
	return &DanceHandler{svc: svc, logger: logger}
}

// GET /dance-videos
func (h *DanceHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		h.logger.Errorf("list dance videos: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}
	return c.Render("dance", fiber.Map{"Title": "Dance Videos", "Items": items})
}

// POST /dance-videos (multipart/form-data 'file')
func (h *DanceHandler) Create(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("video file missing")
	}
	in := services.DanceVideoUpload{
		Title:         c.FormValue("title"),
		Description:   c.FormValue("description"),
		Choreographer: c.FormValue("choreographer"),
		Genre:         c.FormValue("genre"),
		Tags:          c.FormValue("tags"),
	}
	if _, err := h.svc.Upload(c.Context(), in, fh); err != nil {
		h.logger.Errorf("upload dance video: %v", err)
		return c.Status(statusFor(err)).SendString("Error uploading video")
	}
	return c.Redirect("/dance-videos")
}

// GET /dance-videos/:id
func (h *DanceHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Dance video not found")
	}
	v, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return c.Status(statusFor(err)).SendString("Dance video not found")
	}
	return c.Render("dance-details", fiber.Map{"Title": "Dance Video Details", "Video": v})
}

// DELETE /dance-videos/:id
func (h *DanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Dance video not found")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return c.Status(statusFor(err)).SendString("Dance video not found")
	}
	return c.Redirect("/dance-videos")
}
