package handlers

import (
	"errors"

	"github.com/fathima-sithara/media-gallery/internal/media"
	"github.com/fathima-sithara/media-gallery/internal/repository"
	"github.com/fathima-sithara/media-gallery/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// statusFor maps service errors onto HTTP statuses: validation failures are
// the client's fault, unknown keys are 404, everything else is a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, media.ErrUnsupportedMediaType),
		errors.Is(err, media.ErrFileTooLarge),
		errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// parseID decodes the :id route param. A malformed id can never name a
// record, so it is reported the same way as a missing one.
func parseID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return id, nil
}
