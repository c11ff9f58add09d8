package media

import (
	"errors"
	"fmt"
	"mime/multipart"
)

// MaxVideoSize caps dance video uploads.
const MaxVideoSize = 100 * 1024 * 1024

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file too large")
)

var (
	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	}
	allowedAudioTypes = map[string]bool{
		"audio/mpeg": true,
		"audio/mp3":  true,
	}
	allowedVideoTypes = map[string]bool{
		"video/mp4":  true,
		"video/avi":  true,
		"video/mpeg": true,
	}
)

// ValidateImage accepts jpeg, png and gif uploads.
func ValidateImage(h *multipart.FileHeader) error {
	return checkType(allowedImageTypes, h)
}

// ValidateAudio accepts mpeg and mp3 uploads.
func ValidateAudio(h *multipart.FileHeader) error {
	return checkType(allowedAudioTypes, h)
}

// ValidateVideo accepts mp4, avi and mpeg uploads up to MaxVideoSize.
func ValidateVideo(h *multipart.FileHeader) error {
	if err := checkType(allowedVideoTypes, h); err != nil {
		return err
	}
	if h.Size > MaxVideoSize {
		return fmt.Errorf("%w: %d bytes", ErrFileTooLarge, h.Size)
	}
	return nil
}

// checkType trusts the client-declared Content-Type; it does not sniff the
// file bytes.
func checkType(allowed map[string]bool, h *multipart.FileHeader) error {
	ct := h.Header.Get("Content-Type")
	if !allowed[ct] {
		return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, ct)
	}
	return nil
}
