package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

var validate = validator.New()

// Validate checks a create payload or a merged update candidate. Rules are
// applied in order and the first failure is returned.
func Validate(payload dto.MediaPayload) error {
	if payload == nil {
		return invalid("payload", "request body must be a JSON object")
	}

	if strings.TrimSpace(payload.String(dto.FieldTitle)) == "" {
		return invalid(dto.FieldTitle, "title is required")
	}

	mediaType := strings.ToLower(payload.String(dto.FieldType))
	if err := validate.Var(mediaType, "required,oneof=image video"); err != nil {
		return invalid(dto.FieldType, "type must be either 'image' or 'video'")
	}

	if !hasMedia(payload) {
		return invalid(dto.FieldMediaURL,
			"either mediaUrl (non-empty string) or mediaUrls (non-empty array) is required")
	}

	if payload.Has(dto.FieldStatus) {
		if err := validate.Var(payload.String(dto.FieldStatus), "oneof=draft published"); err != nil {
			return invalid(dto.FieldStatus, "status must be either 'draft' or 'published'")
		}
	}

	return nil
}

func hasMedia(payload dto.MediaPayload) bool {
	if urls, ok := payload.Value(dto.FieldMediaURLs).([]any); ok && len(urls) > 0 {
		return true
	}

	url, ok := payload.Value(dto.FieldMediaURL).(string)

	return ok && strings.TrimSpace(url) != ""
}

func invalid(field, msg string) error {
	return &model.ValidationError{Field: field, Message: msg}
}
