package dto

import "github.com/jxjxx71718/mediaGallery/internal/domain/model"

type DeleteResponse struct {
	OK      bool            `json:"ok"`
	Removed model.MediaItem `json:"removed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
