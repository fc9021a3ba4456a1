package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
)

type CreateHandler struct {
	creator abstraction.Creator
}

func NewCreateHandler(creator abstraction.Creator) *CreateHandler {
	return &CreateHandler{
		creator: creator,
	}
}

// HandleCreate handles POST /api/media requests.
func (h *CreateHandler) HandleCreate(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	item, status, err := h.creator.Create(c.Request().Context(), payload)
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, item)
}
