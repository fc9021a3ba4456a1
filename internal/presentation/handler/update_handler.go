package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
)

type UpdateHandler struct {
	updater abstraction.Updater
}

func NewUpdateHandler(updater abstraction.Updater) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
	}
}

// HandleUpdate handles PUT /api/media/:id requests. Only the fields present
// in the body are changed.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	payload, err := bindPayload(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	item, status, err := h.updater.Update(c.Request().Context(), id, payload)
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, item)
}
