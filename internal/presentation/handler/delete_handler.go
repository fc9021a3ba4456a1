package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /api/media/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	removed, status, err := h.deleter.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, dto.DeleteResponse{OK: true, Removed: *removed})
}
