package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/media requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	items, status, err := h.lister.List(c.Request().Context())
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, items)
}

// HandlePublic handles GET /api/public/media requests.
func (h *ListHandler) HandlePublic(c echo.Context) error {
	items, status, err := h.lister.ListPublished(c.Request().Context())
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, items)
}
