package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/media/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	item, status, err := h.getter.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, status, err)
	}

	return c.JSON(status, item)
}
