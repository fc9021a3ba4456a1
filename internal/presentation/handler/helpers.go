package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/presentation"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

var errInvalidID = errors.New("id must be an integer")

// parseID rejects only ids that are not integers. Zero and negative ids are
// well formed and simply never match an item.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param(presentation.IDParam), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}

	return id, nil
}

// bindPayload decodes the JSON body only. Path params are never merged in.
// An empty body yields a nil payload, which validation rejects.
func bindPayload(c echo.Context) (dto.MediaPayload, error) {
	var payload dto.MediaPayload
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return nil, errors.New("request body must be a JSON object")
	}

	return payload, nil
}

// writeError hides server side details from clients; they go to the log.
func writeError(c echo.Context, status int, err error) error {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)

		return c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
