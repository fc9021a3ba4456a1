package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/jxjxx71718/mediaGallery/internal/application/usecase/abstraction"
	"github.com/jxjxx71718/mediaGallery/internal/presentation"
)

// Register mounts the catalog API on e.
func Register(e *echo.Echo, catalog abstraction.Catalog) {
	createHandler := NewCreateHandler(catalog)
	getHandler := NewGetHandler(catalog)
	listHandler := NewListHandler(catalog)
	updateHandler := NewUpdateHandler(catalog)
	deleteHandler := NewDeleteHandler(catalog)

	api := e.Group(presentation.APIPrefix)
	itemPath := fmt.Sprintf("%s/:%s", presentation.MediaPath, presentation.IDParam)

	api.GET(presentation.PublicPath, listHandler.HandlePublic)
	api.GET(presentation.MediaPath, listHandler.HandleList)
	api.POST(presentation.MediaPath, createHandler.HandleCreate)
	api.GET(itemPath, getHandler.HandleGet)
	api.PUT(itemPath, updateHandler.HandleUpdate)
	api.DELETE(itemPath, deleteHandler.HandleDelete)
}
