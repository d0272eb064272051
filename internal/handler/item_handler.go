package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/internal/domain"
	"github.com/starterkit/render-starter/internal/service"
	"github.com/starterkit/render-starter/pkg/ginutil"
)

// ItemHandler handles HTTP requests for sample items
type ItemHandler struct {
	service service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(service service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// ItemList is the payload of the item listing
type ItemList struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// ListItems handles GET /api/v1/items
// @Summary List sample items
// @Tags items
// @Produce json
// @Success 200 {object} common.Response{data=handler.ItemList}
// @Router /api/v1/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems()
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.Success(c, ItemList{Items: items, Count: len(items)})
}

// GetItem handles GET /api/v1/items/:id
// Non-numeric ids are reported as not found, like unknown ones
// @Summary Get a sample item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} common.Response{data=domain.Item}
// @Failure 404 {object} common.Response
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := ginutil.ParamInt(c, "id")
	if err != nil {
		_ = c.Error(common.NotFound(fmt.Sprintf("Item with id %s not found", c.Param("id"))))
		return
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	common.Success(c, item)
}
