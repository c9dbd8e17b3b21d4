package delivery

import (
	"net/http"

	"smartlists-backend/internal/item/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemUsecase usecase.ItemUsecase
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemUsecase usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{
		itemUsecase: itemUsecase,
	}
}

// AddItemRequest represents the request body for adding an item manually
type AddItemRequest struct {
	Content  string  `json:"content" binding:"required"`
	Notes    *string `json:"notes"`
	Priority *string `json:"priority"`
}

// UpdateItemRequest wraps a partial item update with the target item ID
type UpdateItemRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	usecase.ItemUpdateRequest
}

// DeleteItemRequest optionally names one item; without it the whole list
// is cleared
type DeleteItemRequest struct {
	ItemID string `json:"itemId"`
}

func respondItemError(c *gin.Context, err error, fallback string) {
	switch err.Error() {
	case "list not found", "item not found":
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case "unauthorized":
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case "invalid priority", "invalid display mode", "content is required":
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// GetItems returns all items of a list
// GET /api/lists/:id/items
func (h *ItemHandler) GetItems(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	items, err := h.itemUsecase.GetListItems(userID, listID)
	if err != nil {
		respondItemError(c, err, "Failed to fetch items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// AddItem adds an item to a list manually
// POST /api/lists/:id/items
func (h *ItemHandler) AddItem(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	item, err := h.itemUsecase.AddItem(userID, listID, req.Content, req.Notes, req.Priority)
	if err != nil {
		respondItemError(c, err, "Failed to add item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates an item (completion, priority, content, notes or
// display mode)
// PUT /api/lists/:id/items
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item ID is required"})
		return
	}

	item, err := h.itemUsecase.UpdateItem(userID, listID, req.ItemID, req.ItemUpdateRequest)
	if err != nil {
		respondItemError(c, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItems deletes one item by itemId, or all items of the list when
// no itemId is given
// DELETE /api/lists/:id/items
func (h *ItemHandler) DeleteItems(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	var req DeleteItemRequest
	_ = c.ShouldBindJSON(&req)

	var err error
	if req.ItemID != "" {
		err = h.itemUsecase.DeleteItem(userID, listID, req.ItemID)
	} else {
		err = h.itemUsecase.ClearList(userID, listID)
	}
	if err != nil {
		respondItemError(c, err, "Failed to delete item(s)")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
