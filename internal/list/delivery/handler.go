package delivery

import (
	"net/http"

	"smartlists-backend/internal/list/usecase"

	"github.com/gin-gonic/gin"
)

// ListHandler handles list-related HTTP requests
type ListHandler struct {
	listUsecase usecase.ListUsecase
}

// NewListHandler creates a new ListHandler
func NewListHandler(listUsecase usecase.ListUsecase) *ListHandler {
	return &ListHandler{
		listUsecase: listUsecase,
	}
}

// CreateListRequest represents the request body for creating a list
type CreateListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

// AnalyzePurposeRequest represents the request body for purpose analysis
type AnalyzePurposeRequest struct {
	Purpose string `json:"purpose" binding:"required"`
}

// GetLists returns all lists owned by the authenticated user
// GET /api/lists
func (h *ListHandler) GetLists(c *gin.Context) {
	userID := c.GetString("userID")

	lists, err := h.listUsecase.GetUserLists(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lists"})
		return
	}

	c.JSON(http.StatusOK, lists)
}

// CreateList creates a new list
// POST /api/lists
func (h *ListHandler) CreateList(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	list, err := h.listUsecase.CreateList(userID, req.Name, req.Description, req.Rules)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create list"})
		return
	}

	c.JSON(http.StatusCreated, list)
}

// UpdateList updates a list's name, description or rules
// PATCH /api/lists/:id
func (h *ListHandler) UpdateList(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	var updates usecase.ListUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.listUsecase.UpdateList(userID, listID, updates)
	if err != nil {
		if err.Error() == "list not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteList deletes a list and its items
// DELETE /api/lists/:id
func (h *ListHandler) DeleteList(c *gin.Context) {
	userID := c.GetString("userID")
	listID := c.Param("id")

	if err := h.listUsecase.DeleteList(userID, listID); err != nil {
		if err.Error() == "list not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "List not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AnalyzePurpose derives rules and a description for a new list from its
// free-text purpose. Always returns a usable result.
// POST /api/lists/analyze-purpose
func (h *ListHandler) AnalyzePurpose(c *gin.Context) {
	var req AnalyzePurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Purpose is required"})
		return
	}

	analysis := h.listUsecase.AnalyzePurpose(c.Request.Context(), req.Purpose)
	c.JSON(http.StatusOK, analysis)
}
