// internal/handlers/engagement.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/productfindr/backend/internal/services"
	"github.com/productfindr/backend/internal/utils"
)

// EngagementHandler serves the comment and review ledgers through the
// showcase facade.
type EngagementHandler struct {
	showcase *services.ShowcaseService
}

type CommentRequest struct {
	Content string `json:"content"`
}

type ReviewRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

func NewEngagementHandler(showcase *services.ShowcaseService) *EngagementHandler {
	return &EngagementHandler{showcase: showcase}
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		utils.BadRequestResponse(c, "Invalid index", nil)
		return 0, false
	}
	return index, true
}

// POST /products/:id/comments
func (h *EngagementHandler) CommentOnProduct(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	index, err := h.showcase.CommentOnProduct(id, actor, req.Content)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"index": index,
	})
}

// GET /products/:id/comments
func (h *EngagementHandler) GetComments(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	comments, err := h.showcase.GetComments(id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"comments": comments,
		"count":    len(comments),
	})
}

// GET /products/:id/comments/:index
func (h *EngagementHandler) GetComment(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	comment, err := h.showcase.GetComment(id, index)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"comment": comment,
	})
}

// POST /products/:id/reviews and PUT /products/:id/reviews
func (h *EngagementHandler) AddReview(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	index, err := h.showcase.AddReview(actor, id, req.Content, req.Rating)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"index": index,
	})
}

// GET /products/:id/reviews
func (h *EngagementHandler) GetReviews(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	reviews, err := h.showcase.GetReviews(id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// GET /products/:id/reviews/:index
func (h *EngagementHandler) GetReview(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	review, err := h.showcase.GetReview(id, index)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"review": review,
	})
}

// GET /products/:id/reviews/:index/reviewer
func (h *EngagementHandler) GetReviewer(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	reviewer, err := h.showcase.GetReviewer(id, index)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviewer": reviewer,
	})
}
