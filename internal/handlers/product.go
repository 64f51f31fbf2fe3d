// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/productfindr/backend/internal/models"
	"github.com/productfindr/backend/internal/services"
	"github.com/productfindr/backend/internal/utils"
)

type ProductHandler struct {
	showcase *services.ShowcaseService
}

type RegisterProductRequest struct {
	Details            models.ProductDetails      `json:"details"`
	BetaTestingEnabled bool                       `json:"beta_testing_enabled"`
	BetaTesting        *models.BetaTestingDetails `json:"beta_testing,omitempty"`
}

type UpdateBetaLinkRequest struct {
	BetaTestingLink string `json:"beta_testing_link"`
}

func NewProductHandler(showcase *services.ShowcaseService) *ProductHandler {
	return &ProductHandler{showcase: showcase}
}

func parseProductID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return 0, false
	}
	return id, true
}

// GET /products
func (h *ProductHandler) GetListedProducts(c *gin.Context) {
	products := h.showcase.ListedProducts()

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// POST /products
func (h *ProductHandler) RegisterProduct(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	id, err := h.showcase.RegisterProduct(actor, req.Details, req.BetaTestingEnabled, req.BetaTesting)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id": id,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	view, err := h.showcase.GetProduct(id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.showcase.DeleteProduct(id, actor); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}

// POST /products/:id/upvote
func (h *ProductHandler) UpvoteProduct(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	count, err := h.showcase.UpvoteProduct(id, actor)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"upvotes": count,
	})
}

// PUT /products/:id/beta-link
func (h *ProductHandler) UpdateBetaTestingLink(c *gin.Context) {
	actor, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req UpdateBetaLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.showcase.UpdateBetaTestingLink(id, actor, req.BetaTestingLink); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"beta_testing_link": req.BetaTestingLink,
	})
}

// GET /products/:id/listable
func (h *ProductHandler) CanBeListed(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	listable, err := h.showcase.CanBeListed(id)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"can_be_listed": listable,
	})
}
