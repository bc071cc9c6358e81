package controllers

import (
	"errors"
	"strconv"

	"orderdesk/pkg/resp"
	"orderdesk/services"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

type CartNoteRequest struct {
	Note string `json:"note"`
}

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

func cartItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("menuItemId"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid menu item id")
		return 0, false
	}
	return uint(id), true
}

// GET /cart
func (ct *CartController) Get(c *gin.Context) {
	cart, total, err := ct.Cart.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "total": total})
}

// POST /cart/items adds one unit of the item.
func (ct *CartController) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ct.Cart.Add(utils.CurrentUserID(c), req.MenuItemID)
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		resp.NotFound(c, err.Error())
		return
	case errors.Is(err, services.ErrTenantSuspended), errors.Is(err, services.ErrCartConflict):
		resp.BadRequest(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"added": req.MenuItemID})
}

// DELETE /cart/items/:menuItemId removes one unit of the item.
func (ct *CartController) RemoveItem(c *gin.Context) {
	id, ok := cartItemID(c)
	if !ok {
		return
	}
	if err := ct.Cart.Remove(utils.CurrentUserID(c), id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}

// PATCH /cart/items/:menuItemId/note
func (ct *CartController) SetNote(c *gin.Context) {
	id, ok := cartItemID(c)
	if !ok {
		return
	}
	var req CartNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ct.Cart.SetNote(utils.CurrentUserID(c), id, req.Note)
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, "no such line in cart")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"noted": id})
}

// DELETE /cart
func (ct *CartController) Clear(c *gin.Context) {
	if err := ct.Cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
