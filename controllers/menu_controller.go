package controllers

import (
	"errors"
	"strconv"

	"orderdesk/pkg/resp"
	"orderdesk/services"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
)

// MenuController is the admin-facing catalog management surface. The acting
// restaurant always comes from the session claims.
type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /partner/menu
func (m *MenuController) List(c *gin.Context) {
	items, err := m.Menu.List(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /partner/menu
func (m *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := m.Menu.Create(utils.CurrentRestaurantID(c), &in)
	if errors.Is(err, services.ErrNoTenant) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /partner/menu/:id
func (m *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := m.Menu.Update(utils.CurrentRestaurantID(c), id, &in)
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /partner/menu/:id
func (m *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := m.Menu.Delete(utils.CurrentRestaurantID(c), id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /partner/menu/:id/special
func (m *MenuController) ToggleSpecial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := m.Menu.ToggleSpecial(utils.CurrentRestaurantID(c), id)
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}
