package controllers

import (
	"strconv"

	"orderdesk/entity"
	"orderdesk/pkg/resp"
	"orderdesk/services"

	"github.com/gin-gonic/gin"
)

// StorefrontController serves the public, pre-login view of one restaurant.
type StorefrontController struct {
	Tenants *services.TenantService
	Menu    *services.MenuService
}

func NewStorefrontController(tenants *services.TenantService, menu *services.MenuService) *StorefrontController {
	return &StorefrontController{Tenants: tenants, Menu: menu}
}

// GET /storefront?restaurantId= falls back to the first restaurant on
// record when no id is given, mirroring the shareable-link contract.
func (s *StorefrontController) Show(c *gin.Context) {
	requested, _ := strconv.ParseUint(c.Query("restaurantId"), 10, 64)

	admin, active, err := s.Tenants.Resolve(uint(requested))
	if err != nil {
		resp.OK(c, gin.H{
			"restaurantId": 0,
			"businessName": "Welcome",
			"isActive":     false,
			"menu":         []entity.MenuItem{},
		})
		return
	}

	name := "Welcome"
	if active && admin.BusinessName != "" {
		name = admin.BusinessName
	}

	menu := []entity.MenuItem{}
	if active {
		menu, err = s.Menu.List(admin.ID)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	resp.OK(c, gin.H{
		"restaurantId": admin.ID,
		"businessName": name,
		"isActive":     active,
		"menu":         menu,
	})
}
