package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"orderdesk/pkg/resp"
	"orderdesk/services"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Username     string `json:"username" binding:"required,min=3"`
	Password     string `json:"password" binding:"required,min=6"`
}

// AdminController is the superadmin provisioning panel.
type AdminController struct {
	Auth      *services.AuthService
	PublicURL string
}

func NewAdminController(auth *services.AuthService, publicURL string) *AdminController {
	return &AdminController{Auth: auth, PublicURL: publicURL}
}

// storefrontLink keeps the original shareable-link format; copying it to
// the clipboard is the client's job.
func (a *AdminController) storefrontLink(restaurantID uint) string {
	return fmt.Sprintf("%s/#restaurant=%d", a.PublicURL, restaurantID)
}

// GET /admin/restaurants
func (a *AdminController) List(c *gin.Context) {
	admins, err := a.Auth.ListAdmins()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]gin.H, 0, len(admins))
	for _, ad := range admins {
		out = append(out, gin.H{
			"admin": ad,
			"link":  a.storefrontLink(ad.ID),
		})
	}
	resp.OK(c, out)
}

// POST /admin/restaurants provisions a new tenant and returns its
// shareable link.
func (a *AdminController) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	admin, err := a.Auth.CreateAdmin(req.BusinessName, req.Username, req.Password)
	if errors.Is(err, services.ErrUsernameTaken) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"admin": admin,
		"link":  a.storefrontLink(admin.ID),
	})
}

// PATCH /admin/restaurants/:id/status suspends or reactivates a tenant.
func (a *AdminController) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}

	admin, err := a.Auth.ToggleAdminStatus(uint(id))
	if errors.Is(err, services.ErrNotAdmin) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.NotFound(c, "admin not found")
		return
	}

	resp.OK(c, admin)
}
