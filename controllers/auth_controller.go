package controllers

import (
	"errors"

	"orderdesk/pkg/resp"
	"orderdesk/services"
	"orderdesk/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3"`
	Password     string `json:"password" binding:"required,min=6"`
	WhatsApp     string `json:"whatsApp"`
	Role         string `json:"role" binding:"omitempty,oneof=customer admin"`
	RestaurantID uint   `json:"restaurantId"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	WhatsApp     *string `json:"whatsApp"`
	BusinessName *string `json:"businessName"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	Password     *string `json:"password" binding:"omitempty,min=6"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Register(req.RestaurantID, req.Username, req.Password, req.WhatsApp, req.Role)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		resp.Conflict(c, err.Error())
		return
	case errors.Is(err, services.ErrNoTenant), errors.Is(err, services.ErrTenantSuspended):
		resp.BadRequest(c, err.Error())
		return
	case err != nil:
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"token": token, "user": user})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Username, req.Password)
	if err != nil {
		// suspended-tenant rejections get the same generic message
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout. Sessions are stateless tokens, so there is nothing to
// clear server-side; the client discards the token.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.WhatsApp != nil {
		updates["whats_app"] = *req.WhatsApp
	}
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
