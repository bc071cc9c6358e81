package routes

import (
	"orderdesk/configs"
	"orderdesk/controllers"
	"orderdesk/entity"
	"orderdesk/middlewares"
	"orderdesk/repository"
	"orderdesk/services"
	"orderdesk/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	// Services
	tenantSvc := services.NewTenantService(userRepo)
	authSvc := services.NewAuthService(userRepo, tenantSvc, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, userRepo)
	cartSvc := services.NewCartService(cartRepo, menuRepo, userRepo, tenantSvc)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, userRepo)
	orderSvc.Feed = hub
	reportSvc := services.NewReportService(orderRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	frontCtrl := controllers.NewStorefrontController(tenantSvc, menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	adminCtrl := controllers.NewAdminController(authSvc, cfg.PublicURL)

	secret := cfg.JWTSecret

	// Public storefront
	r.GET("/storefront", frontCtrl.Show)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Customer self-service
	cust := r.Group("/", middlewares.AuthMiddleware(secret, entity.RoleCustomer))
	{
		cust.GET("/cart", cartCtrl.Get)
		cust.POST("/cart/items", cartCtrl.AddItem)
		cust.DELETE("/cart/items/:menuItemId", cartCtrl.RemoveItem)
		cust.PATCH("/cart/items/:menuItemId/note", cartCtrl.SetNote)
		cust.DELETE("/cart", cartCtrl.Clear)
		cust.POST("/orders/checkout", orderCtrl.Checkout)
	}

	// Order history (any signed-in user)
	profile := r.Group("/profile", middlewares.AuthMiddleware(secret))
	{
		profile.GET("/orders", orderCtrl.ListMine)
	}

	// Partner (restaurant admin). The superadmin owns no restaurant and has
	// no business on this surface.
	partner := r.Group("/partner", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		partner.GET("/menu", menuCtrl.List)
		partner.POST("/menu", menuCtrl.Create)
		partner.PATCH("/menu/:id", menuCtrl.Update)
		partner.DELETE("/menu/:id", menuCtrl.Delete)
		partner.PATCH("/menu/:id/special", menuCtrl.ToggleSpecial)

		partner.POST("/orders", orderCtrl.CreateOnBehalf)
		partner.GET("/orders", orderCtrl.ListForRestaurant)

		partner.GET("/report/daily", reportCtrl.Daily)
		partner.GET("/report/weekly", reportCtrl.Weekly)
		partner.GET("/report/customers", reportCtrl.Customers)
	}

	// Superadmin provisioning
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleSuperadmin))
	{
		admin.GET("/restaurants", adminCtrl.List)
		admin.POST("/restaurants", adminCtrl.Create)
		admin.PATCH("/restaurants/:id/status", adminCtrl.ToggleStatus)
	}

	// Live order feed for admin dashboards
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(secret), hub.HandleWebSocket)
}
