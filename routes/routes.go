package routes

import (
	"orderweb/configs"
	"orderweb/controllers"
	"orderweb/gateway"
	"orderweb/middlewares"
	"orderweb/notifier"
	"orderweb/repository"
	"orderweb/services"
	"orderweb/utils"
	"orderweb/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	voucherRepo := repository.NewVoucherRepository(db)
	zoneRepo := repository.NewZoneRepository(db)
	giftCardRepo := repository.NewGiftCardRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Shared infrastructure
	hub := ws.NewOrderHub()
	go hub.Run()
	dispatcher := gateway.NewDispatcher(cfg.GatewayTimeout)
	mailer := notifier.NewMailer(cfg)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	voucherSvc := services.NewVoucherService(voucherRepo)
	deliverySvc := services.NewDeliveryService(zoneRepo)
	settingsSvc := services.NewSettingsService(settingsRepo)
	giftCardSvc := services.NewGiftCardService(db, giftCardRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tenantRepo, hub)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)
	tenantSvc := services.NewTenantService(db, tenantRepo, userRepo)
	checkoutSvc := services.NewCheckoutService(
		db, orderRepo, cartRepo, settingsRepo,
		voucherSvc, deliverySvc, giftCardSvc, dispatcher, mailer, hub,
	)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	voucherCtrl := controllers.NewVoucherController(voucherSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	giftCardCtrl := controllers.NewGiftCardController(giftCardSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)
	tenantCtrl := controllers.NewTenantController(tenantSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Storefront (public, tenant-scoped)
	store := r.Group("/t/:tenant", middlewares.Tenant(db))
	{
		store.GET("/menu", menuCtrl.List)
		store.GET("/branding", settingsCtrl.PublicBranding)
		store.GET("/status", settingsCtrl.PublicStatus)
		store.POST("/delivery/quote", deliveryCtrl.Quote)
		store.POST("/vouchers/check", voucherCtrl.Check)
	}

	// Storefront (logged-in customer)
	shop := r.Group("/t/:tenant", middlewares.Tenant(db), middlewares.AuthMiddleware())
	{
		shop.GET("/cart", cartCtrl.Get)
		shop.POST("/cart/items", cartCtrl.Add)
		shop.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		shop.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		shop.DELETE("/cart", cartCtrl.Clear)

		shop.POST("/checkout", checkoutCtrl.PlaceOrder)
		shop.GET("/orders", orderCtrl.ListMine)
		shop.GET("/orders/:id", orderCtrl.DetailMine)

		shop.POST("/giftcards/check", giftCardCtrl.Check)
	}

	// Partner dashboard (owner/admin), tenant via X-Tenant header
	partner := r.Group("/partner",
		middlewares.AuthMiddleware("owner", "admin"),
		middlewares.Tenant(db),
		middlewares.TenantOwner(),
	)
	{
		partner.POST("/menu/categories", menuCtrl.CreateCategory)
		partner.POST("/menu/items", menuCtrl.CreateItem)
		partner.PATCH("/menu/items/:id", menuCtrl.UpdateItem)
		partner.DELETE("/menu/items/:id", menuCtrl.DeleteItem)
		partner.POST("/menu/addons", menuCtrl.CreateAddon)

		partner.GET("/orders", orderCtrl.ListForTenant)
		partner.GET("/orders/:id", orderCtrl.DetailForTenant)
		partner.PATCH("/orders/:id/status", orderCtrl.SetStatus)

		partner.GET("/zones", deliveryCtrl.ListZones)
		partner.POST("/zones", deliveryCtrl.CreateZone)
		partner.PUT("/zones/:id", deliveryCtrl.UpdateZone)
		partner.DELETE("/zones/:id", deliveryCtrl.DeleteZone)

		partner.GET("/vouchers", voucherCtrl.List)
		partner.POST("/vouchers", voucherCtrl.Create)
		partner.PATCH("/vouchers/:id", voucherCtrl.SetActive)
		partner.DELETE("/vouchers/:id", voucherCtrl.Delete)

		partner.GET("/giftcards", giftCardCtrl.List)
		partner.POST("/giftcards", giftCardCtrl.Issue)
		partner.DELETE("/giftcards/:id", giftCardCtrl.Deactivate)

		partner.GET("/settings/email", settingsCtrl.GetEmail)
		partner.PUT("/settings/email", settingsCtrl.UpdateEmail)
		partner.PUT("/settings/branding", settingsCtrl.UpdateBranding)
		partner.GET("/settings/gateways", settingsCtrl.GetGateway)
		partner.PUT("/settings/gateways", settingsCtrl.UpdateGateway)
		partner.GET("/settings/hours", settingsCtrl.GetHours)
		partner.PUT("/settings/hours", settingsCtrl.ReplaceHours)

		partner.GET("/analytics", analyticsCtrl.Dashboard)

		// live order feed for the dashboard
		partner.GET("/ws/orders", func(c *gin.Context) {
			hub.Serve(c, utils.CurrentTenant(c).ID)
		})
	}

	// Platform admin
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.POST("/tenants", tenantCtrl.Create)
		admin.GET("/tenants", tenantCtrl.List)
		admin.PATCH("/tenants/:id", tenantCtrl.Update)
	}
}
