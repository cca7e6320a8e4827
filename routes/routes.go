package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/controllers"
	"github.com/asliq/akilli-garson/middlewares"
	"github.com/asliq/akilli-garson/services"
	"github.com/asliq/akilli-garson/ws"
)

// Deps carries everything the route tree needs.
type Deps struct {
	JWTSecret string

	Auth          *services.AuthService
	Tables        *services.TableService
	Orders        *services.OrderService
	Kitchen       *services.KitchenService
	Menu          *services.MenuService
	Reservations  *services.ReservationService
	Discounts     *services.DiscountService
	Payments      *services.PaymentService
	Notifications *services.NotificationService
	Inventory     *services.InventoryService
	Settings      *services.SettingsService

	Hub *ws.EventHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	tableCtrl := controllers.NewTableController(d.Tables)
	orderCtrl := controllers.NewOrderController(d.Orders)
	kitchenCtrl := controllers.NewKitchenController(d.Kitchen)
	menuCtrl := controllers.NewMenuController(d.Menu)
	resvCtrl := controllers.NewReservationController(d.Reservations)
	discCtrl := controllers.NewDiscountController(d.Discounts)
	payCtrl := controllers.NewPaymentController(d.Payments)
	notifCtrl := controllers.NewNotificationController(d.Notifications)
	invCtrl := controllers.NewInventoryController(d.Inventory)
	setCtrl := controllers.NewSettingsController(d.Settings)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(d.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.GET("/waiters", authCtrl.ListWaiters)
	}

	// Floor (any logged-in staff)
	staff := r.Group("/", middlewares.AuthMiddleware(d.JWTSecret))
	{
		staff.GET("/tables", tableCtrl.List)
		staff.GET("/tables/:id", tableCtrl.Get)
		staff.PATCH("/tables/:id/status", tableCtrl.UpdateStatus)

		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Get)
		staff.POST("/orders", orderCtrl.Create)
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		staff.POST("/orders/:id/cancel", orderCtrl.Cancel)
		staff.POST("/orders/:id/items", orderCtrl.AddItem)
		staff.DELETE("/orders/:id/items/:menuItemId", orderCtrl.RemoveItem)

		staff.GET("/menu", menuCtrl.List)
		staff.GET("/menu/categories", menuCtrl.Categories)

		staff.GET("/reservations", resvCtrl.List)
		staff.POST("/reservations", resvCtrl.Create)
		staff.PATCH("/reservations/:id/status", resvCtrl.UpdateStatus)

		staff.GET("/discounts/code/:code", discCtrl.GetByCode)

		staff.GET("/payments", payCtrl.List)
		staff.POST("/payments", payCtrl.Process)

		staff.GET("/notifications", notifCtrl.List)
		staff.GET("/notifications/unread-count", notifCtrl.UnreadCount)
		staff.POST("/notifications/:id/read", notifCtrl.MarkRead)
		staff.POST("/notifications/read-all", notifCtrl.MarkAllRead)
		staff.DELETE("/notifications/:id", notifCtrl.Delete)

		staff.GET("/settings", setCtrl.Get)
	}

	// Kitchen display (kitchen/manager)
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware(d.JWTSecret, "kitchen", "manager"))
	{
		kitchen.GET("/tickets", kitchenCtrl.Tickets)
		kitchen.POST("/tickets/:id/items/:menuItemId/start", kitchenCtrl.StartItem)
		kitchen.POST("/tickets/:id/items/:menuItemId/ready", kitchenCtrl.ReadyItem)
		kitchen.POST("/tickets/:id/ready", kitchenCtrl.MarkAllReady)
		kitchen.PATCH("/tickets/:id/priority", kitchenCtrl.SetPriority)
		kitchen.GET("/stats", kitchenCtrl.Stats)
	}

	// Management (manager only)
	manager := r.Group("/", middlewares.AuthMiddleware(d.JWTSecret, "manager"))
	{
		manager.POST("/tables", tableCtrl.Create)
		manager.DELETE("/tables/:id", tableCtrl.Delete)
		manager.DELETE("/orders/:id", orderCtrl.Delete)

		manager.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
		manager.PATCH("/menu/:id/price", menuCtrl.UpdatePrice)

		manager.DELETE("/reservations/:id", resvCtrl.Delete)

		manager.GET("/discounts", discCtrl.List)
		manager.POST("/discounts", discCtrl.Create)
		manager.PATCH("/discounts/:id", discCtrl.Update)
		manager.DELETE("/discounts/:id", discCtrl.Delete)

		manager.POST("/payments/:id/refund", payCtrl.Refund)

		manager.GET("/inventory", invCtrl.List)
		manager.POST("/inventory/:id/adjust", invCtrl.Adjust)

		manager.PATCH("/settings", setCtrl.Update)
	}

	// Live event feed
	r.GET("/ws/events", middlewares.WSAuthMiddleware(d.JWTSecret), d.Hub.HandleWebSocket)
}
