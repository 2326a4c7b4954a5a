package routes

import (
	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/gavvrail/MackDihh-sub000/controllers"
	"github.com/gavvrail/MackDihh-sub000/entity"
	"github.com/gavvrail/MackDihh-sub000/middlewares"
	"github.com/gavvrail/MackDihh-sub000/pkg/mail"
	"github.com/gavvrail/MackDihh-sub000/repository"
	"github.com/gavvrail/MackDihh-sub000/services"
	"github.com/gavvrail/MackDihh-sub000/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the engine with the global middlewares and every route.
// The caller runs and stops the returned hub.
func NewRouter(db *gorm.DB, cfg *configs.Config, log *zap.Logger) (*gin.Engine, *ws.ChatHub) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middlewares.Recovery(log), middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	hub := RegisterRoutes(r, db, cfg, log)
	return r, hub
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger) *ws.ChatHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	dealRepo := repository.NewDealRepository(db)
	rewardRepo := repository.NewRewardRepository(db)
	pointsRepo := repository.NewPointsRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	chatRepo := repository.NewChatRepository(db)
	wishRepo := repository.NewWishListRepository(db)

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(db, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	pointsSvc := services.NewPointsService(db, userRepo, pointsRepo)
	dealSvc := services.NewDealService(db, dealRepo)
	rewardSvc := services.NewRewardService(db, rewardRepo, menuRepo, pointsSvc)
	checkoutSvc := services.NewCheckoutService(db, cartSvc, dealSvc, rewardSvc, orderRepo, dealRepo, userRepo,
		services.Pricing{
			TaxRate:               cfg.TaxRate,
			DeliveryFee:           cfg.DeliveryFee,
			FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
		},
		mail.NewLogMailer(cfg.MailFrom, log),
		log,
	)
	orderSvc := services.NewOrderService(db, orderRepo, dealRepo, pointsSvc, cfg.PointsPerRinggit, log)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, menuRepo)
	chatSvc := services.NewChatService(db, chatRepo)
	wishSvc := services.NewWishListService(db, wishRepo, menuRepo, cartSvc)
	userSvc := services.NewUserService(db, userRepo)

	hub := ws.NewChatHub(chatSvc, log)
	chatSvc.SetNotifier(hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	pointsCtrl := controllers.NewPointsController(pointsSvc)
	rewardCtrl := controllers.NewRewardController(rewardSvc)
	dealCtrl := controllers.NewDealController(dealSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	chatCtrl := controllers.NewChatController(chatSvc)
	wishCtrl := controllers.NewWishListController(wishSvc)
	adminCtrl := controllers.NewAdminController(menuSvc, orderSvc, dealSvc, rewardSvc, reviewSvc, userSvc, pointsSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalogue
	m := r.Group("/menu")
	{
		m.GET("/categories", menuCtrl.Categories)
		m.GET("/items", menuCtrl.Items)
		m.GET("/items/:id", menuCtrl.Item)
		m.GET("/items/:id/reviews", menuCtrl.ItemReviews)
	}
	r.GET("/deals", dealCtrl.ListActive)
	r.GET("/rewards", rewardCtrl.List)

	// Customer
	u := r.Group("/", auth)
	{
		u.GET("/cart", cartCtrl.Get)
		u.GET("/cart/count", cartCtrl.Count)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/:id", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout/quote", checkoutCtrl.Quote)
		u.POST("/checkout", checkoutCtrl.PlaceOrder)

		u.GET("/orders/history", orderCtrl.History)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/orders/:id/track", orderCtrl.Track)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)

		u.GET("/points", pointsCtrl.Balance)
		u.GET("/points/history", pointsCtrl.History)

		u.POST("/rewards/:id/redeem", rewardCtrl.Redeem)
		u.GET("/rewards/mine", rewardCtrl.Mine)

		u.POST("/reviews", reviewCtrl.Create)
		u.GET("/reviews/mine", reviewCtrl.Mine)
		u.PATCH("/reviews/:id", reviewCtrl.Update)
		u.DELETE("/reviews/:id", reviewCtrl.Delete)
		u.POST("/reviews/:id/vote", reviewCtrl.Vote)

		u.GET("/chat/sessions", chatCtrl.ListSessions)
		u.POST("/chat/sessions", chatCtrl.Start)
		u.GET("/chat/sessions/:id/messages", chatCtrl.Messages)
		u.POST("/chat/sessions/:id/messages", chatCtrl.Send)
		u.POST("/chat/sessions/:id/close", chatCtrl.Close)

		u.GET("/wishlist", wishCtrl.List)
		u.POST("/wishlist", wishCtrl.Add)
		u.DELETE("/wishlist/:menuItemId", wishCtrl.Remove)
		u.POST("/wishlist/:menuItemId/move-to-cart", wishCtrl.MoveToCart)
	}

	// Websocket push for chat
	r.GET("/ws/chat/:sessionId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Admin (admin only)
	ad := r.Group("/admin", adminOnly)
	{
		ad.GET("/dashboard", adminCtrl.Dashboard)

		ad.POST("/categories", adminCtrl.CreateCategory)
		ad.PUT("/categories/:id", adminCtrl.UpdateCategory)
		ad.DELETE("/categories/:id", adminCtrl.DeleteCategory)

		ad.POST("/menu", adminCtrl.CreateItem)
		ad.PUT("/menu/:id", adminCtrl.UpdateItem)
		ad.PATCH("/menu/:id/availability", adminCtrl.SetAvailability)
		ad.DELETE("/menu/:id", adminCtrl.DeleteItem)

		ad.GET("/orders", adminCtrl.ListOrders)
		ad.GET("/orders/:id", adminCtrl.OrderDetail)
		ad.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		ad.POST("/orders/:id/cancel", adminCtrl.CancelOrder)

		ad.GET("/deals", adminCtrl.ListDeals)
		ad.POST("/deals", adminCtrl.CreateDeal)
		ad.PUT("/deals/:id", adminCtrl.UpdateDeal)
		ad.DELETE("/deals/:id", adminCtrl.DeleteDeal)

		ad.GET("/rewards", adminCtrl.ListRewards)
		ad.POST("/rewards", adminCtrl.CreateReward)
		ad.PUT("/rewards/:id", adminCtrl.UpdateReward)
		ad.DELETE("/rewards/:id", adminCtrl.DeleteReward)

		ad.GET("/reviews", adminCtrl.ListReviews)
		ad.DELETE("/reviews/:id", adminCtrl.DeleteReview)
		ad.PUT("/reviews/:id/response", adminCtrl.RespondReview)
		ad.DELETE("/reviews/:id/response", adminCtrl.DeleteReviewResponse)

		ad.GET("/chat/sessions", chatCtrl.Inbox)
		ad.GET("/chat/sessions/:id/messages", chatCtrl.Messages)
		ad.POST("/chat/sessions/:id/messages", chatCtrl.Send)
		ad.POST("/chat/sessions/:id/assign", chatCtrl.Assign)
		ad.POST("/chat/sessions/:id/close", chatCtrl.Close)

		ad.GET("/users", adminCtrl.ListUsers)
		ad.GET("/users/:id", adminCtrl.GetUser)
		ad.POST("/users/:id/points", adminCtrl.AdjustPoints)
	}

	return hub
}
