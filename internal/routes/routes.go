package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/vulcan/internal/config"
	"github.com/example/vulcan/internal/handlers"
	"github.com/example/vulcan/internal/middleware"
	"github.com/example/vulcan/internal/repository"
	"github.com/example/vulcan/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, cfg.AdminEmail)
	razorpay := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)
	dealService := services.NewDealService(
		repository.NewDealRepo(db),
		repository.NewProductRepo(db),
		repository.NewOrderRepo(db),
	)

	authHandler := handlers.NewAuthHandler(db, cfg)
	otpHandler := handlers.NewOTPHandler(db, cfg, mailer)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db)
	dealHandler := handlers.NewDealHandler(db, dealService)
	checkoutHandler := handlers.NewCheckoutHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg, dealService, mailer)
	cartHandler := handlers.NewCartHandler(db)
	leadHandler := handlers.NewLeadHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, razorpay, mailer)
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api")

	// Storefront: catalog
	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:id", catalogHandler.GetCategory)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)

	// Storefront: deals
	deals := api.Group("/deals")
	deals.Get("/active", dealHandler.ListActiveDeals)
	deals.Post("/validate", dealHandler.ValidateDeal)

	// Storefront: carts
	carts := api.Group("/carts")
	carts.Post("/", cartHandler.CreateCart)
	carts.Get("/:token", cartHandler.GetCart)
	carts.Post("/:token/items", cartHandler.AddItem)
	carts.Put("/:token/items/:itemId", cartHandler.UpdateItem)
	carts.Delete("/:token/items/:itemId", cartHandler.RemoveItem)
	carts.Delete("/:token", cartHandler.ClearCart)

	// Storefront: leads and OTP
	api.Post("/leads", leadHandler.CreateLead)
	api.Post("/otp/request", otpHandler.RequestOTP)
	api.Post("/otp/verify", otpHandler.VerifyOTP)

	// Checkout and orders
	api.Post("/checkout/session", checkoutHandler.CreateSession)
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Get("/orders/:id/invoice", orderHandler.GetInvoice)

	// Payments
	payments := api.Group("/payments")
	payments.Post("/checkout", paymentHandler.Checkout)
	payments.Post("/verify", paymentHandler.Verify)
	payments.Post("/webhook", middleware.RazorpayWebhookAuth(razorpay), paymentHandler.Webhook)

	// Admin
	api.Post("/admin/register", authHandler.Register)
	api.Post("/admin/login", authHandler.Login)

	admin := api.Group("/admin", middleware.AdminAuth(cfg))
	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Get("/orders/recent", adminHandler.RecentOrders)
	admin.Get("/orders", orderHandler.ListAllOrders)
	admin.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)
	admin.Get("/leads", leadHandler.ListLeads)

	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Put("/categories/:id", catalogHandler.UpdateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)

	admin.Post("/products", productHandler.CreateProduct)
	admin.Put("/products/:id", productHandler.UpdateProduct)
	admin.Delete("/products/:id", productHandler.DeleteProduct)

	admin.Get("/deals", dealHandler.ListDeals)
	admin.Get("/deals/:id", dealHandler.GetDeal)
	admin.Post("/deals", dealHandler.CreateDeal)
	admin.Put("/deals/:id", dealHandler.UpdateDeal)
	admin.Delete("/deals/:id", dealHandler.DeleteDeal)
}
