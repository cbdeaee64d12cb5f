package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/example/jungleyourself/internal/cart"
	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/config"
	"github.com/example/jungleyourself/internal/handlers"
	"github.com/example/jungleyourself/internal/recommend"
	"github.com/example/jungleyourself/internal/search"
	"github.com/example/jungleyourself/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, cat *catalog.Store, db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChatID)
	analytics := services.NewAnalytics(log)

	searchEngine := search.NewEngine(cat)
	recommendEngine := recommend.NewEngine(cat)

	cartStore, err := cart.NewStore(cat, db)
	if err != nil {
		return err
	}
	orderService := services.NewOrderService(cat, cartStore, telegramService, analytics, cfg.FreeShippingThreshold)

	productHandler := handlers.NewProductHandler(cat, recommendEngine, analytics)
	searchHandler := handlers.NewSearchHandler(searchEngine, analytics)
	wizardHandler := handlers.NewWizardHandler(recommendEngine, analytics)
	cartHandler := handlers.NewCartHandler(cat, cartStore, orderService, analytics)
	guideHandler := handlers.NewGuideHandler(cat, analytics)
	calculatorHandler := handlers.NewCalculatorHandler(cat)

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id/related", productHandler.RelatedProducts)
	products.Get("/:slug", productHandler.GetProduct)

	// Search
	api.Get("/search", searchHandler.Search)
	api.Get("/search/suggestions", searchHandler.Suggestions)

	// Kit finder
	wizard := api.Group("/kit-finder")
	wizard.Post("/start", wizardHandler.Start)
	wizard.Post("/recommend", wizardHandler.Recommend)

	// Cart and checkout
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.GetCart)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:id", cartHandler.UpdateItem)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)
	cartGroup.Delete("/", cartHandler.ClearCart)
	cartGroup.Get("/shipping", cartHandler.GetShipping)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	// Guides and support
	guides := api.Group("/guides")
	guides.Get("/", guideHandler.ListGuides)
	guides.Get("/:slug", guideHandler.GetGuide)
	api.Get("/faqs", guideHandler.ListFAQs)

	// Calculator
	calc := api.Group("/calculator")
	calc.Get("/systems", calculatorHandler.ListSystems)
	calc.Post("/estimate", calculatorHandler.Estimate)

	return nil
}
