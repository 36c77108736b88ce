package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/olivosverdes/fruteria-api/internal/application/auth"
	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/application/catalog"
	"github.com/olivosverdes/fruteria-api/internal/application/checkout"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	CategoryUC *catalog.CategoryUseCase
	OfferUC    *catalog.OfferUseCase
	BranchUC   *catalog.BranchUseCase
	CartUC     *cartuc.UseCase
	CheckoutUC *checkout.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/featured", productHandler.ListFeatured)
	products.Get("/offers", productHandler.ListOnOffer)
	products.Get("/:id", productHandler.GetByID)

	catalogHandler := NewCatalogHandler(deps.CategoryUC, deps.OfferUC, deps.BranchUC)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/offers", catalogHandler.ListOffers)
	api.Get("/branches", catalogHandler.ListBranches)

	// Carrito (público: la sesión anónima también compra)
	cartHandler := NewCartHandler(deps.CartUC)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.View)
	cart.Post("/add/:productId", cartHandler.Add)
	cart.Post("/increase/:productId", cartHandler.Increase)
	cart.Post("/decrease/:productId", cartHandler.Decrease)
	cart.Post("/remove/:productId", cartHandler.Remove)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/profile", authHandler.GetProfile)
	protected.Put("/profile", authHandler.UpdateProfile)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Get("/checkout", checkoutHandler.Review)
	protected.Post("/checkout", checkoutHandler.Confirm)
	protected.Get("/orders", checkoutHandler.ListOrders)
	protected.Get("/orders/:id", checkoutHandler.GetOrder)

	// Mantenimiento del catálogo (solo admin)
	admin := protected.Group("/admin", RequireAdmin())
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)
	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)
	admin.Post("/offers", catalogHandler.CreateOffer)
	admin.Put("/offers/:id", catalogHandler.UpdateOffer)
	admin.Delete("/offers/:id", catalogHandler.DeleteOffer)
	admin.Post("/branches", catalogHandler.CreateBranch)
	admin.Delete("/branches/:id", catalogHandler.DeleteBranch)
}
