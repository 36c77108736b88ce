package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/olivosverdes/fruteria-api/internal/application/auth"
	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/application/catalog"
	"github.com/olivosverdes/fruteria-api/internal/application/checkout"
	"github.com/olivosverdes/fruteria-api/internal/domain/repository"
	"github.com/olivosverdes/fruteria-api/internal/infrastructure/memory"
	"github.com/olivosverdes/fruteria-api/internal/infrastructure/postgres"
	infraredis "github.com/olivosverdes/fruteria-api/internal/infrastructure/redis"
	httpRouter "github.com/olivosverdes/fruteria-api/internal/interfaces/http"
	"github.com/olivosverdes/fruteria-api/pkg/config"
	"github.com/olivosverdes/fruteria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Almacén de carritos: Redis en producción, memoria si no hay REDIS_ADDR.
	var cartStore repository.CartStore
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		cartStore = infraredis.NewCartStore(client, time.Duration(cfg.Shop.CartTTLHours)*time.Hour)
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: usando almacén de carritos en memoria")
		cartStore = memory.NewCartStore()
	}

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo, branchRepo, time.Now)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo)
	offerUC := catalog.NewOfferUseCase(offerRepo)
	branchUC := catalog.NewBranchUseCase(branchRepo)
	cartUC := cartuc.NewUseCase(cartStore, productRepo, cfg.Shop.ShippingFee, time.Now)
	checkoutUC := checkout.NewUseCase(cartUC, productRepo, profileRepo, branchRepo, orderRepo, txRunner, time.Now)
	authUC := auth.NewUseCase(userRepo, profileRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frutería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		OfferUC:    offerUC,
		BranchUC:   branchUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
