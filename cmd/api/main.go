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
	"github.com/redis/go-redis/v9"

	"github.com/jortega/almacen-api/internal/application/inventory"
	"github.com/jortega/almacen-api/internal/application/usecase"
	"github.com/jortega/almacen-api/internal/infrastructure/cache"
	"github.com/jortega/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jortega/almacen-api/internal/interfaces/http"
	"github.com/jortega/almacen-api/pkg/config"
	"github.com/jortega/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché opcional: sin REDIS_ADDR la aplicación sirve directo de la BD.
	var queryCache cache.Cache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisClient.Close()
		queryCache = cache.NewRedisCache(redisClient, 5*time.Minute)
	}

	productQueryRepo := postgres.NewProductQueryRepository(pool)
	productCmdRepo := postgres.NewProductCommandRepository(pool)
	categoryQueryRepo := postgres.NewCategoryQueryRepository(pool)
	categoryCmdRepo := postgres.NewCategoryCommandRepository(pool)
	movementQueryRepo := postgres.NewInventoryMovementQueryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productQueryRepo)
	productUC := usecase.NewProductUseCase(productQueryRepo, productCmdRepo,
		queryCache, time.Duration(cfg.Cache.ProductsTTL)*time.Second)
	categoryUC := usecase.NewCategoryUseCase(categoryQueryRepo, categoryCmdRepo,
		queryCache, time.Duration(cfg.Cache.CategoriesTTL)*time.Second)
	movementQueriesUC := usecase.NewMovementQueryUseCase(movementQueryRepo,
		queryCache, time.Duration(cfg.Cache.MovementsTTL)*time.Second)

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
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		MovementQueries:  movementQueriesUC,
		RegisterMovement: registerMovementUC,
		JWTSecret:        cfg.JWT.Secret,
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
