package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/renova-gestion/internal/application/auth"
	"github.com/tu-usuario/renova-gestion/internal/application/usecase"
	"github.com/tu-usuario/renova-gestion/internal/infrastructure/jsonstore"
	httpRouter "github.com/tu-usuario/renova-gestion/internal/interfaces/http"
	"github.com/tu-usuario/renova-gestion/pkg/config"
	"github.com/tu-usuario/renova-gestion/pkg/logger"
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
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	store, err := jsonstore.NewStore(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de datos")
	}

	clientRepo, err := jsonstore.NewClientRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar clientes")
	}
	inventoryRepo, err := jsonstore.NewInventoryRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar almacén")
	}
	orderRepo, err := jsonstore.NewServiceOrderRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar órdenes")
	}
	userRepo, err := jsonstore.NewUserRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar usuarios")
	}

	clientUC := usecase.NewClientUseCase(clientRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
