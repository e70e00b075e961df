package main

import (
	"os"

	"github.com/tu-usuario/renova-gestion/internal/application/auth"
	"github.com/tu-usuario/renova-gestion/internal/application/usecase"
	"github.com/tu-usuario/renova-gestion/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/renova-gestion/internal/interfaces/console"
	"github.com/tu-usuario/renova-gestion/pkg/config"
	"github.com/tu-usuario/renova-gestion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// En consola el logger solo informa de errores para no ensuciar los menús.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "error"})

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

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{})
	shell := console.New(console.Deps{
		ClientUC:    usecase.NewClientUseCase(clientRepo),
		InventoryUC: usecase.NewInventoryUseCase(inventoryRepo),
		OrderUC:     usecase.NewOrderUseCase(orderRepo),
		AuthUC:      authUC,
	}, os.Stdin, os.Stdout)

	// La puerta de login solo aplica si ya hay usuarios registrados (el
	// registro se hace vía API o sembrando usuarios.json).
	hasUsers, err := authUC.HasUsers()
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuarios")
	}
	if hasUsers && !shell.Login() {
		os.Exit(1)
	}
	shell.Run()
}
