package main

import (
	"bufio"
	"context"
	"os"

	"github.com/lockre/lockre-pos/internal/application/auth"
	"github.com/lockre/lockre-pos/internal/application/reports"
	"github.com/lockre/lockre-pos/internal/application/usecase"
	"github.com/lockre/lockre-pos/internal/cli"
	"github.com/lockre/lockre-pos/internal/infrastructure/sqlite"
	"github.com/lockre/lockre-pos/pkg/config"
	"github.com/lockre/lockre-pos/pkg/logger"
	"github.com/lockre/lockre-pos/pkg/money"
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
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := sqlite.Open(ctx, cfg.Store.Path, cfg.Store.SchemaVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()
	log.Info().Int("schema_version", store.Version()).Msg("almacén listo")

	userRepo := sqlite.NewUserRepository(store)
	productRepo := sqlite.NewProductRepository(store)
	saleRepo := sqlite.NewSaleRepository(store)
	customerRepo := sqlite.NewCustomerRepository(store)
	inventoryRepo := sqlite.NewInventoryRepository(store)
	settingsRepo := sqlite.NewSettingsRepository(store)

	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, productRepo)
	setupUC := usecase.NewSetupUseCase(userUC, settingsRepo)
	reportsUC := reports.NewReportsUseCase(saleRepo, productRepo, userRepo)

	// La sesión vive en el proceso: su dueño es el punto de entrada.
	sessions := auth.NewSessionRegistry()
	authUC := auth.NewAuthUseCase(userRepo, sessions)

	formatter := money.NewFormatter(cfg.Shop.Currency, cfg.Shop.Locale)
	ui := cli.New(
		authUC, setupUC, productUC, saleUC, userUC, customerUC, inventoryUC,
		reportsUC, formatter, bufio.NewReader(os.Stdin), os.Stdout,
	)
	if err := ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("interfaz de terminal")
	}
	log.Info().Msg("aplicación finalizada")
}
