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
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/kosten"
	"github.com/RIBO420/offerte-builder-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/RIBO420/offerte-builder-sub001/internal/interfaces/http"
	"github.com/RIBO420/offerte-builder-sub001/pkg/config"
	"github.com/RIBO420/offerte-builder-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("configuratie laden: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("applicatie starten")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("verbinding met PostgreSQL")
	}
	defer pool.Close()

	projectRepo := postgres.NewProjectRepository(pool)
	urenRepo := postgres.NewUrenregistratieRepository(pool)
	inzetRepo := postgres.NewMachineInzetRepository(pool)
	mutatieRepo := postgres.NewVoorraadMutatieRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	medewerkerRepo := postgres.NewMedewerkerRepository(pool)
	voorcalculatieRepo := postgres.NewVoorcalculatieRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	standaardTarief, err := decimal.NewFromString(cfg.Kosten.StandaardUurtarief)
	if err != nil {
		log.Warn().
			Str("waarde", cfg.Kosten.StandaardUurtarief).
			Msg("ongeldig standaard uurtarief, terugvallen op 45")
		standaardTarief = kosten.StandaardUurtarief
	}

	gate := kosten.NewProjectGate(projectRepo)
	arbeidAdapter := kosten.NewArbeidAdapter(urenRepo, medewerkerRepo, standaardTarief)
	machineAdapter := kosten.NewMachineAdapter(inzetRepo, machineRepo)
	materiaalAdapter := kosten.NewMateriaalAdapter(mutatieRepo, productRepo)
	overzichtUC := kosten.NewOverzichtUseCase(gate, arbeidAdapter, machineAdapter, materiaalAdapter)
	resolver := kosten.NewVoorcalculatieResolver(voorcalculatieRepo)
	budgetUC := kosten.NewBudgetUseCase(gate, resolver, overzichtUC)
	projectOverzichtUC := kosten.NewProjectOverzichtUseCase(gate, overzichtUC, budgetUC)
	mutatieUC := kosten.NewMutatieUseCase(
		gate, txRunner, kosten.NewVoorraadCoordinator(),
		urenRepo, inzetRepo, mutatieRepo, machineRepo, productRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokaal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Offerte Builder API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Overzicht:        overzichtUC,
		Budget:           budgetUC,
		ProjectOverzicht: projectOverzichtUC,
		Mutaties:         mutatieUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP-server gestopt")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("stopsignaal ontvangen, server afsluiten...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("afsluiten van de server")
	}

	log.Info().Msg("applicatie gestopt")
}
