package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/kosten"
)

// RouterDeps dependencies voor de router.
type RouterDeps struct {
	Overzicht        *kosten.OverzichtUseCase
	Budget           *kosten.BudgetUseCase
	ProjectOverzicht *kosten.ProjectOverzichtUseCase
	Mutaties         *kosten.MutatieUseCase
	JWTSecret        string
}

// Router registreert de API-routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Beveiligde routes (Bearer Token vereist)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	handler := NewKostenHandler(deps.Overzicht, deps.Budget, deps.ProjectOverzicht, deps.Mutaties)

	projecten := protected.Group("/projecten")
	projecten.Get("/:id/kosten", handler.List)
	projecten.Get("/:id/kosten/totalen", handler.GetTotalen)
	projecten.Get("/:id/kosten/per-scope", handler.GetByScope)
	projecten.Get("/:id/kosten/dagelijks", handler.GetDagelijksOverzicht)
	projecten.Get("/:id/kosten/budget", handler.GetBudgetVergelijking)
	projecten.Get("/:id/overzicht", handler.GetProjectOverzicht)

	kostenGroup := protected.Group("/kosten")
	kostenGroup.Get("/:id", handler.GetByID)
	kostenGroup.Post("/", handler.Create)
	kostenGroup.Put("/:id", handler.Update)
	kostenGroup.Delete("/:id", handler.Remove)
}
