package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
	"github.com/RIBO420/offerte-builder-sub001/internal/application/kosten"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
)

// KostenHandler verwerkt de HTTP-requests van de kostenkern (beveiligd).
type KostenHandler struct {
	overzicht        *kosten.OverzichtUseCase
	budget           *kosten.BudgetUseCase
	projectOverzicht *kosten.ProjectOverzichtUseCase
	mutaties         *kosten.MutatieUseCase
}

// NewKostenHandler bouwt de handler.
func NewKostenHandler(
	overzicht *kosten.OverzichtUseCase,
	budget *kosten.BudgetUseCase,
	projectOverzicht *kosten.ProjectOverzichtUseCase,
	mutaties *kosten.MutatieUseCase,
) *KostenHandler {
	return &KostenHandler{
		overzicht:        overzicht,
		budget:           budget,
		projectOverzicht: projectOverzicht,
		mutaties:         mutaties,
	}
}

// List godoc
// @Summary      Kostenregels van een project
// @Tags         kosten
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "Project-ID"
// @Param        type   query  string  false  "arbeid | machine | materiaal"
// @Param        start  query  string  false  "YYYY-MM-DD (inclusief)"
// @Param        eind   query  string  false  "YYYY-MM-DD (inclusief)"
// @Success      200  {array}   dto.KostenregelDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/projecten/{id}/kosten [get]
func (h *KostenHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	periode, err := parsePeriode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start en eind horen samen opgegeven te worden"})
	}
	list, err := h.overzicht.List(userID, c.Params("id"), c.Query("type"), periode)
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "kosten": list})
}

// GetByID godoc
// @Summary      Eén kostenregel via het bijbehorende brontype
// @Tags         kosten
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true  "Regel-ID"
// @Param        type  query  string  true  "arbeid | machine | materiaal"
// @Success      200  {object}  dto.KostenregelDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kosten/{id} [get]
func (h *KostenHandler) GetByID(c *fiber.Ctx) error {
	regel, err := h.overzicht.GetByID(GetUserID(c), c.Params("id"), c.Query("type"))
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(regel)
}

// GetTotalen levert de kosten per type plus eindtotaal en arbeidsuren.
func (h *KostenHandler) GetTotalen(c *fiber.Ctx) error {
	periode, err := parsePeriode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start en eind horen samen opgegeven te worden"})
	}
	totalen, err := h.overzicht.GetTotalen(GetUserID(c), c.Params("id"), periode)
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(totalen)
}

// GetByScope levert de kosten gegroepeerd per werkcategorie.
func (h *KostenHandler) GetByScope(c *fiber.Ctx) error {
	periode, err := parsePeriode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start en eind horen samen opgegeven te worden"})
	}
	groepen, err := h.overzicht.GetByScope(GetUserID(c), c.Params("id"), periode)
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(groepen)
}

// GetDagelijksOverzicht levert de kosten gegroepeerd per kalenderdag.
func (h *KostenHandler) GetDagelijksOverzicht(c *fiber.Ctx) error {
	periode, err := parsePeriode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start en eind horen samen opgegeven te worden"})
	}
	dagen, err := h.overzicht.GetDagelijksOverzicht(GetUserID(c), c.Params("id"), periode)
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(dagen)
}

// GetBudgetVergelijking godoc
// @Summary      Vergelijking van actuele kosten met de voorcalculatie
// @Tags         kosten
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Project-ID"
// @Success      200  {object}  dto.BudgetVergelijkingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/projecten/{id}/kosten/budget [get]
func (h *KostenHandler) GetBudgetVergelijking(c *fiber.Ctx) error {
	vergelijking, err := h.budget.GetBudgetVergelijking(GetUserID(c), c.Params("id"))
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(vergelijking)
}

// GetProjectOverzicht levert het samengestelde dashboardoverzicht.
func (h *KostenHandler) GetProjectOverzicht(c *fiber.Ctx) error {
	overzicht, err := h.projectOverzicht.GetProjectOverzicht(GetUserID(c), c.Params("id"))
	if err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(overzicht)
}

// Create godoc
// @Summary      Kostenregel aanmaken (arbeid, machine of materiaal)
// @Tags         kosten
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKostenRequest  true  "type bepaalt de verplichte velden"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kosten [post]
func (h *KostenHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKostenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige body"})
	}
	id, err := h.mutaties.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return foutResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update werkt een kostenregel bij; het type in de body bepaalt de backing store.
func (h *KostenHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKostenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "ongeldige body"})
	}
	if err := h.mutaties.Update(c.Context(), GetUserID(c), c.Params("id"), in); err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "kostenregel bijgewerkt"})
}

// Remove verwijdert een kostenregel; bij materiaal wordt de voorraad hersteld.
func (h *KostenHandler) Remove(c *fiber.Ctx) error {
	if err := h.mutaties.Remove(c.Context(), GetUserID(c), c.Params("id"), c.Query("type")); err != nil {
		return foutResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "kostenregel verwijderd"})
}

// parsePeriode leest start/eind uit de query; beide of geen van beide.
func parsePeriode(c *fiber.Ctx) (*kosten.Periode, error) {
	start, eind := c.Query("start"), c.Query("eind")
	if start == "" && eind == "" {
		return nil, nil
	}
	if start == "" || eind == "" {
		return nil, domain.ErrInvalidInput
	}
	return &kosten.Periode{Start: start, Eind: eind}, nil
}

// foutResponse vertaalt domeinfouten naar HTTP-statuscodes.
func foutResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidKostenType),
		errors.Is(err, domain.ErrMedewerkerRequired),
		errors.Is(err, domain.ErrMachineRequired),
		errors.Is(err, domain.ErrProductRequired),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrProjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
