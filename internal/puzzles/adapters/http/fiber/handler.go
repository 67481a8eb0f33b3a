package fiber

import (
	"context"
	"errors"
	"net/http"

	"herring/internal/puzzles/core/domain"
	"herring/internal/puzzles/core/ports"
	"herring/internal/puzzles/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListRoundsUseCase interface {
	Execute(ctx context.Context) ([]usecase.RoundView, error)
}

type UpdatePuzzleUseCase interface {
	Execute(ctx context.Context, id int64, u domain.PuzzleUpdate) (string, error)
}

type CreateRoundUseCase interface {
	Execute(ctx context.Context, in usecase.CreateRoundInput) (*domain.Round, error)
}

type CreatePuzzleUseCase interface {
	Execute(ctx context.Context, in usecase.CreatePuzzleInput) (*domain.Puzzle, error)
}

type GetPuzzleUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Puzzle, error)
}

type PuzzleHandler struct {
	listUC        ListRoundsUseCase
	updateUC      UpdatePuzzleUseCase
	createRoundUC CreateRoundUseCase
	createUC      CreatePuzzleUseCase
	getUC         GetPuzzleUseCase
	settings      Settings
}

func NewPuzzleHandler(
	listUC ListRoundsUseCase,
	updateUC UpdatePuzzleUseCase,
	createRoundUC CreateRoundUseCase,
	createUC CreatePuzzleUseCase,
	getUC GetPuzzleUseCase,
	settings Settings,
) *PuzzleHandler {
	return &PuzzleHandler{
		listUC:        listUC,
		updateUC:      updateUC,
		createRoundUC: createRoundUC,
		createUC:      createUC,
		getUC:         getUC,
		settings:      settings,
	}
}

// ListPuzzles godoc
// @Summary List puzzles
// @Description Returns every round of the hunt with its puzzles and their activity
// @Tags Puzzles
// @Produce json
// @Success 200 {object} ListPuzzlesResponse
// @Failure 500 {object} ErrorResponse
// @Router /puzzles [get]
func (h *PuzzleHandler) ListPuzzles(c *fiber.Ctx) error {
	rounds, err := h.listUC.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := ListPuzzlesResponse{
		Rounds:   make([]RoundResponse, 0, len(rounds)),
		Settings: h.settings,
	}
	for _, rv := range rounds {
		rr := RoundResponse{
			ID:      rv.Round.ID,
			Number:  rv.Round.Number,
			Name:    rv.Round.Name,
			HuntURL: rv.Round.HuntURL,
			Puzzles: make([]PuzzleResponse, 0, len(rv.Puzzles)),
		}
		for _, pv := range rv.Puzzles {
			rr.Puzzles = append(rr.Puzzles, toPuzzleResponse(pv))
		}
		resp.Rounds = append(resp.Rounds, rr)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func toPuzzleResponse(pv usecase.PuzzleView) PuzzleResponse {
	p := pv.Puzzle
	return PuzzleResponse{
		ID:              p.ID,
		Name:            p.Name,
		Number:          p.Number,
		Answer:          p.Answer,
		Note:            p.Note,
		Tags:            p.Tags,
		IsMeta:          p.IsMeta,
		HuntURL:         p.HuntURL,
		Slug:            p.Slug,
		ChannelCount:    p.ChannelCount,
		ChannelActive:   pv.ChannelActive,
		ActivityHisto:   pv.ActivityHisto,
		LastActive:      p.LastActive,
		ActivityBuckets: pv.ActivityBuckets,
		LastActiveText:  pv.LastActiveText,
	}
}

// UpdatePuzzle godoc
// @Summary Update a puzzle
// @Description Sets answer, note, tags or hunt_url; omitted fields are left alone
// @Tags Puzzles
// @Accept json
// @Produce json
// @Param id path int true "Puzzle id"
// @Param request body UpdatePuzzleRequest true "Fields to change"
// @Success 200 {object} UpdatePuzzleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /puzzles/{id} [post]
func (h *PuzzleHandler) UpdatePuzzle(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_puzzle_update",
			Message: "id must be an integer",
		})
	}

	var req UpdatePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	slug, err := h.updateUC.Execute(c.UserContext(), int64(id), domain.PuzzleUpdate{
		Answer:  req.Answer,
		Note:    req.Note,
		Tags:    req.Tags,
		HuntURL: req.HuntURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(UpdatePuzzleResponse{Status: "updated", Slug: slug})
}

// CreateRound godoc
// @Summary Create a round
// @Tags Puzzles
// @Accept json
// @Produce json
// @Param request body CreateRoundRequest true "Round"
// @Success 201 {object} RoundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rounds [post]
func (h *PuzzleHandler) CreateRound(c *fiber.Ctx) error {
	var req CreateRoundRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	r, err := h.createRoundUC.Execute(c.UserContext(), usecase.CreateRoundInput{
		Number:  req.Number,
		Name:    req.Name,
		HuntURL: req.HuntURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(RoundResponse{
		ID:      r.ID,
		Number:  r.Number,
		Name:    r.Name,
		HuntURL: r.HuntURL,
		Puzzles: []PuzzleResponse{},
	})
}

// CreatePuzzle godoc
// @Summary Create a puzzle
// @Description Adds a puzzle to a round; the slug is derived from the name
// @Tags Puzzles
// @Accept json
// @Produce json
// @Param id path int true "Round id"
// @Param request body CreatePuzzleRequest true "Puzzle"
// @Success 201 {object} PuzzleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rounds/{id}/puzzles [post]
func (h *PuzzleHandler) CreatePuzzle(c *fiber.Ctx) error {
	roundID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_puzzle",
			Message: "round id must be an integer",
		})
	}

	var req CreatePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	p, err := h.createUC.Execute(c.UserContext(), usecase.CreatePuzzleInput{
		RoundID: int64(roundID),
		Name:    req.Name,
		Number:  req.Number,
		IsMeta:  req.IsMeta,
		HuntURL: req.HuntURL,
	})
	if err != nil {
		return writeError(c, err)
	}

	tr := p.Tracker()
	return c.Status(http.StatusCreated).JSON(PuzzleResponse{
		ID:            p.ID,
		Name:          p.Name,
		Number:        p.Number,
		IsMeta:        p.IsMeta,
		HuntURL:       p.HuntURL,
		Slug:          p.Slug,
		ChannelActive: []string{},
		ActivityHisto: tr.Histogram(),
	})
}

// Spreadsheet godoc
// @Summary Open the puzzle spreadsheet
// @Tags Puzzles
// @Param id path int true "Puzzle id"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /s/{id} [get]
func (h *PuzzleHandler) Spreadsheet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, ports.ErrPuzzleNotFound)
	}

	p, err := h.getUC.Execute(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, err)
	}

	url := p.SpreadsheetURL()
	if url == "" {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "puzzle has no spreadsheet",
		})
	}

	return c.Redirect(url, http.StatusFound)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyUpdate),
		errors.Is(err, usecase.ErrInvalidPuzzleUpdate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_puzzle_update",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidRound),
		errors.Is(err, usecase.ErrInvalidPuzzle):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_puzzle",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrPuzzleNotFound),
		errors.Is(err, ports.ErrRoundNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrSlugTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "slug_taken",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
