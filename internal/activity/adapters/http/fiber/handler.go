package fiber

import (
	"context"
	"errors"
	"net/http"

	"herring/internal/activity/core/ports"
	"herring/internal/activity/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetActivityUseCase interface {
	Execute(ctx context.Context, slug string) (*usecase.ActivityView, error)
}

type RecordActivityUseCase interface {
	Execute(ctx context.Context, in usecase.RecordActivityInput) (bool, error)
	RecordBatch(ctx context.Context, msgs []usecase.RecordActivityInput) (usecase.BatchResult, error)
}

type UpdateMembershipUseCase interface {
	Execute(ctx context.Context, in usecase.MembershipInput) (int, error)
}

type ActivityHandler struct {
	getUC    GetActivityUseCase
	recordUC RecordActivityUseCase
	memberUC UpdateMembershipUseCase
}

func NewActivityHandler(getUC GetActivityUseCase, recordUC RecordActivityUseCase, memberUC UpdateMembershipUseCase) *ActivityHandler {
	return &ActivityHandler{getUC: getUC, recordUC: recordUC, memberUC: memberUC}
}

// GetActivity godoc
// @Summary Get puzzle activity
// @Description Returns the activity histogram of a puzzle, bucketed relative to now
// @Tags Activity
// @Produce json
// @Param slug path string true "Puzzle slug"
// @Success 200 {object} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /puzzles/{slug}/activity [get]
func (h *ActivityHandler) GetActivity(c *fiber.Ctx) error {
	slug := c.Params("slug")

	view, err := h.getUC.Execute(c.UserContext(), slug)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(ActivityResponse{
		Slug:            slug,
		ChannelCount:    view.Record.ChannelCount,
		ChannelActive:   view.Record.ActiveParticipants,
		ActivityHisto:   view.Record.Histogram,
		LastActive:      view.Record.LastActiveAt,
		ActivityBuckets: view.Buckets,
		LastActiveText:  view.LastActiveText,
	})
}

// RecordActivity godoc
// @Summary Record channel activity
// @Description Folds one chat message into the puzzle's activity tracker
// @Tags Activity
// @Accept json
// @Produce json
// @Param slug path string true "Puzzle slug"
// @Param request body RecordActivityRequest true "Activity payload"
// @Success 200 {object} RecordActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /puzzles/{slug}/activity [post]
func (h *ActivityHandler) RecordActivity(c *fiber.Ctx) error {
	var req RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	changed, err := h.recordUC.Execute(c.UserContext(), usecase.RecordActivityInput{
		Slug:        c.Params("slug"),
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		return writeError(c, err)
	}

	status := "unchanged"
	if changed {
		status = "recorded"
	}
	return c.Status(http.StatusOK).JSON(RecordActivityResponse{Status: status})
}

// RecordActivityBulk godoc
// @Summary Record buffered channel activity
// @Description Applies a list of chat messages in order; rejected as a whole if any message is invalid
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body BulkActivityRequest true "Buffered messages"
// @Success 200 {object} BulkActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /activity/bulk [post]
func (h *ActivityHandler) RecordActivityBulk(c *fiber.Ctx) error {
	var req BulkActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Messages) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "messages_list_required",
		})
	}

	msgs := make([]usecase.RecordActivityInput, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = usecase.RecordActivityInput{
			Slug:        m.Slug,
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			Timestamp:   m.Timestamp,
		}
	}

	res, err := h.recordUC.RecordBatch(c.UserContext(), msgs)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(BulkActivityResponse{
		Recorded:  res.Recorded,
		Unchanged: res.Unchanged,
	})
}

// UpdateMembership godoc
// @Summary Update channel membership
// @Description Marks a user as joined or left and refreshes the member count
// @Tags Activity
// @Accept json
// @Produce json
// @Param slug path string true "Puzzle slug"
// @Param request body MembershipRequest true "Membership payload"
// @Success 200 {object} MembershipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /puzzles/{slug}/members [post]
func (h *ActivityHandler) UpdateMembership(c *fiber.Ctx) error {
	var req MembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	count, err := h.memberUC.Execute(c.UserContext(), usecase.MembershipInput{
		Slug:        c.Params("slug"),
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		IsMember:    req.IsMember,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(MembershipResponse{ChannelCount: count})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidActivityQuery),
		errors.Is(err, usecase.ErrInvalidActivity),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_activity",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrPuzzleNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
