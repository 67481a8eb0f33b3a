package usecase

import (
	"context"

	"herring/internal/activity/core/domain"
	"herring/internal/activity/core/ports"
)

type MembershipInput struct {
	Slug        string
	UserID      string
	DisplayName string
	IsMember    bool
}

type UpdateMembershipUseCase struct {
	repo ports.ActivityRepositoryPort
}

func NewUpdateMembershipUseCase(repo ports.ActivityRepositoryPort) *UpdateMembershipUseCase {
	return &UpdateMembershipUseCase{repo: repo}
}

// Execute records a user joining or leaving a puzzle channel and returns the
// puzzle's new member count.
func (uc *UpdateMembershipUseCase) Execute(ctx context.Context, in MembershipInput) (int, error) {
	if in.Slug == "" || in.UserID == "" {
		return 0, ErrInvalidActivity
	}

	err := uc.repo.SetMembership(ctx, domain.Participant{
		Slug:        in.Slug,
		UserID:      in.UserID,
		DisplayName: in.DisplayName,
		IsMember:    in.IsMember,
	})
	if err != nil {
		return 0, err
	}

	return uc.repo.RefreshChannelCount(ctx, in.Slug)
}
