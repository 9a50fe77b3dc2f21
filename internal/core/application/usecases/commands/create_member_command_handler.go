package commands

import (
	"context"

	"shop/internal/core/domain/model/member"
)

// CreateMemberCommandHandler handles the business logic for member registration.
type CreateMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewCreateMemberCommandHandler creates a handler for member registration operations.
// Requires a MemberUoWFactory for transactional persistence.
func NewCreateMemberCommandHandler(uowFactory MemberUoWFactory) CreateMemberCommandHandler {
	return CreateMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the member registration command.
// Uses a transaction to ensure the member is properly persisted or rolled back on error.
func (h *CreateMemberCommandHandler) Handle(ctx context.Context, cmd CreateMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newMember, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.MemberRepository().Add(ctx, newMember); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
