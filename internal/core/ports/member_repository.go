// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for members.
type MemberRepository interface {
	// Add persists a new member to storage.
	// The member must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update persists changes to an existing member.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by its unique identifier.
	// Returns an ObjectNotFoundError when no member with the identifier exists.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
}
