// Package identity maps externally authenticated identities to internal
// user records, creating them lazily on first sight.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinesh6383/Finance-tracking-App/internal/events"
	"github.com/dinesh6383/Finance-tracking-App/internal/models"
	"github.com/dinesh6383/Finance-tracking-App/internal/repository"
	"github.com/dinesh6383/Finance-tracking-App/internal/utils"
)

// UserStore is the persistence surface the resolver needs.
type UserStore interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ProfileFetcher retrieves identity-provider profiles.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, externalID string) (*Profile, error)
}

// EventPublisher announces newly provisioned users.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// Resolver maps an external identity to the internal user record.
type Resolver struct {
	store     UserStore
	provider  ProfileFetcher
	publisher EventPublisher
}

func NewResolver(store UserStore, provider ProfileFetcher, publisher EventPublisher) *Resolver {
	return &Resolver{store: store, provider: provider, publisher: publisher}
}

// Lookup returns the internal user for an external id without provisioning.
// Action handlers use this; absence means repository.ErrNotFound.
func (r *Resolver) Lookup(ctx context.Context, externalID string) (*models.User, error) {
	return r.store.GetByExternalID(ctx, externalID)
}

// Resolve returns the internal user for an external id, creating one from
// the provider profile on first sight. Concurrent first-time resolution is
// safe: the unique index on external_id makes the insert race lose cleanly,
// after which the winner's row is read back.
func (r *Resolver) Resolve(ctx context.Context, externalID string) (*models.User, error) {
	user, err := r.store.GetByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	profile, err := r.provider.FetchProfile(ctx, externalID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user = &models.User{
		ID:         utils.GenerateID("usr"),
		ExternalID: externalID,
		Name:       profile.DisplayName(),
		Email:      profile.Email,
		ImageURL:   profile.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := r.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Lost the provisioning race; the winner's row is authoritative.
			return r.store.GetByExternalID(ctx, externalID)
		}
		return nil, fmt.Errorf("provision user: %w", err)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
			UserID:     user.ID,
			ExternalID: user.ExternalID,
			Email:      user.Email,
			Name:       user.Name,
		}); err != nil {
			slog.WarnContext(ctx, "failed to publish user.created event", "error", err)
		}
	}

	return user, nil
}
