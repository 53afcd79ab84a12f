package usecase

import (
	"context"
	"errors"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/logger"
)

// storageFailure passes through addressing, not-found and conflict errors and wraps
// everything else as a storage collaborator failure, logging the cause.
func storageFailure(ctx context.Context, log *logger.Logger, op string, err error) error {
	if errors.Is(err, domain.ErrInvalidID) || domain.IsNotFound(err) || errors.Is(err, domain.ErrUserExists) {
		return err
	}
	logger.FromContext(ctx, log).Error().Err(err).Str("op", op).Msg("storage call failed")
	return domain.NewStorageError(err)
}

// relayFailure logs a failed relay call and wraps err with wrap unless it is already classified.
func relayFailure(ctx context.Context, log *logger.Logger, op string, err error, wrap func(error) error) error {
	logger.FromContext(ctx, log).Error().Err(err).Str("op", op).Msg("relay call failed")
	if domain.IsCollaboratorFailure(err) {
		return err
	}
	return wrap(err)
}
