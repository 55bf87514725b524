package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}

// entryValidationService rejects malformed input before it reaches the
// wrapped EntryService. Every rejection wraps ErrInvalidDataProvided.
type entryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &entryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *entryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}

func (v *entryValidationService) Create(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error) {
	if err := v.check(ctx, userID, 0, req); err != nil {
		return models.Entry{}, err
	}

	return v.inner.Create(ctx, userID, req)
}

func (v *entryValidationService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	if err := v.validator.Validate(ctx, models.Entry{UserID: userID}, validators.FieldUserID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, userID)
}

func (v *entryValidationService) Get(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	if err := v.checkIDs(ctx, userID, entryID); err != nil {
		return models.Entry{}, err
	}

	return v.inner.Get(ctx, userID, entryID)
}

func (v *entryValidationService) Update(ctx context.Context, userID, entryID int64, req models.EntryRequest) (models.Entry, error) {
	if err := v.checkIDs(ctx, userID, entryID); err != nil {
		return models.Entry{}, err
	}
	if err := v.check(ctx, userID, entryID, req); err != nil {
		return models.Entry{}, err
	}

	return v.inner.Update(ctx, userID, entryID, req)
}

func (v *entryValidationService) Delete(ctx context.Context, userID, entryID int64) error {
	if err := v.checkIDs(ctx, userID, entryID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, entryID)
}

func (v *entryValidationService) checkIDs(ctx context.Context, userID, entryID int64) error {
	err := v.validator.Validate(ctx, models.Entry{ID: entryID, UserID: userID}, validators.FieldUserID, validators.FieldEntryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *entryValidationService) check(ctx context.Context, userID, entryID int64, req models.EntryRequest) error {
	if err := v.validator.Validate(ctx, models.Entry{UserID: userID}, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Int64("user_id", userID).Int64("entry_id", entryID).Msg("entry rejected")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
