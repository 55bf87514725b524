package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/models"
)

// entryService stamps entries with the current time in the display zone
// and delegates persistence to the repository. Input is expected to be
// validated by the wrapping entryValidationService.
type entryService struct {
	entryRepository store.EntryRepository

	location *time.Location
	now      func() time.Time

	logger *logger.Logger
}

// NewEntryService builds an EntryService writing timestamps in
// cfg.DisplayTimezone.
func NewEntryService(entryRepository store.EntryRepository, cfg config.App, logger *logger.Logger) (EntryService, error) {
	location, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownTimezone, cfg.DisplayTimezone, err)
	}

	return &entryService{
		entryRepository: entryRepository,
		location:        location,
		now:             time.Now,
		logger:          logger,
	}, nil
}

func (s *entryService) timestamp() string {
	return s.now().In(s.location).Format(models.TimestampLayout)
}

func (s *entryService) Create(ctx context.Context, userID int64, req models.EntryRequest) (models.Entry, error) {
	entry, err := s.entryRepository.CreateEntry(ctx, models.Entry{
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Timestamp: s.timestamp(),
	})
	if err != nil {
		return models.Entry{}, fmt.Errorf("error creating entry: %w", err)
	}

	return entry, nil
}

func (s *entryService) List(ctx context.Context, userID int64) ([]models.Entry, error) {
	entries, err := s.entryRepository.ListEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	return entries, nil
}

func (s *entryService) Get(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	entry, err := s.entryRepository.GetEntry(ctx, userID, entryID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error getting entry: %w", err)
	}

	return entry, nil
}

// Update overwrites title and content and moves the timestamp to now.
// Concurrent updates are last-write-wins.
func (s *entryService) Update(ctx context.Context, userID, entryID int64, req models.EntryRequest) (models.Entry, error) {
	update := models.EntryUpdate{
		ID:        entryID,
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		Timestamp: s.timestamp(),
	}

	if err := s.entryRepository.UpdateEntry(ctx, update); err != nil {
		return models.Entry{}, fmt.Errorf("error updating entry: %w", err)
	}

	return models.Entry{
		ID:        update.ID,
		UserID:    update.UserID,
		Title:     update.Title,
		Content:   update.Content,
		Timestamp: update.Timestamp,
	}, nil
}

func (s *entryService) Delete(ctx context.Context, userID, entryID int64) error {
	if err := s.entryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("error deleting entry: %w", err)
	}

	return nil
}
