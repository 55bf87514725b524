package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-diary/models"
)

// Field name constants for field-level scoping of entry validation.
const (
	FieldEntryID   = "id"
	FieldUserID    = "user_id"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldTimestamp = "timestamp"
)

// Length limits in runes.
const (
	MaxTitleLength   = 200
	MaxContentLength = 20000
)

// EntryValidator validates models.Entry, models.EntryUpdate and
// models.EntryRequest values. Title and content must contain at least one
// non-whitespace rune.
type EntryValidator struct{}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	case models.EntryUpdate:
		return v.validateEntryUpdate(value, fields...)
	case *models.EntryUpdate:
		return v.validateEntryUpdate(*value, fields...)

	case models.EntryRequest:
		return v.validateEntryRequest(value, fields...)
	case *models.EntryRequest:
		return v.validateEntryRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateEntry(entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldContent, FieldTimestamp}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEntryID:
			err = checkEntryID(entry.ID)
		case FieldUserID:
			err = checkUserID(entry.UserID)
		case FieldTitle:
			err = checkTitle(entry.Title)
		case FieldContent:
			err = checkContent(entry.Content)
		case FieldTimestamp:
			err = checkTimestamp(entry.Timestamp)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *EntryValidator) validateEntryUpdate(update models.EntryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldUserID, FieldTitle, FieldContent, FieldTimestamp}
	}

	return v.validateEntry(models.Entry{
		ID:        update.ID,
		UserID:    update.UserID,
		Title:     update.Title,
		Content:   update.Content,
		Timestamp: update.Timestamp,
	}, fields...)
}

func (v *EntryValidator) validateEntryRequest(request models.EntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = checkTitle(request.Title)
		case FieldContent:
			err = checkContent(request.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkEntryID(id int64) error {
	if id <= 0 {
		return ErrInvalidEntryID
	}
	return nil
}

func checkUserID(id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}

func checkTimestamp(ts string) error {
	if ts == "" {
		return ErrEmptyTimestamp
	}
	return nil
}
