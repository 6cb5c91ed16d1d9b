// Package editor implements the admin draft/validate/save cycle once and
// instantiates it per entity.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	// ErrConfirmationRequired is returned by Remove when the caller has not
	// confirmed the deletion.
	ErrConfirmationRequired = errors.New("deletion requires confirmation")
	ErrRowNotFound          = errors.New("row not found")
)

// ValidationError carries the message shown to the admin. The backend was not
// called.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// BackendError wraps a failed write; its message is the backend's own.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Store is the persistence an editor needs.
type Store[R any] interface {
	List(ctx context.Context) ([]R, error)
	Insert(ctx context.Context, row *R) error
	Update(ctx context.Context, row *R) error
	Delete(ctx context.Context, id string) error
}

// Definition holds the per-entity transforms.
type Definition[R, D any] struct {
	// Fill copies a row into an editable draft.
	Fill func(R) D
	// Validate returns the first failing check as a *ValidationError.
	Validate func(D) error
	// Row builds the row to persist from a valid draft.
	Row func(D) R
	// DraftID is empty for a new row.
	DraftID func(D) string
	RowID   func(R) string
}

type Editor[R, D any] struct {
	name   string
	store  Store[R]
	def    Definition[R, D]
	logger zerolog.Logger
}

func New[R, D any](name string, store Store[R], def Definition[R, D], logger zerolog.Logger) *Editor[R, D] {
	return &Editor[R, D]{
		name:   name,
		store:  store,
		def:    def,
		logger: logger.With().Str("service", "editor").Str("entity", name).Logger(),
	}
}

func (e *Editor[R, D]) Name() string {
	return e.name
}

// Load returns the full list; there is no incremental update.
func (e *Editor[R, D]) Load(ctx context.Context) ([]R, error) {
	rows, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", e.name, err)
	}
	return rows, nil
}

// FillEdit returns the draft for the row with the given id.
func (e *Editor[R, D]) FillEdit(ctx context.Context, id string) (D, error) {
	var zero D
	rows, err := e.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, r := range rows {
		if e.def.RowID(r) == id {
			return e.def.Fill(r), nil
		}
	}
	return zero, ErrRowNotFound
}

// Validate runs the entity's checks without touching the store.
func (e *Editor[R, D]) Validate(d D) error {
	return e.def.Validate(d)
}

// Save validates d, then updates when it has an id and inserts otherwise.
// On success the reloaded list is returned; on failure d is untouched and can
// be resubmitted.
func (e *Editor[R, D]) Save(ctx context.Context, d D) ([]R, error) {
	if err := e.def.Validate(d); err != nil {
		return nil, err
	}

	row := e.def.Row(d)
	id := e.def.DraftID(d)
	var err error
	if id != "" {
		err = e.store.Update(ctx, &row)
	} else {
		err = e.store.Insert(ctx, &row)
	}
	if err != nil {
		e.logger.Error().Err(err).Str("id", id).Msg("save failed")
		return nil, &BackendError{Err: err}
	}

	e.logger.Info().Str("id", e.def.RowID(row)).Bool("update", id != "").Msg("saved")
	return e.Load(ctx)
}

// Remove deletes the row once confirmed. The list is reloaded whether or not
// the delete succeeded; the delete error, if any, is returned alongside it.
func (e *Editor[R, D]) Remove(ctx context.Context, id string, confirmed bool) ([]R, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	var deleteErr error
	if err := e.store.Delete(ctx, id); err != nil {
		e.logger.Error().Err(err).Str("id", id).Msg("delete failed")
		deleteErr = &BackendError{Err: err}
	}

	rows, err := e.Load(ctx)
	if err != nil {
		return nil, errors.Join(deleteErr, err)
	}
	return rows, deleteErr
}
