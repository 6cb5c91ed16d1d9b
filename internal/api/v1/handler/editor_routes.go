package handler

import (
	"context"
	"errors"
	"net/http"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/editor"
	"kizuna/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const rowNotFound = "Записът не е намерен."

// editorList is the admin list view of one entity.
type editorList[R any] struct {
	Rows        []R              `json:"rows"`
	Confirm     string           `json:"confirm"`
	Teachers    []dto.TeacherDTO `json:"teachers,omitempty"`
	TimeOptions []string         `json:"time_options,omitempty"`
}

// editorFailure is returned when a delete failed but the list was reloaded.
type editorFailure[R any] struct {
	Error string `json:"error"`
	Rows  []R    `json:"rows"`
}

// editorRoutes exposes one Editor over HTTP:
//
//	GET    /            list (plus teacher choices where the form needs them)
//	GET    /new/draft   empty draft
//	GET    /{id}/draft  draft filled from the row
//	POST   /validate    validation only
//	POST   /            save (update when the draft has an id)
//	DELETE /{id}        delete, requires ?confirm=true
type editorRoutes[R, D any] struct {
	ed          *editor.Editor[R, D]
	confirm     string
	newDraft    func() D
	teachers    service.TeacherService
	timeOptions []string
	present     func(ctx context.Context, rows []R) []R
	logger      zerolog.Logger
}

func (e *editorRoutes[R, D]) mount(r chi.Router) {
	r.Route("/"+e.ed.Name(), func(r chi.Router) {
		r.Get("/", e.list)
		r.Get("/new/draft", e.emptyDraft)
		r.Get("/{id}/draft", e.draft)
		r.Post("/validate", e.validate)
		r.Post("/", e.save)
		r.Delete("/{id}", e.remove)
	})
}

func (e *editorRoutes[R, D]) list(w http.ResponseWriter, r *http.Request) {
	out := &editorList[R]{Confirm: e.confirm, TimeOptions: e.timeOptions}

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		rows, err := e.ed.Load(ctx)
		if err != nil {
			return err
		}
		out.Rows = e.rows(ctx, rows)
		return nil
	})
	if e.teachers != nil {
		g.Go(func() error {
			teachers, err := e.teachers.List(ctx)
			if err != nil {
				return err
			}
			out.Teachers = dto.ToTeacherDTOs(teachers)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error().Err(err).Str("entity", e.ed.Name()).Msg("admin list failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (e *editorRoutes[R, D]) emptyDraft(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, e.newDraft())
}

func (e *editorRoutes[R, D]) draft(w http.ResponseWriter, r *http.Request) {
	d, err := e.ed.FillEdit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		e.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (e *editorRoutes[R, D]) validate(w http.ResponseWriter, r *http.Request) {
	var d D
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := e.ed.Validate(d); err != nil {
		e.writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (e *editorRoutes[R, D]) save(w http.ResponseWriter, r *http.Request) {
	var d D
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := e.ed.Save(r.Context(), d)
	if err != nil {
		e.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editorList[R]{Rows: e.rows(r.Context(), rows), Confirm: e.confirm})
}

func (e *editorRoutes[R, D]) remove(w http.ResponseWriter, r *http.Request) {
	confirmed := r.URL.Query().Get("confirm") == "true"
	rows, err := e.ed.Remove(r.Context(), chi.URLParam(r, "id"), confirmed)
	if err != nil && rows != nil {
		writeJSON(w, http.StatusBadGateway, editorFailure[R]{Error: err.Error(), Rows: e.rows(r.Context(), rows)})
		return
	}
	if err != nil {
		e.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, editorList[R]{Rows: e.rows(r.Context(), rows), Confirm: e.confirm})
}

func (e *editorRoutes[R, D]) rows(ctx context.Context, rows []R) []R {
	if rows == nil {
		rows = []R{}
	}
	if e.present != nil {
		return e.present(ctx, rows)
	}
	return rows
}

func (e *editorRoutes[R, D]) writeErr(w http.ResponseWriter, err error) {
	var (
		verr *editor.ValidationError
		berr *editor.BackendError
	)
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, editor.ErrConfirmationRequired):
		writeError(w, http.StatusConflict, e.confirm)
	case errors.Is(err, editor.ErrRowNotFound):
		writeError(w, http.StatusNotFound, rowNotFound)
	case errors.As(err, &berr):
		writeError(w, http.StatusBadGateway, berr.Error())
	default:
		e.logger.Error().Err(err).Str("entity", e.ed.Name()).Msg("admin request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
