package handler

import (
	"context"
	"errors"
	"net/http"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/editor"
	"kizuna/internal/model"
	"kizuna/internal/repository"
	"kizuna/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// AdminEditors holds one editor per managed entity.
type AdminEditors struct {
	Courses     *editor.CourseEditor
	Calligraphy *editor.CalligraphyEditor
	Teachers    *editor.TeacherEditor
	News        *editor.NewsEditor
	Quiz        *editor.QuizEditor
}

// AdminHandler serves the admin area. Every route sits behind the admin guard.
type AdminHandler struct {
	editors   AdminEditors
	teachers  service.TeacherService
	pricing   service.PricingService
	dashboard service.DashboardService
	images    service.ImageResolver
	logger    zerolog.Logger
}

func NewAdminHandler(
	editors AdminEditors,
	teachers service.TeacherService,
	pricing service.PricingService,
	dashboard service.DashboardService,
	teacherImages service.ImageResolver,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		editors:   editors,
		teachers:  teachers,
		pricing:   pricing,
		dashboard: dashboard,
		images:    teacherImages,
		logger:    logger.With().Str("handler", "admin").Logger(),
	}
}

// RegisterRoutes mounts admin routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.getDashboard)
	r.Get("/pricing", h.listPricing)
	r.Put("/pricing/{id}", h.updatePricing)

	(&editorRoutes[model.Course, editor.CourseDraft]{
		ed:          h.editors.Courses,
		confirm:     editor.CourseDeleteConfirm,
		newDraft:    func() editor.CourseDraft { return editor.CourseDraft{Level: model.DefaultLevel, Format: model.FormatOnSite} },
		teachers:    h.teachers,
		timeOptions: editor.CourseTimeOptions,
		logger:      h.logger,
	}).mount(r)

	(&editorRoutes[model.CalligraphyCourse, editor.CalligraphyDraft]{
		ed:          h.editors.Calligraphy,
		confirm:     editor.CalligraphyDeleteConfirm,
		newDraft:    func() editor.CalligraphyDraft { return editor.CalligraphyDraft{} },
		teachers:    h.teachers,
		timeOptions: editor.CalligraphyTimeOptions,
		logger:      h.logger,
	}).mount(r)

	(&editorRoutes[model.Teacher, editor.TeacherDraft]{
		ed:       h.editors.Teachers,
		confirm:  editor.TeacherDeleteConfirm,
		newDraft: func() editor.TeacherDraft { return editor.TeacherDraft{} },
		present:  h.signTeachers,
		logger:   h.logger,
	}).mount(r)

	(&editorRoutes[model.NewsItem, editor.NewsDraft]{
		ed:       h.editors.News,
		confirm:  editor.NewsDeleteConfirm,
		newDraft: func() editor.NewsDraft { return editor.NewsDraft{} },
		logger:   h.logger,
	}).mount(r)

	(&editorRoutes[model.QuizQuestion, editor.QuizDraft]{
		ed:       h.editors.Quiz,
		confirm:  editor.QuizDeleteConfirm,
		newDraft: editor.NewQuizDraft,
		logger:   h.logger,
	}).mount(r)
}

// getDashboard godoc
// @Summary Admin dashboard
// @Description Links to every editor with its row count.
// @Tags admin
// @Produce json
// @Success 200 {object} service.Dashboard
// @Success 303 "No session or not an admin"
// @Failure 500 {object} dto.ErrorDTO
// @Router /admin [get]
func (h *AdminHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Get(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("dashboard failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// listPricing godoc
// @Summary Pricing plans for inline editing
// @Tags admin
// @Produce json
// @Success 200 {array} model.PricingPlan
// @Failure 500 {object} dto.ErrorDTO
// @Router /admin/pricing [get]
func (h *AdminHandler) listPricing(w http.ResponseWriter, r *http.Request) {
	plans, err := h.pricing.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if plans == nil {
		plans = []model.PricingPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// updatePricing godoc
// @Summary Update a pricing plan
// @Description Overwrites name, price and description. Last write wins.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param plan body dto.PricingUpdateDTO true "New values"
// @Success 200 {array} model.PricingPlan
// @Failure 400 {object} dto.ErrorDTO
// @Failure 404 {object} dto.ErrorDTO
// @Failure 502 {object} dto.ErrorDTO
// @Router /admin/pricing/{id} [put]
func (h *AdminHandler) updatePricing(w http.ResponseWriter, r *http.Request) {
	var req dto.PricingUpdateDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan := &model.PricingPlan{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}
	if err := h.pricing.Update(r.Context(), plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, rowNotFound)
			return
		}
		h.logger.Error().Err(err).Str("id", plan.ID).Msg("pricing update failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.listPricing(w, r)
}

func (h *AdminHandler) signTeachers(ctx context.Context, rows []model.Teacher) []model.Teacher {
	if len(rows) == 0 {
		return rows
	}
	raws := make([]string, len(rows))
	for i, t := range rows {
		raws[i] = t.Image
	}
	for i, url := range h.images.ResolveAll(ctx, raws) {
		rows[i].ImageURL = url
	}
	return rows
}
