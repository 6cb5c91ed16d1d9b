package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"kizuna/internal/api/v1/dto"
	"kizuna/internal/model"
	"kizuna/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	homeNews      = 3
	newsSidebar   = 30
	newsNotFound  = "Новината не е намерена."
	pageNotFound  = "Страницата не е намерена."
	invalidLevel  = "Невалидно ниво."
	loadFailedMsg = "Failed to load "
)

// PublicServices are the read-side services behind the public pages.
type PublicServices struct {
	Courses     service.CourseService
	Calligraphy service.CalligraphyService
	Teachers    service.TeacherService
	News        service.NewsService
	Pricing     service.PricingService
	Quiz        service.QuizService
	Pages       service.PageConfigService
}

// PublicHandler serves the read-only JSON behind every public page.
type PublicHandler struct {
	svc      PublicServices
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPublicHandler(svc PublicServices, validate *validator.Validate, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		svc:      svc,
		validate: validate,
		logger:   logger.With().Str("handler", "public").Logger(),
	}
}

// RegisterRoutes mounts public routes
func (h *PublicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/home", h.home)
	r.Get("/courses", h.courses)
	r.Get("/calligraphy", h.calligraphy)
	r.Get("/teachers", h.teachers)
	r.Get("/news", h.newsList)
	r.Get("/news/{slug}", h.newsDetail)
	r.Get("/pricing", h.pricing)
	r.Get("/quiz", h.quiz)
	r.Post("/quiz/score", h.quizScore)
	r.Get("/pages/{slug}", h.page)
}

// home godoc
// @Summary Home page
// @Description Upcoming courses (or the most recent ones) and the latest news. A failing section comes back empty with its error under "errors".
// @Tags public
// @Produce json
// @Success 200 {object} dto.HomeDTO
// @Router /home [get]
func (h *PublicHandler) home(w http.ResponseWriter, r *http.Request) {
	var (
		courses  []model.Course
		news     []model.NewsItem
		errCours error
		errNews  error
	)

	var g errgroup.Group
	g.Go(func() error {
		courses, errCours = h.svc.Courses.Home(r.Context(), service.DefaultHomeCourses)
		return nil
	})
	g.Go(func() error {
		news, errNews = h.svc.News.List(r.Context(), homeNews)
		return nil
	})
	_ = g.Wait()

	resp := dto.HomeDTO{Courses: dto.ToCourseDTOs(courses), News: dto.ToNewsDTOs(news)}
	if errCours != nil || errNews != nil {
		resp.Errors = map[string]string{}
	}
	if errCours != nil {
		h.logger.Error().Err(errCours).Msg("home courses failed")
		resp.Errors["courses"] = errCours.Error()
	}
	if errNews != nil {
		h.logger.Error().Err(errNews).Msg("home news failed")
		resp.Errors["news"] = errNews.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// courses godoc
// @Summary Language courses
// @Description Courses ordered by start date, optionally filtered by level, with the page copy.
// @Tags public
// @Produce json
// @Param level query string false "Basic, N5..N1 or All"
// @Success 200 {object} dto.CoursesPageDTO
// @Failure 400 {object} dto.ErrorDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /courses [get]
func (h *PublicHandler) courses(w http.ResponseWriter, r *http.Request) {
	level := model.Level(r.URL.Query().Get("level"))
	if level == "" {
		level = model.LevelAll
	}
	if level != model.LevelAll && !level.Valid() {
		writeError(w, http.StatusBadRequest, invalidLevel)
		return
	}

	var (
		courses []model.Course
		page    json.RawMessage
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		courses, err = h.svc.Courses.ListByLevel(ctx, level)
		return err
	})
	g.Go(func() error {
		var err error
		page, err = h.svc.Pages.Get(ctx, model.CoursesPageSlug)
		return err
	})
	if err := g.Wait(); err != nil {
		h.fail(w, "courses", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CoursesPageDTO{
		Level:   level,
		Levels:  append([]model.Level{model.LevelAll}, model.Levels...),
		Courses: dto.ToCourseDTOs(courses),
		Page:    page,
	})
}

// calligraphy godoc
// @Summary Calligraphy courses
// @Tags public
// @Produce json
// @Success 200 {array} dto.CalligraphyDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /calligraphy [get]
func (h *PublicHandler) calligraphy(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Calligraphy.List(r.Context())
	if err != nil {
		h.fail(w, "calligraphy courses", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCalligraphyDTOs(list))
}

// teachers godoc
// @Summary Teachers
// @Tags public
// @Produce json
// @Success 200 {array} dto.TeacherDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /teachers [get]
func (h *PublicHandler) teachers(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Teachers.List(r.Context())
	if err != nil {
		h.fail(w, "teachers", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTeacherDTOs(list))
}

// newsList godoc
// @Summary News
// @Tags public
// @Produce json
// @Success 200 {array} dto.NewsDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /news [get]
func (h *PublicHandler) newsList(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.News.List(r.Context(), 0)
	if err != nil {
		h.fail(w, "news", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToNewsDTOs(list))
}

// newsDetail godoc
// @Summary News article
// @Description One article and up to 30 other articles for the sidebar.
// @Tags public
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.NewsDetailDTO
// @Failure 404 {object} dto.ErrorDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /news/{slug} [get]
func (h *PublicHandler) newsDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	item, err := h.svc.News.BySlug(r.Context(), slug)
	if errors.Is(err, service.ErrNewsNotFound) {
		writeError(w, http.StatusNotFound, newsNotFound)
		return
	}
	if err != nil {
		h.fail(w, "news", err)
		return
	}

	more, err := h.svc.News.More(r.Context(), slug, newsSidebar)
	if err != nil {
		// The article is still worth showing without its sidebar.
		h.logger.Error().Err(err).Str("slug", slug).Msg("news sidebar failed")
	}
	writeJSON(w, http.StatusOK, dto.NewsDetailDTO{Item: dto.ToNewsDTO(*item), More: dto.ToNewsDTOs(more)})
}

// pricing godoc
// @Summary Pricing plans
// @Tags public
// @Produce json
// @Success 200 {array} model.PricingPlan
// @Failure 500 {object} dto.ErrorDTO
// @Router /pricing [get]
func (h *PublicHandler) pricing(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.Pricing.List(r.Context())
	if err != nil {
		h.fail(w, "pricing plans", err)
		return
	}
	if plans == nil {
		plans = []model.PricingPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}

// quiz godoc
// @Summary Placement test questions
// @Tags public
// @Produce json
// @Success 200 {array} dto.QuizQuestionDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /quiz [get]
func (h *PublicHandler) quiz(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.Quiz.Active(r.Context())
	if err != nil {
		h.fail(w, "quiz", err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToQuizQuestionDTOs(questions))
}

// quizScore godoc
// @Summary Score a placement test
// @Description Questions without a resolvable answer are not counted as correct.
// @Tags public
// @Accept json
// @Produce json
// @Param answers body dto.QuizScoreRequestDTO true "Chosen option index per question id"
// @Success 200 {object} service.QuizResult
// @Failure 400 {object} dto.ErrorDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /quiz/score [post]
func (h *PublicHandler) quizScore(w http.ResponseWriter, r *http.Request) {
	var req dto.QuizScoreRequestDTO
	if err := decodeAndValidate(w, r, h.validate, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.svc.Quiz.Score(r.Context(), req.Answers)
	if err != nil {
		h.fail(w, "quiz", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// page godoc
// @Summary Page copy
// @Description Editable page content; the courses page has a built-in default.
// @Tags public
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} object
// @Failure 404 {object} dto.ErrorDTO
// @Failure 500 {object} dto.ErrorDTO
// @Router /pages/{slug} [get]
func (h *PublicHandler) page(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Pages.Get(r.Context(), chi.URLParam(r, "slug"))
	if errors.Is(err, service.ErrPageConfigNotFound) {
		writeError(w, http.StatusNotFound, pageNotFound)
		return
	}
	if err != nil {
		h.fail(w, "page", err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *PublicHandler) fail(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	h.logger.Error().Err(err).Msgf("failed to load %s", what)
	writeError(w, http.StatusInternalServerError, loadFailedMsg+what+": "+err.Error())
}
