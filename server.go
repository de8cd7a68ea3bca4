package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"school-meal-api/neis"
	"school-meal-api/view"
)

const dateLayout = "2006-01-02"

type mealSource interface {
	Meals(ctx context.Context, date time.Time) ([]neis.MealRecord, error)
}

type server struct {
	meals  mealSource
	loc    *time.Location
	title  string
	logger *zap.Logger
	now    func() time.Time
}

func newServer(meals mealSource, loc *time.Location, title string, logger *zap.Logger) *server {
	return &server{
		meals:  meals,
		loc:    loc,
		title:  title,
		logger: logger,
		now:    time.Now,
	}
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.getPage).Methods("GET")
	r.HandleFunc("/api/meals", s.getMeals).Methods("GET")
	r.HandleFunc("/api/meals/{date}", s.getMealsByDate).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(s.loggingMiddleware(r))
}

func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", reqID)

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		s.logger.Info("request",
			zap.String("id", reqID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapper.statusCode),
			zap.Duration("took", time.Since(start)))
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *server) parseDate(raw string) (time.Time, error) {
	return resolveDate(raw, s.now(), s.loc)
}

// resolveDate reads YYYY-MM-DD in loc; empty means the day of now in loc.
func resolveDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if raw == "" {
		now = now.In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	return time.ParseInLocation(dateLayout, raw, loc)
}

func (s *server) getPage(w http.ResponseWriter, r *http.Request) {
	date, err := s.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "Invalid date format", http.StatusBadRequest)
		return
	}

	page := view.Page{Title: s.title, Date: date.Format(dateLayout)}

	records, err := s.meals.Meals(r.Context(), date)
	switch {
	case errors.Is(err, neis.ErrNoMeal):
		page.Warning = view.NoMealWarning
	case err != nil:
		s.logger.Warn("fetching meals failed", zap.String("date", page.Date), zap.Error(err))
		page.Warning = view.FetchFailedWarning
	default:
		for i, rec := range records {
			mode := view.ParseMode(r.URL.Query().Get(fmt.Sprintf("view%d", i)))
			page.Cards = append(page.Cards, view.NewCard(i, rec, mode))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, page); err != nil {
		s.logger.Error("rendering page failed", zap.Error(err))
	}
}

func (s *server) getMeals(w http.ResponseWriter, r *http.Request) {
	s.writeMeals(w, r, r.URL.Query().Get("date"))
}

func (s *server) getMealsByDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.writeMeals(w, r, vars["date"])
}

func (s *server) writeMeals(w http.ResponseWriter, r *http.Request, rawDate string) {
	date, err := s.parseDate(rawDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid date format"})
		return
	}
	day := date.Format(dateLayout)

	records, err := s.meals.Meals(r.Context(), date)
	switch {
	case errors.Is(err, neis.ErrNoMeal):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no meal for " + day})
		return
	case err != nil:
		s.logger.Warn("fetching meals failed", zap.String("date", day), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "meal service unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, newMealsResponse(day, records))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
