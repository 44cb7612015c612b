package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/FelixFel1x/Notendashboard/internal/config"
	"github.com/FelixFel1x/Notendashboard/internal/evaluation"
	"github.com/FelixFel1x/Notendashboard/internal/middlewares"
	"github.com/FelixFel1x/Notendashboard/internal/programgoal"
	"github.com/FelixFel1x/Notendashboard/internal/term"
	"github.com/FelixFel1x/Notendashboard/internal/unit"
)

type RouterConfig struct {
	TermHandler        *term.Handler
	UnitHandler        *unit.Handler
	ProgramGoalHandler *programgoal.Handler
	DashboardHandler   *evaluation.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/terms", term.Routes(cfg.TermHandler))
	r.Mount("/units", unit.Routes(cfg.UnitHandler))
	r.Mount("/program-goal", programgoal.Routes(cfg.ProgramGoalHandler))
	r.Mount("/dashboard", evaluation.Routes(cfg.DashboardHandler))

	r.Post("/terms/{termId}/units", cfg.UnitHandler.Create)
	r.Get("/terms/{termId}/units", cfg.UnitHandler.ListByTerm)

	return r
}
