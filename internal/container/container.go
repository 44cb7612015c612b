package container

import (
	"context"
	"log"

	"github.com/FelixFel1x/Notendashboard/internal/completion"
	"github.com/FelixFel1x/Notendashboard/internal/config"
	"github.com/FelixFel1x/Notendashboard/internal/evaluation"
	"github.com/FelixFel1x/Notendashboard/internal/programgoal"
	"github.com/FelixFel1x/Notendashboard/internal/term"
	"github.com/FelixFel1x/Notendashboard/internal/unit"
)

type Container struct {
	Config               *config.Config
	TermContainer        *term.Container
	UnitContainer        *unit.Container
	ProgramGoalContainer *programgoal.Container
	EvaluationContainer  *evaluation.Container
}

func New() *Container {
	config.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		log.Fatalf("database is not configured: %v", err)
	}

	if err := config.Connect(context.Background(), dsn,
		&term.Term{},
		&unit.Unit{},
		&programgoal.ProgramGoal{},
		&completion.TermCompletion{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	completionRepo := completion.NewRepository(config.DB)
	termContainer := term.NewContainer(config.DB, completionRepo)
	unitContainer := unit.NewContainer(config.DB, termContainer.Repo)
	programGoalContainer := programgoal.NewContainer(config.DB)
	evaluationContainer := evaluation.NewContainer(
		termContainer.Repo,
		programGoalContainer.Service,
		completionRepo,
	)

	return &Container{
		Config:               cfg,
		TermContainer:        termContainer,
		UnitContainer:        unitContainer,
		ProgramGoalContainer: programGoalContainer,
		EvaluationContainer:  evaluationContainer,
	}
}
