package evaluation

import (
	"github.com/FelixFel1x/Notendashboard/internal/programgoal"
	"github.com/FelixFel1x/Notendashboard/internal/term"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(termRepo term.Repository, goalService programgoal.Service, flags FlagStore) *Container {
	tracker := NewTracker(flags)
	service := NewService(termRepo, goalService, tracker)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
