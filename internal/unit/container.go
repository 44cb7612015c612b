package unit

import "gorm.io/gorm"

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, terms TermSource) *Container {
	repo := NewRepository(db)
	service := NewService(repo, terms)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
