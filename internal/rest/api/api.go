package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/netmon/cmd/netmon/container"
)

type API struct {
	container container.Container
	validate  *validator.Validate
	logger    *zerolog.Logger
}

type Error struct {
	Error string
}

func New(
	container container.Container,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *API {
	return &API{
		container: container,
		validate:  validate,
		logger:    logger,
	}
}
