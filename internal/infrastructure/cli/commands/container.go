package commands

import (
	"context"

	"github.com/doeshing/vyra-go/internal/app"
)

// ContainerFunc returns the lazily built application container.
type ContainerFunc func(ctx context.Context) (*app.Container, error)
