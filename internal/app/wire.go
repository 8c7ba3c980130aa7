package app

import (
	"github.com/google/uuid"

	"sealbox/internal/api"
	"sealbox/internal/domain"
	"sealbox/internal/services/transfer"
)

// App bundles the client, session and transfer service for the CLI.
type App struct {
	Client   domain.ConvertClient
	Session  *domain.Session
	Transfer domain.TransferService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	id := cfg.ClientID
	if id == "" {
		id = uuid.New().String()
	}
	sess := domain.NewSession(domain.ClientID(id))
	client := api.New(cfg.ServerURL, cfg.HTTP)
	return &App{
		Client:   client,
		Session:  sess,
		Transfer: transfer.New(client, sess),
	}
}
