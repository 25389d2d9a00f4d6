package service

import (
	"sync"

	"github.com/emzola/liber/config"
	"github.com/emzola/liber/internal/clock"
	"github.com/emzola/liber/internal/jsonlog"
	"github.com/emzola/liber/repository"
)

type Service interface {
	persons
	authors
	borrowers
	books
	lending
	reports
	users
	tokens
	failedValidation(map[string]string) error
}

// service defines the service layer. All date arithmetic goes through the
// clock so tests can pin today.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	clock  clock.Clocker
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, clk clock.Clocker, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		clock:  clk,
		repo:   repo,
	}
}
