package usecase

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Collection names reported in CollectionError.
const (
	CollectionConstructora = "constructora"
	CollectionObras        = "obras"
	CollectionResidentes   = "residentes"
	CollectionAsignaciones = "asignaciones"
	CollectionPagos        = "pagos"
	CollectionPlans        = "plans"
	CollectionReports      = "reports"
	CollectionGastos       = "gastos"
	CollectionSpend        = "spend"
)

// CollectionError is the failure of one collection of a dashboard. The other collections still render.
type CollectionError struct {
	Collection string
	Message    string
	Err        error
}

// settler runs independent fetches concurrently and keeps one error slot per collection,
// unlike errgroup.WithContext which cancels everything on the first failure.
type settler struct {
	g    errgroup.Group
	mu   sync.Mutex
	errs []CollectionError
	log  *zap.Logger
}

func newSettler(logger *zap.Logger) *settler {
	return &settler{log: logger}
}

func (s *settler) Go(ctx context.Context, collection string, fetch func(ctx context.Context) error) {
	s.g.Go(func() error {
		if err := fetch(ctx); err != nil {
			s.fail(collection, err)
		}
		return nil
	})
}

func (s *settler) fail(collection string, err error) {
	s.log.Warn("[dashboard][usecase] collection failed", zap.String("collection", collection), zap.Error(err))
	s.mu.Lock()
	s.errs = append(s.errs, CollectionError{Collection: collection, Message: err.Error(), Err: err})
	s.mu.Unlock()
}

func (s *settler) failed(collection string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.errs, func(e CollectionError) bool { return e.Collection == collection })
}

// Wait blocks until every fetch settled and returns the failures ordered by collection.
func (s *settler) Wait() []CollectionError {
	_ = s.g.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortFunc(s.errs, func(a, b CollectionError) int { return strings.Compare(a.Collection, b.Collection) })
	return s.errs
}
