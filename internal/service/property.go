package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Neeraj-Gupta12/PropBot/internal/catalog"
	"github.com/Neeraj-Gupta12/PropBot/internal/engine"
	"github.com/Neeraj-Gupta12/PropBot/internal/model"
)

// QueryLogger records executed queries for offline analysis. Logging is
// best-effort and never blocks or fails a request.
type QueryLogger interface {
	LogSearch(ctx context.Context, searchID, keyword string, spec *model.FilterSpec, resultCount, responseTimeMs int) error
	LogChat(ctx context.Context, chatID, message string, kind model.IntentKind, resultCount int) error
}

// PropertyService answers catalog queries against the current snapshot.
type PropertyService struct {
	store  *catalog.Store
	logger QueryLogger // optional
}

// NewPropertyService creates a property service. logger may be nil.
func NewPropertyService(store *catalog.Store, logger QueryLogger) *PropertyService {
	return &PropertyService{
		store:  store,
		logger: logger,
	}
}

// All returns every catalog record in merge order.
func (s *PropertyService) All() []model.Property {
	snap := s.store.Snapshot()
	out := make([]model.Property, len(snap.Items))
	copy(out, snap.Items)
	return out
}

// Get returns a single record by id, or ErrNotFound.
func (s *PropertyService) Get(id string) (model.Property, error) {
	p, ok := s.store.Snapshot().Get(id)
	if !ok {
		return model.Property{}, ErrNotFound
	}
	return p, nil
}

// Filter runs the filter/sort/paginate pipeline over the current snapshot.
func (s *PropertyService) Filter(ctx context.Context, spec *model.FilterSpec, page, pageSize int) model.Page {
	start := time.Now()
	result := engine.Query(s.store.Snapshot(), spec, page, pageSize)

	if s.logger != nil {
		took := int(time.Since(start).Milliseconds())
		keyword := ""
		if spec != nil {
			keyword = spec.Keyword
		}
		go func() {
			_ = s.logger.LogSearch(context.Background(), uuid.NewString(), keyword, spec, result.TotalCount, took)
		}()
	}

	return result
}

// FilterAll runs the filter pipeline without pagination, used by the
// suggestion path which returns the full match list.
func (s *PropertyService) FilterAll(ctx context.Context, spec *model.FilterSpec) []model.Property {
	results := engine.Filter(s.store.Snapshot(), spec)
	if spec != nil {
		engine.Sort(results, spec.Sort)
	}
	return results
}

// Reload rebuilds the catalog from its data source. It returns whether the
// snapshot actually changed and the resulting record count.
func (s *PropertyService) Reload(ctx context.Context) (bool, int, error) {
	rebuilt, err := s.store.Rebuild(ctx)
	if err != nil {
		return false, 0, err
	}
	return rebuilt, s.store.Snapshot().Len(), nil
}
