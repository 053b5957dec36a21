package processor

import (
	"context"
	"sync/atomic"

	"photo_archive/internal/domain"
)

// Holder owns the current processed archive. The refresher swaps complete
// snapshots in; readers always see a consistent archive.
type Holder struct {
	current atomic.Pointer[domain.Archive]
	stats   atomic.Pointer[domain.ProcessStats]
}

func NewHolder() *Holder {
	return &Holder{}
}

func (h *Holder) Store(archive *domain.Archive) {
	h.current.Store(archive)
}

// Load returns the current archive, or an empty one before the first pass
// completes.
func (h *Holder) Load() *domain.Archive {
	if archive := h.current.Load(); archive != nil {
		return archive
	}
	return &domain.Archive{
		Days:     []domain.DayRecord{},
		Weeks:    []domain.WeekBucket{},
		Sequence: []domain.SequenceEntry{},
	}
}

func (h *Holder) StoreStats(stats *domain.ProcessStats) {
	h.stats.Store(stats)
}

// Stats returns the stats of the latest processing pass, or zero stats
// before the first pass completes.
func (h *Holder) Stats() *domain.ProcessStats {
	if stats := h.stats.Load(); stats != nil {
		return stats
	}
	return &domain.ProcessStats{}
}

// Refresher runs a processing pass and publishes the result to a holder.
// It satisfies the scheduler contract.
type Refresher struct {
	service *Service
	holder  *Holder
}

func NewRefresher(service *Service, holder *Holder) *Refresher {
	return &Refresher{service: service, holder: holder}
}

func (r *Refresher) Refresh(ctx context.Context) (*domain.ProcessStats, error) {
	archive, stats := r.service.Process(ctx)
	r.holder.Store(archive)
	r.holder.StoreStats(stats)
	return stats, nil
}
