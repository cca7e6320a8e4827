package services

import (
	"context"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

// Reservation transitions. The table coupling is explicit and lives only
// here: confirm reserves an available table, seating occupies it, and
// cancel/no-show releases a still-reserved one. Nothing else touches tables.
var reservationNext = map[entity.ReservationStatus][]entity.ReservationStatus{
	entity.ReservationPending:   {entity.ReservationConfirmed, entity.ReservationCancelled},
	entity.ReservationConfirmed: {entity.ReservationSeated, entity.ReservationCancelled, entity.ReservationNoShow},
}

type ReservationService struct {
	Cache  *cache.Store
	Repo   *repository.ReservationRepository
	Tables *repository.TableRepository
}

func NewReservationService(store *cache.Store, repo *repository.ReservationRepository, tables *repository.TableRepository) *ReservationService {
	return &ReservationService{Cache: store, Repo: repo, Tables: tables}
}

// List is paginated and intentionally uncached: every page/filter combination
// is its own short-lived view and the total count comes from the store.
func (s *ReservationService) List(ctx context.Context, page, limit int, status entity.ReservationStatus, date string) (*repository.ReservationPage, error) {
	return s.Repo.List(ctx, page, limit, status, date)
}

func (s *ReservationService) Create(ctx context.Context, rv *entity.Reservation) (*entity.Reservation, error) {
	if rv.CustomerName == "" {
		return nil, &ValidationError{Field: "customerName", Msg: "required"}
	}
	if rv.GuestCount < 1 {
		return nil, &ValidationError{Field: "guestCount", Msg: "must be at least 1"}
	}
	if rv.TableID != "" {
		if _, err := s.Tables.Get(ctx, rv.TableID); err != nil {
			return nil, err
		}
	}
	rv.Status = entity.ReservationPending
	rv.CreatedAt = time.Now().UTC()
	created, err := s.Repo.Create(ctx, rv)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(KeyReservations)
	return created, nil
}

// UpdateStatus moves a reservation and applies the documented table coupling.
// Re-issuing the current status is a no-op.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, target entity.ReservationStatus) (*entity.Reservation, error) {
	rv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv.Status == target {
		return rv, nil
	}
	allowed := false
	for _, t := range reservationNext[rv.Status] {
		if t == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, &InvalidStateError{Op: "reservation to " + string(target), Current: string(rv.Status)}
	}

	updated, err := s.Repo.Patch(ctx, id, map[string]any{"status": target})
	if err != nil {
		return nil, err
	}
	s.applyTableCoupling(ctx, rv.TableID, target)
	s.Cache.Invalidate(KeyReservations)
	return updated, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(KeyReservations)
	return nil
}

func (s *ReservationService) applyTableCoupling(ctx context.Context, tableID string, target entity.ReservationStatus) {
	if tableID == "" {
		return
	}
	table, err := s.Tables.Get(ctx, tableID)
	if err != nil {
		return
	}
	var want entity.TableStatus
	switch target {
	case entity.ReservationConfirmed:
		if table.Status != entity.TableAvailable {
			return
		}
		want = entity.TableReserved
	case entity.ReservationSeated:
		want = entity.TableOccupied
	case entity.ReservationCancelled, entity.ReservationNoShow:
		if table.Status != entity.TableReserved {
			return
		}
		want = entity.TableAvailable
	default:
		return
	}
	if _, err := s.Tables.UpdateStatus(ctx, tableID, want); err == nil {
		s.Cache.Invalidate(KeyTables)
	}
}
