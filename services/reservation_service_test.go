package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

func newReservationEnv(t *testing.T) (*fakeStore, *ReservationService) {
	f := newFakeStore(t)
	api := f.client()
	c := cache.NewStore(discardLogger())
	t.Cleanup(c.Close)
	svc := NewReservationService(c, repository.NewReservationRepository(api), repository.NewTableRepository(api))
	return f, svc
}

func TestReservationCreateStartsPending(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("tables", entity.Table{ID: "t1", Number: 1, Capacity: 4, Status: entity.TableAvailable})

	rv, err := svc.Create(context.Background(), &entity.Reservation{
		TableID: "t1", CustomerName: "Ayşe Demir", GuestCount: 2, Date: "2026-09-01", Time: "19:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rv.Status != entity.ReservationPending {
		t.Fatalf("status = %s, want pending", rv.Status)
	}
}

func TestReservationCreateValidation(t *testing.T) {
	_, svc := newReservationEnv(t)

	_, err := svc.Create(context.Background(), &entity.Reservation{GuestCount: 2})
	var val *ValidationError
	if !errors.As(err, &val) {
		t.Fatalf("missing name: want ValidationError, got %v", err)
	}

	_, err = svc.Create(context.Background(), &entity.Reservation{CustomerName: "Ali", GuestCount: 0})
	if !errors.As(err, &val) {
		t.Fatalf("zero guests: want ValidationError, got %v", err)
	}
}

func TestReservationConfirmReservesAvailableTable(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("tables", entity.Table{ID: "t1", Number: 1, Capacity: 4, Status: entity.TableAvailable})
	f.seed("reservations", entity.Reservation{ID: "r1", TableID: "t1", CustomerName: "Ali", GuestCount: 2, Status: entity.ReservationPending})

	rv, err := svc.UpdateStatus(context.Background(), "r1", entity.ReservationConfirmed)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if rv.Status != entity.ReservationConfirmed {
		t.Fatalf("status = %s", rv.Status)
	}
	if doc := f.doc("tables", "t1"); doc["status"] != "reserved" {
		t.Errorf("table status = %v, want reserved", doc["status"])
	}
}

func TestReservationConfirmLeavesOccupiedTableAlone(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("tables", entity.Table{ID: "t1", Number: 1, Capacity: 4, Status: entity.TableOccupied})
	f.seed("reservations", entity.Reservation{ID: "r1", TableID: "t1", CustomerName: "Ali", GuestCount: 2, Status: entity.ReservationPending})

	if _, err := svc.UpdateStatus(context.Background(), "r1", entity.ReservationConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if doc := f.doc("tables", "t1"); doc["status"] != "occupied" {
		t.Errorf("occupied table hijacked: %v", doc["status"])
	}
}

func TestReservationSeatingOccupiesTable(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("tables", entity.Table{ID: "t1", Number: 1, Capacity: 4, Status: entity.TableReserved})
	f.seed("reservations", entity.Reservation{ID: "r1", TableID: "t1", CustomerName: "Ali", GuestCount: 2, Status: entity.ReservationConfirmed})

	if _, err := svc.UpdateStatus(context.Background(), "r1", entity.ReservationSeated); err != nil {
		t.Fatalf("seat: %v", err)
	}
	if doc := f.doc("tables", "t1"); doc["status"] != "occupied" {
		t.Errorf("table status = %v, want occupied", doc["status"])
	}
}

func TestReservationNoShowReleasesReservedTable(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("tables", entity.Table{ID: "t1", Number: 1, Capacity: 4, Status: entity.TableReserved})
	f.seed("reservations", entity.Reservation{ID: "r1", TableID: "t1", CustomerName: "Ali", GuestCount: 2, Status: entity.ReservationConfirmed})

	if _, err := svc.UpdateStatus(context.Background(), "r1", entity.ReservationNoShow); err != nil {
		t.Fatalf("no-show: %v", err)
	}
	if doc := f.doc("tables", "t1"); doc["status"] != "available" {
		t.Errorf("table status = %v, want available", doc["status"])
	}
}

func TestReservationIllegalTransitionRejected(t *testing.T) {
	f, svc := newReservationEnv(t)
	f.seed("reservations", entity.Reservation{ID: "r1", CustomerName: "Ali", GuestCount: 2, Status: entity.ReservationPending})

	_, err := svc.UpdateStatus(context.Background(), "r1", entity.ReservationSeated)
	var inv *InvalidStateError
	if !errors.As(err, &inv) {
		t.Fatalf("pending -> seated: want InvalidStateError, got %v", err)
	}
}

func TestReservationListPaginates(t *testing.T) {
	f, svc := newReservationEnv(t)
	for i := 0; i < 25; i++ {
		f.seed("reservations", entity.Reservation{
			CustomerName: fmt.Sprintf("Misafir %d", i), GuestCount: 2, Status: entity.ReservationPending,
		})
	}

	page, err := svc.List(context.Background(), 2, 10, "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 25 {
		t.Errorf("total = %d, want 25", page.Total)
	}
	if len(page.Items) != 10 {
		t.Errorf("page size = %d, want 10", len(page.Items))
	}
	if page.Page != 2 || page.Limit != 10 {
		t.Errorf("page meta %d/%d", page.Page, page.Limit)
	}
}
