package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type ReservationRepository struct {
	api *rest.Client
}

func NewReservationRepository(api *rest.Client) *ReservationRepository {
	return &ReservationRepository{api: api}
}

// ReservationPage is one page of the reservation list; Total comes from the
// store's X-Total-Count response header.
type ReservationPage struct {
	Items []entity.Reservation `json:"items"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Total int                  `json:"total"`
}

// GET /reservations?_page=&_limit=[&status=][&date=]
func (r *ReservationRepository) List(ctx context.Context, page, limit int, status entity.ReservationStatus, date string) (*ReservationPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(limit))
	if status != "" {
		q.Set("status", string(status))
	}
	if date != "" {
		q.Set("date", date)
	}

	var items []entity.Reservation
	hdr, err := r.api.GetWithHeader(ctx, "/reservations", q, &items)
	if err != nil {
		return nil, err
	}
	total, _ := strconv.Atoi(hdr.Get("X-Total-Count"))
	return &ReservationPage{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// GET /reservations/:id
func (r *ReservationRepository) Get(ctx context.Context, id string) (*entity.Reservation, error) {
	var out entity.Reservation
	if err := r.api.Get(ctx, "/reservations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /reservations
func (r *ReservationRepository) Create(ctx context.Context, rv *entity.Reservation) (*entity.Reservation, error) {
	var out entity.Reservation
	if err := r.api.Post(ctx, "/reservations", rv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /reservations/:id
func (r *ReservationRepository) Patch(ctx context.Context, id string, fields map[string]any) (*entity.Reservation, error) {
	var out entity.Reservation
	if err := r.api.Patch(ctx, "/reservations/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /reservations/:id
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/reservations/"+id)
}
