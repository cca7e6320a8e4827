package repository

import (
	"context"
	"net/url"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/rest"
)

type NotificationRepository struct {
	api *rest.Client
}

func NewNotificationRepository(api *rest.Client) *NotificationRepository {
	return &NotificationRepository{api: api}
}

// GET /notifications?_sort=createdAt&_order=desc
func (r *NotificationRepository) List(ctx context.Context) ([]entity.Notification, error) {
	q := url.Values{"_sort": {"createdAt"}, "_order": {"desc"}}
	var out []entity.Notification
	err := r.api.Get(ctx, "/notifications", q, &out)
	return out, err
}

// GET /notifications?read=false
func (r *NotificationRepository) ListUnread(ctx context.Context) ([]entity.Notification, error) {
	q := url.Values{"read": {"false"}, "_sort": {"createdAt"}, "_order": {"desc"}}
	var out []entity.Notification
	err := r.api.Get(ctx, "/notifications", q, &out)
	return out, err
}

// POST /notifications
func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	var out entity.Notification
	if err := r.api.Post(ctx, "/notifications", n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PATCH /notifications/:id
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	var out entity.Notification
	if err := r.api.Patch(ctx, "/notifications/"+id, map[string]any{"read": true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DELETE /notifications/:id
func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/notifications/"+id)
}
