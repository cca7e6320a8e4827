package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
	"github.com/asliq/akilli-garson/repository"
)

// Orders change often: short stale time.
const orderStale = 30 * time.Second

type OrderService struct {
	Cache     *cache.Store
	Repo      *repository.OrderRepository
	Tables    *repository.TableRepository
	Menu      *repository.MenuRepository
	Kitchen   *repository.KitchenRepository
	Discounts *DiscountService

	log *slog.Logger
}

func NewOrderService(
	store *cache.Store,
	repo *repository.OrderRepository,
	tables *repository.TableRepository,
	menu *repository.MenuRepository,
	kitchen *repository.KitchenRepository,
	discounts *DiscountService,
	log *slog.Logger,
) *OrderService {
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{
		Cache:     store,
		Repo:      repo,
		Tables:    tables,
		Menu:      menu,
		Kitchen:   kitchen,
		Discounts: discounts,
		log:       log,
	}
}

// ----- Reads -----

func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	v, err := s.Cache.Fetch(ctx, KeyOrders, orderStale, func(ctx context.Context) (any, error) {
		return s.Repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Order), nil
}

func (s *OrderService) ListByTable(ctx context.Context, tableID string) ([]entity.Order, error) {
	v, err := s.Cache.Fetch(ctx, keyOrdersByTable(tableID), orderStale, func(ctx context.Context) (any, error) {
		return s.Repo.ListByTable(ctx, tableID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Order), nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	v, err := s.Cache.Fetch(ctx, keyOrdersByStatus(status), orderStale, func(ctx context.Context) (any, error) {
		return s.Repo.ListByStatus(ctx, status)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Order), nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.Repo.Get(ctx, id)
}

// ----- Create -----

type OrderItemIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderReq struct {
	TableID      string        `json:"tableId" binding:"required"`
	WaiterID     string        `json:"waiterId"`
	WaiterName   string        `json:"waiterName"`
	Notes        string        `json:"notes"`
	DiscountCode string        `json:"discountCode"`
	Items        []OrderItemIn `json:"items" binding:"required"`
}

// Create places a new pending order. Unit prices are captured from the menu
// at this moment and never re-derived. If the table is available it becomes
// occupied; occupied and reserved tables are left alone, orders may stack.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Field: "items", Msg: "required"}
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, &ValidationError{Field: "quantity", Msg: "must be at least 1"}
		}
	}

	table, err := s.Tables.Get(ctx, req.TableID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		TableID:    req.TableID,
		WaiterID:   req.WaiterID,
		WaiterName: req.WaiterName,
		Notes:      req.Notes,
		Status:     entity.OrderPending,
		CreatedAt:  time.Now().UTC(),
	}
	for _, in := range req.Items {
		mi, err := s.Menu.Get(ctx, in.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !mi.IsAvailable {
			return nil, &ValidationError{Field: "items", Msg: mi.Name + " is out of stock"}
		}
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Quantity:   in.Quantity,
			Price:      mi.Price,
			Status:     entity.ItemPending,
			Notes:      in.Notes,
		})
	}
	order.Recalculate()

	if req.DiscountCode != "" {
		d, err := s.Discounts.GetByCode(ctx, req.DiscountCode)
		if err != nil {
			return nil, err
		}
		order.DiscountID = d.ID
		order.DiscountAmount = ApplyDiscount(d, order.Subtotal, time.Now())
		order.Recalculate()
	}

	created, err := s.Repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	// kitchen ticket mirrors the order's item sequence
	if _, err := s.Kitchen.Create(ctx, &entity.KitchenOrder{
		OrderID:     created.ID,
		TableNumber: table.Number,
		Items:       created.Items,
		Notes:       created.Notes,
		CreatedAt:   created.CreatedAt,
	}); err != nil {
		s.log.Warn("kitchen ticket create failed", "orderId", created.ID, "err", err)
	}

	if table.Status == entity.TableAvailable {
		if err := s.setTableStatus(ctx, table.ID, entity.TableOccupied); err != nil {
			s.log.Warn("table occupy failed", "tableId", table.ID, "err", err)
		}
	}

	s.Cache.Invalidate(KeyOrders)
	s.Cache.Invalidate(KeyKitchen)
	return created, nil
}

// ----- Item mutation -----

// AddItem appends an item (or raises the quantity of an existing one) to an
// order that is still pending or preparing. Anything later is rejected before
// any request is sent.
func (s *OrderService) AddItem(ctx context.Context, orderID string, in OrderItemIn) (*entity.Order, error) {
	if in.Quantity < 1 {
		return nil, &ValidationError{Field: "quantity", Msg: "must be at least 1"}
	}
	o, err := s.Repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderPending && o.Status != entity.OrderPreparing {
		return nil, &InvalidStateError{Op: "add item", Current: string(o.Status)}
	}

	merged := false
	for i := range o.Items {
		if o.Items[i].MenuItemID == in.MenuItemID {
			o.Items[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		mi, err := s.Menu.Get(ctx, in.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !mi.IsAvailable {
			return nil, &ValidationError{Field: "menuItemId", Msg: mi.Name + " is out of stock"}
		}
		o.Items = append(o.Items, entity.OrderItem{
			MenuItemID: mi.ID,
			Name:       mi.Name,
			Quantity:   in.Quantity,
			Price:      mi.Price,
			Status:     entity.ItemPending,
			Notes:      in.Notes,
		})
	}
	o.Recalculate()

	updated, err := s.Repo.Patch(ctx, orderID, map[string]any{
		"items":       o.Items,
		"subtotal":    o.Subtotal,
		"totalAmount": o.TotalAmount,
	})
	if err != nil {
		return nil, err
	}
	s.syncTicketItems(ctx, orderID, updated.Items)

	s.Cache.Invalidate(KeyOrders)
	s.Cache.Invalidate(KeyKitchen)
	return updated, nil
}

// RemoveItem drops an item and recomputes the total. Removing the last item
// leaves the order in place; cancellation is always an explicit action.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, menuItemID string) (*entity.Order, error) {
	o, err := s.Repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderPending && o.Status != entity.OrderPreparing {
		return nil, &InvalidStateError{Op: "remove item", Current: string(o.Status)}
	}

	kept := make([]entity.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		if it.MenuItemID != menuItemID {
			kept = append(kept, it)
		}
	}
	o.Items = kept
	o.Recalculate()

	updated, err := s.Repo.Patch(ctx, orderID, map[string]any{
		"items":       o.Items,
		"subtotal":    o.Subtotal,
		"totalAmount": o.TotalAmount,
	})
	if err != nil {
		return nil, err
	}
	s.syncTicketItems(ctx, orderID, updated.Items)

	s.Cache.Invalidate(KeyOrders)
	s.Cache.Invalidate(KeyKitchen)
	return updated, nil
}

// Delete removes an order outright. This is a distinct staff action, not a
// cancellation: no table side effects fire.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	err := s.Cache.Mutate(ctx, KeyOrders,
		func(current any) any {
			old, _ := current.([]entity.Order)
			kept := make([]entity.Order, 0, len(old))
			for _, o := range old {
				if o.ID != id {
					kept = append(kept, o)
				}
			}
			return kept
		},
		func(ctx context.Context) (any, error) {
			return nil, s.Repo.Delete(ctx, id)
		},
	)
	if err != nil {
		return err
	}

	if tickets, terr := s.Kitchen.ListByOrder(ctx, id); terr == nil {
		for _, t := range tickets {
			if derr := s.Kitchen.Delete(ctx, t.ID); derr != nil {
				s.log.Warn("kitchen ticket delete failed", "ticketId", t.ID, "err", derr)
			}
		}
	}

	s.Cache.Invalidate(KeyOrders)
	s.Cache.Invalidate(KeyKitchen)
	return nil
}

// syncTicketItems keeps the kitchen ticket's item sequence aligned after an
// order item mutation. Preparation statuses of surviving items are preserved
// by the server-side merge of the patch.
func (s *OrderService) syncTicketItems(ctx context.Context, orderID string, items []entity.OrderItem) {
	tickets, err := s.Kitchen.ListByOrder(ctx, orderID)
	if err != nil || len(tickets) == 0 {
		return
	}
	if _, err := s.Kitchen.Patch(ctx, tickets[0].ID, map[string]any{"items": items}); err != nil {
		s.log.Warn("kitchen ticket sync failed", "orderId", orderID, "err", err)
	}
}
