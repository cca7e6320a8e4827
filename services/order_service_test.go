package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asliq/akilli-garson/entity"
)

func seedTable(e *env, id string, status entity.TableStatus) {
	e.store.seed("tables", entity.Table{ID: id, Number: 5, Capacity: 4, Status: status})
}

func seedMenuItem(e *env, id, name string, price float64, available bool) {
	e.store.seed("menuItems", entity.MenuItem{ID: id, Name: name, Price: price, CategoryID: "c1", IsAvailable: available})
}

func TestCreateOrderCapturesPricesAndComputesTotals(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Adana Kebap", 50, true)

	o, err := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if o.Status != entity.OrderPending {
		t.Errorf("status = %s, want pending", o.Status)
	}
	if o.Subtotal != 100 || o.TotalAmount != 100 {
		t.Errorf("subtotal=%v total=%v, want 100/100", o.Subtotal, o.TotalAmount)
	}
	if o.Items[0].Price != 50 || o.Items[0].Status != entity.ItemPending {
		t.Errorf("item not captured correctly: %+v", o.Items[0])
	}

	// table flips to occupied
	if doc := e.store.doc("tables", "t1"); doc["status"] != "occupied" {
		t.Errorf("table status = %v, want occupied", doc["status"])
	}
	// kitchen ticket mirrors the order
	if e.store.count("kitchenOrders") != 1 {
		t.Error("kitchen ticket not created")
	}
}

func TestCreateOrderLaterPriceChangeDoesNotAffectCapturedPrice(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Ayran", 20, true)

	o, err := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// menu price changes after capture
	menu := NewMenuService(e.cache, e.orders.Menu, nil)
	if err := menu.UpdatePrice(context.Background(), "m1", 35); err != nil {
		t.Fatalf("update price: %v", err)
	}

	got, err := e.orders.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Items[0].Price != 20 || got.Subtotal != 20 {
		t.Errorf("captured price drifted: %+v", got.Items[0])
	}
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Lahmacun", 40, false)

	_, err := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})

	var val *ValidationError
	if !errors.As(err, &val) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if e.store.count("orders") != 0 {
		t.Error("order reached the store despite rejection")
	}
}

func TestCreateOrderOnOccupiedTableStacks(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableOccupied)
	seedMenuItem(e, "m1", "Çay", 10, true)

	_, err := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create on occupied table: %v", err)
	}
	if doc := e.store.doc("tables", "t1"); doc["status"] != "occupied" {
		t.Errorf("table status = %v, want occupied untouched", doc["status"])
	}
}

func TestCreateOrderAppliesDiscountCode(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "İskender", 200, true)
	e.store.seed("discounts", entity.Discount{
		ID: "d1", Code: "YUZDE10", Type: entity.DiscountPercentage, Value: 10,
		StartDate: time.Now().Add(-time.Hour), EndDate: time.Now().Add(time.Hour), IsActive: true,
	})

	o, err := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID:      "t1",
		DiscountCode: "YUZDE10",
		Items:        []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.DiscountAmount != 20 || o.TotalAmount != 180 {
		t.Errorf("discount=%v total=%v, want 20/180", o.DiscountAmount, o.TotalAmount)
	}
	// applying never burns the code
	if doc := e.store.doc("discounts", "d1"); doc["usedCount"] != float64(0) {
		t.Errorf("usedCount moved on apply: %v", doc["usedCount"])
	}
}

func TestAddItemMergesQuantityForSameMenuItem(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Pide", 60, true)

	o, _ := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})

	updated, err := e.orders.AddItem(context.Background(), o.ID, OrderItemIn{MenuItemID: "m1", Quantity: 2})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if len(updated.Items) != 1 || updated.Items[0].Quantity != 3 {
		t.Fatalf("items not merged: %+v", updated.Items)
	}
	if updated.Subtotal != 180 {
		t.Errorf("subtotal = %v, want 180", updated.Subtotal)
	}
}

func TestAddItemToReadyOrderFailsBeforeAnyRequest(t *testing.T) {
	e := newEnv(t)
	e.store.seed("orders", entity.Order{
		ID: "o1", TableID: "t1", Status: entity.OrderReady,
		Items: []entity.OrderItem{{MenuItemID: "m1", Quantity: 1, Price: 10}},
	})

	_, err := e.orders.AddItem(context.Background(), "o1", OrderItemIn{MenuItemID: "m2", Quantity: 1})

	var inv *InvalidStateError
	if !errors.As(err, &inv) {
		t.Fatalf("want InvalidStateError, got %v", err)
	}
	if e.store.patchCount("orders") != 0 {
		t.Error("a patch was sent despite the guard")
	}
}

func TestRemoveLastItemLeavesOrderPendingWithZeroTotal(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Künefe", 80, true)

	o, _ := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})

	updated, err := e.orders.RemoveItem(context.Background(), o.ID, "m1")
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if len(updated.Items) != 0 {
		t.Fatalf("items remain: %+v", updated.Items)
	}
	if updated.TotalAmount != 0 {
		t.Errorf("total = %v, want 0", updated.TotalAmount)
	}
	if updated.Status != entity.OrderPending {
		t.Errorf("status = %s, empty order must stay pending", updated.Status)
	}
}

func TestDeleteOrderRemovesTicketWithoutTableSideEffects(t *testing.T) {
	e := newEnv(t)
	seedTable(e, "t1", entity.TableAvailable)
	seedMenuItem(e, "m1", "Mercimek", 30, true)

	o, _ := e.orders.Create(context.Background(), &CreateOrderReq{
		TableID: "t1",
		Items:   []OrderItemIn{{MenuItemID: "m1", Quantity: 1}},
	})

	if err := e.orders.Delete(context.Background(), o.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if e.store.count("orders") != 0 {
		t.Error("order still stored")
	}
	if e.store.count("kitchenOrders") != 0 {
		t.Error("kitchen ticket orphaned")
	}
	// deletion is not a close: the occupied table stays as-is
	if doc := e.store.doc("tables", "t1"); doc["status"] != "occupied" {
		t.Errorf("table status = %v, want occupied", doc["status"])
	}
}
