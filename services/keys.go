package services

import (
	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/cache"
)

// Cache key factory. Keys are hierarchical by prefix: invalidating
// KeyOrders covers every filtered orders key as well.
const (
	KeyTables        cache.Key = "tables"
	KeyOrders        cache.Key = "orders"
	KeyMenu          cache.Key = "menu"
	KeyCategories    cache.Key = "categories"
	KeyKitchen       cache.Key = "kitchen"
	KeyReservations  cache.Key = "reservations"
	KeyDiscounts     cache.Key = "discounts"
	KeyPayments      cache.Key = "payments"
	KeyNotifications cache.Key = "notifications"
	KeyInventory     cache.Key = "inventory"
)

func keyOrdersByTable(tableID string) cache.Key {
	return KeyOrders + "|table=" + cache.Key(tableID)
}

func keyOrdersByStatus(status entity.OrderStatus) cache.Key {
	return KeyOrders + "|status=" + cache.Key(status)
}

func keyMenuByCategory(categoryID string) cache.Key {
	return KeyMenu + "|category=" + cache.Key(categoryID)
}
