package orderControllers

import "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"

// Actor is the verified caller, as supplied by the auth middleware.
type Actor struct {
	ID   uint
	Role models.Role
}

// sellerItemTransitions is the table-driven policy for sellers: begin
// preparing, ship, or cancel. Shipping additionally requires the item payment
// to be confirmed (checked in TransitionItem, not here). Once an item is
// shipped the seller can no longer move it; delivery is confirmed by the
// buyer at the order level.
var sellerItemTransitions = map[models.ItemStatus]map[models.ItemStatus]bool{
	models.ItemStatusPending: {
		models.ItemStatusProcessing: true,
		models.ItemStatusCancelled:  true,
	},
	models.ItemStatusProcessing: {
		models.ItemStatusShipped:   true,
		models.ItemStatusCancelled: true,
	},
}

// CanTransition evaluates the per-role transition policy once per request.
// Admins bypass every guard. Buyers never move items directly; they act
// through order-level cancellation and delivery confirmation.
func CanTransition(role models.Role, from, to models.ItemStatus) bool {
	switch role {
	case models.RoleAdmin:
		return from != to
	case models.RoleSeller:
		return sellerItemTransitions[from][to]
	default:
		return false
	}
}

// buyerCanCancel reports whether the aggregate order status still admits a
// buyer-requested cancellation.
func buyerCanCancel(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusPartiallyCancelled:
		return true
	}
	return false
}
