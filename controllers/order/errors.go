package orderControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// Failure modes of the order engine. Every error is scoped to one request;
// nothing here is fatal at the process level.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrGameNotFound          = errors.New("game not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrReasonRequired        = errors.New("cancellation reason is required")
	ErrPaymentNotConfirmed   = errors.New("item payment is not confirmed")
	ErrConcurrentUpdate      = errors.New("order item was modified concurrently, retry")
)

// InvalidTransitionError identifies the status that blocked a requested
// change instead of silently no-op-ing.
type InvalidTransitionError struct {
	From models.ItemStatus
	To   models.ItemStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move item from %q to %q", e.From, e.To)
}

// InvalidOrderStateError is the order-level counterpart, used when a buyer
// operation is blocked by the order's aggregate status.
type InvalidOrderStateError struct {
	Status models.OrderStatus
	Action string
}

func (e *InvalidOrderStateError) Error() string {
	return fmt.Sprintf("cannot %s an order in status %q", e.Action, e.Status)
}

// StatusCode maps engine errors onto HTTP statuses so handlers stay uniform.
func StatusCode(err error) int {
	var it *InvalidTransitionError
	var os *InvalidOrderStateError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrConcurrentUpdate),
		errors.Is(err, ErrPaymentNotConfirmed),
		errors.As(err, &it),
		errors.As(err, &os):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidShippingMethod),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrReasonRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
