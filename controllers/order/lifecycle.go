package orderControllers

import (
	"errors"

	"github.com/Pavan17153/SS/models"
)

var ErrInvalidStatus = errors.New("invalid order status")

// ParseStatus maps a request string onto a known status. Matching is exact:
// "Cancelled" keeps its capital C because that is what the admin console and
// historical rows carry.
func ParseStatus(status string) (models.OrderStatus, error) {
	switch status {
	case string(models.OrderStatusPaid):
		return models.OrderStatusPaid, nil
	case string(models.OrderStatusUnshipped):
		return models.OrderStatusUnshipped, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// transitions is the full lifecycle: paid fans out into fulfilment,
// unshipped and shipped can be corrected back and forth, delivered and
// Cancelled are terminal.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPaid:      {models.OrderStatusUnshipped, models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusUnshipped: {models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusShipped:   {models.OrderStatusUnshipped, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

func CanTransition(from, to models.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CustomerCanCancel is stricter than the admin rules: once fulfilment has
// shipped the goods, cancellation goes through support, not self-service.
func CustomerCanCancel(status models.OrderStatus) bool {
	return status == models.OrderStatusPaid || status == models.OrderStatusUnshipped
}
