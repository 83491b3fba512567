package model

import (
	"fmt"
	"time"
)

// ItemStatus is the lifecycle state of a listed item.
type ItemStatus string

const (
	// StatusDisponivel: listed and open to reservation or purchase.
	StatusDisponivel ItemStatus = "DISPONIVEL"
	// StatusReservado: held by an interested user, still purchasable.
	StatusReservado ItemStatus = "RESERVADO"
	// StatusDoadoVendido: handed over. Terminal, no outgoing transitions.
	StatusDoadoVendido ItemStatus = "DOADO_VENDIDO"
)

// statusTransitions is the adjacency table of legal status changes.
// Self-transitions are not stored; CanTransition always permits them.
var statusTransitions = map[ItemStatus][]ItemStatus{
	StatusDisponivel:   {StatusReservado, StatusDoadoVendido},
	StatusReservado:    {StatusDisponivel, StatusDoadoVendido},
	StatusDoadoVendido: {},
}

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s ItemStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether the status change from -> to is legal.
// A transition to the same status is always permitted.
func CanTransition(from, to ItemStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AvailableFor keeps the available flag consistent with status: an item is
// available exactly when it is DISPONIVEL.
func AvailableFor(status ItemStatus) bool {
	return status == StatusDisponivel
}

// InvalidTransitionError names both endpoints of a rejected status change.
type InvalidTransitionError struct {
	From ItemStatus
	To   ItemStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// OwnerSummary is the public projection of an item's owner.
type OwnerSummary struct {
	ID    int64
	Name  string
	Email string
}

// Item is a listed second-hand good owned by exactly one user.
type Item struct {
	ID          int64
	Title       string
	Description string
	Price       float64
	Available   bool
	Status      ItemStatus
	ImageURL    string
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Owner is the joined public projection of the owning user.
	Owner OwnerSummary
}
