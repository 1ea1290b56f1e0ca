package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──> Confirmed ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │             │                │
//	   └────────────┴─────────────┴────────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

// TransitionPolicy selects how ChangeStatus treats edges missing from the table.
type TransitionPolicy int

const (
	// Strict accepts only edges of the transition table.
	Strict TransitionPolicy = iota
	// Permissive accepts any valid target status.
	Permissive
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Confirmed:      "confirmed",
	Preparing:      "preparing",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
	Cancelled:      "cancelled",
}

// transitions is the adjacency table of legal status changes.
var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {OutForDelivery, Cancelled},
	OutForDelivery: {Delivered, Cancelled},
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// OpenStatuses is the pending set: every status that is neither delivered nor cancelled.
func OpenStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery}
}

// ParseStatus converts the wire name (e.g. "out_for_delivery") into a Status.
// Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range statusNames {
		if name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is an edge of the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ValidateTransition checks the change s -> next under policy.
func (s Status) ValidateTransition(next Status, policy TransitionPolicy) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if policy == Permissive {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewInvalidStateError(fmt.Sprintf("order is already %s", s))
	}
	if !s.CanTransitionTo(next) {
		return errs.NewInvalidStateError(fmt.Sprintf("cannot change status from %s to %s", s, next))
	}
	return nil
}

// ParseTransitionPolicy accepts "strict" or "permissive".
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return Strict, errs.NewValueIsInvalidErrorWithCause("transition policy", fmt.Errorf("%q is not strict or permissive", s))
	}
}

func (p TransitionPolicy) String() string {
	if p == Permissive {
		return "permissive"
	}
	return "strict"
}
