package domain

import "strings"

type OrderStatus string

const (
	OrderActive    OrderStatus = "ACTIVE"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCanceled  OrderStatus = "CANCELED"
	OrderExpired   OrderStatus = "EXPIRED"
)

// Normalize folds the spelling variants the upstream uses into one value.
func (s OrderStatus) Normalize() OrderStatus {
	switch strings.ToUpper(strings.TrimSpace(string(s))) {
	case "COMPLETED", "RECEIVED", "SUCCESS":
		return OrderCompleted
	case "CANCELED", "CANCELLED":
		return OrderCanceled
	case "EXPIRED", "TIMEOUT":
		return OrderExpired
	case "ACTIVE", "PENDING", "WAITING", "":
		return OrderActive
	default:
		return OrderStatus(strings.ToUpper(string(s)))
	}
}

func (s OrderStatus) IsCompleted() bool { return s.Normalize() == OrderCompleted }

func (s OrderStatus) IsCanceled() bool { return s.Normalize() == OrderCanceled }

// IsFinal reports whether the order can no longer change.
func (s OrderStatus) IsFinal() bool {
	n := s.Normalize()
	return n == OrderCompleted || n == OrderCanceled || n == OrderExpired
}

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositSuccess  DepositStatus = "success"
	DepositCanceled DepositStatus = "canceled"
	DepositExpired  DepositStatus = "expired"
)

func (s DepositStatus) Normalize() DepositStatus {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "success", "paid", "settled":
		return DepositSuccess
	case "canceled", "cancelled":
		return DepositCanceled
	case "expired":
		return DepositExpired
	default:
		return DepositPending
	}
}
