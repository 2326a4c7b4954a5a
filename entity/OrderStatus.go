package entity

type OrderStatus string

const (
	OrderPending          OrderStatus = "Pending"
	OrderConfirmed        OrderStatus = "Confirmed"
	OrderPreparing        OrderStatus = "Preparing"
	OrderReadyForDelivery OrderStatus = "ReadyForDelivery"
	OrderDelivering       OrderStatus = "Delivering"
	OrderDelivered        OrderStatus = "Delivered"
	OrderCancelled        OrderStatus = "Cancelled"
)

// OrderFlow is the delivery chain in order. Cancelled sits outside it.
var OrderFlow = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReadyForDelivery,
	OrderDelivering,
	OrderDelivered,
}

func (s OrderStatus) Valid() bool {
	if s == OrderCancelled {
		return true
	}
	return s.Step() >= 0
}

// Step is the position of s in OrderFlow, or -1.
func (s OrderStatus) Step() int {
	for i, st := range OrderFlow {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}
