package domain

// Offer links an executor to an order they propose to fulfil.
type Offer struct {
	ID         int64 `json:"id"`
	OrderID    int64 `json:"order_id"`
	ExecutorID int64 `json:"executor_id"`
}
