package domain

// Order is a unit of work requested by a customer and carried out by an executor.
// CustomerID and ExecutorID point at users but are not enforced by the store.
type Order struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	CustomerID  int64   `json:"customer_id"`
	ExecutorID  int64   `json:"executor_id"`
}
