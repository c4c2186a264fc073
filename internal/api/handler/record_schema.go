package handler

import "github.com/recordhub/records-api/internal/core/domain"

// Request bodies use pointers so a missing key or null is told apart from a
// zero value. Every field is required: updates replace the whole record.

type userRequest struct {
	ID        *int64  `json:"id"         validate:"required"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name"  validate:"required"`
	Age       *int    `json:"age"        validate:"required"`
	Email     *string `json:"email"      validate:"required"`
	Role      *string `json:"role"       validate:"required"`
	Phone     *string `json:"phone"      validate:"required"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{
		ID:        *r.ID,
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Age:       *r.Age,
		Email:     *r.Email,
		Role:      *r.Role,
		Phone:     *r.Phone,
	}
}

type orderRequest struct {
	ID          *int64       `json:"id"          validate:"required"`
	Description *string      `json:"description" validate:"required"`
	StartDate   *domain.Date `json:"start_date"  validate:"required" swaggertype:"string" example:"01/15/2024"`
	EndDate     *domain.Date `json:"end_date"    validate:"required" swaggertype:"string" example:"02/20/2024"`
	Address     *string      `json:"address"     validate:"required"`
	Price       *float64     `json:"price"       validate:"required"`
	CustomerID  *int64       `json:"customer_id" validate:"required"`
	ExecutorID  *int64       `json:"executor_id" validate:"required"`
}

func (r orderRequest) toDomain() domain.Order {
	return domain.Order{
		ID:          *r.ID,
		Description: *r.Description,
		StartDate:   *r.StartDate,
		EndDate:     *r.EndDate,
		Address:     *r.Address,
		Price:       *r.Price,
		CustomerID:  *r.CustomerID,
		ExecutorID:  *r.ExecutorID,
	}
}

type offerRequest struct {
	ID         *int64 `json:"id"          validate:"required"`
	OrderID    *int64 `json:"order_id"    validate:"required"`
	ExecutorID *int64 `json:"executor_id" validate:"required"`
}

func (r offerRequest) toDomain() domain.Offer {
	return domain.Offer{
		ID:         *r.ID,
		OrderID:    *r.OrderID,
		ExecutorID: *r.ExecutorID,
	}
}
