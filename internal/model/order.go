package model

import "time"

// OrderStatusNew is the status every order is created with. Status is
// free text in storage; "new" is the only value the application writes
// today.
const OrderStatusNew = "new"

// Order represents a customer order for a single product.
type Order struct {
	ID           int64      `json:"id" db:"id"`
	CustomerID   int64      `json:"customerId" db:"customer_id"`
	ProductID    int64      `json:"productId" db:"product_id"`
	Status       string     `json:"status" db:"status"`
	Quantity     int        `json:"quantity" db:"quantity"`
	Address      string     `json:"address" db:"address"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty" db:"delivery_date"`
	DeliveryTime *string    `json:"deliveryTime,omitempty" db:"delivery_time"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty" db:"confirmed_at"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty" db:"delivered_at"`
}

// OrderDetail bundles an order with its review, if one has been left.
type OrderDetail struct {
	Order  Order   `json:"order"`
	Review *Review `json:"review,omitempty"`
}
