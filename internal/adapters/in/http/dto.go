package http

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CartItem is one cart line. Only the first item's restaurant id is read.
type CartItem struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id" validate:"required"`
	Quantity     int   `json:"quantity" validate:"required,max=10000"`
}

type QuoteRequest struct {
	Items []CartItem `json:"items" validate:"required,min=1,dive"`
}

type Restaurant struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	DeliveryFee int64  `json:"delivery_fee"`
}

type QuotedProduct struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	Active      bool   `json:"active"`
	Quantity    int    `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
}

type Quote struct {
	Restaurant Restaurant      `json:"restaurant"`
	Products   []QuotedProduct `json:"products"`
	Subtotal   int64           `json:"subtotal"`
	Total      int64           `json:"total"`
}

// Numeric fields are pointers so that a missing field can be told apart from zero.
type SubmittedProduct struct {
	ID       *int64 `json:"id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required,max=10000"`
	Price    *int64 `json:"price" validate:"required"`
	Subtotal *int64 `json:"subtotal" validate:"required"`
}

type NewOrder struct {
	RestaurantID *int64             `json:"restaurant_id" validate:"required"`
	Subtotal     *int64             `json:"subtotal" validate:"required"`
	DeliveryFee  *int64             `json:"delivery_fee" validate:"required"`
	Total        *int64             `json:"total" validate:"required"`
	Products     []SubmittedProduct `json:"products" validate:"required,min=1,dive"`
}

type OrderItem struct {
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
}

type Order struct {
	OrderID         int64       `json:"order_id"`
	RestaurantName  string      `json:"restaurant_name"`
	RestaurantImage string      `json:"restaurant_image"`
	CategoryImage   string      `json:"category_image"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"delivery_fee"`
	Total           int64       `json:"total"`
	OutForDelivery  bool        `json:"out_for_delivery"`
	Delivered       bool        `json:"delivered"`
	Items           []OrderItem `json:"items"`
}

// ListOrdersParams are the query parameters of GET /api/v1/orders.
type ListOrdersParams struct {
	// Delivered defaults to false.
	Delivered *bool `form:"delivered,omitempty" json:"delivered,omitempty"`
}

func (r QuoteRequest) toCartLines() []services.CartLine {
	lines := make([]services.CartLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, services.CartLine{
			RestaurantID: item.RestaurantID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
		})
	}
	return lines
}

func (o NewOrder) toSubmission() services.OrderSubmission {
	submission := services.OrderSubmission{
		RestaurantID: *o.RestaurantID,
		Subtotal:     kernel.Money(*o.Subtotal),
		DeliveryFee:  kernel.Money(*o.DeliveryFee),
		Total:        kernel.Money(*o.Total),
		Products:     make([]services.SubmittedProduct, 0, len(o.Products)),
	}
	for _, p := range o.Products {
		submission.Products = append(submission.Products, services.SubmittedProduct{
			ProductID: *p.ID,
			Quantity:  *p.Quantity,
			Price:     kernel.Money(*p.Price),
			Subtotal:  kernel.Money(*p.Subtotal),
		})
	}
	return submission
}

func quoteFromDomain(q services.Quote) Quote {
	response := Quote{
		Restaurant: Restaurant{
			ID:          q.Restaurant.ID,
			CategoryID:  q.Restaurant.CategoryID,
			Name:        q.Restaurant.Name,
			Image:       q.Restaurant.Image,
			DeliveryFee: q.Restaurant.DeliveryFee.Cents(),
		},
		Products: make([]QuotedProduct, len(q.Lines)),
		Subtotal: q.Subtotal.Cents(),
		Total:    q.Total.Cents(),
	}
	for i, line := range q.Lines {
		response.Products[i] = QuotedProduct{
			ID:          line.Product.ID,
			Name:        line.Product.Name,
			Description: line.Product.Description,
			Image:       line.Product.Image,
			Price:       line.Product.Price.Cents(),
			Active:      line.Product.Active,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal.Cents(),
		}
	}
	return response
}

func ordersFromViews(views []ports.OrderView) []Order {
	response := make([]Order, len(views))
	for i, v := range views {
		items := make([]OrderItem, len(v.Items))
		for j, item := range v.Items {
			items[j] = OrderItem{
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Quantity:     item.Quantity,
				Subtotal:     item.Subtotal.Cents(),
			}
		}

		response[i] = Order{
			OrderID:         v.OrderID,
			RestaurantName:  v.RestaurantName,
			RestaurantImage: v.RestaurantImage,
			CategoryImage:   v.CategoryImage,
			Subtotal:        v.Subtotal.Cents(),
			DeliveryFee:     v.DeliveryFee.Cents(),
			Total:           v.Total.Cents(),
			OutForDelivery:  v.OutForDelivery,
			Delivered:       v.Delivered,
			Items:           items,
		}
	}
	return response
}
