// Package models holds the wire types shared between the backend REST API,
// the client state stores and the HTTP adapter. Field names follow the
// backend's camelCase JSON contract.
package models

import "time"

// Product is the catalog entry served by the backend.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Article     string   `json:"article"`
	Price       Money    `json:"price"`
	OldPrice    *Money   `json:"oldPrice,omitempty"`
	Discount    int      `json:"discount"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Badges      []string `json:"badges"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
}

// Category groups catalog products.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// CartItem is one backend cart record for a user. quantity >= 1 always;
// updates below 1 are rejected before any request is sent.
type CartItem struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Price        Money  `json:"price"`
	Quantity     int    `json:"quantity"`
	UserID       string `json:"userId,omitempty"`
}

// WishlistItem is a membership record: its existence means the product is
// wishlisted by the user. At most one entry per (userId, productId).
type WishlistItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserID    string `json:"userId,omitempty"`
}

// OrderItem is one order line.
type OrderItem struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	Price        Money  `json:"price"`
	Quantity     int    `json:"quantity"`
}

// Order is the backend order record.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Items           []OrderItem `json:"items"`
	TotalAmount     Money       `json:"totalAmount"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	DeliveryAddress string      `json:"deliveryAddress"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderCreate is the payload for placing an order.
type OrderCreate struct {
	Items           []OrderItem `json:"items"`
	TotalAmount     Money       `json:"totalAmount"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerEmail   string      `json:"customerEmail"`
	DeliveryAddress string      `json:"deliveryAddress"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           string      `json:"notes,omitempty"`
	UserID          string      `json:"userId"`
}

// QuickOrder is the one-tap order form (name + phone only).
type QuickOrder struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Quantity      int       `json:"quantity"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// City is an ephemeral address lookup result.
type City struct {
	Ref    string `json:"ref"`
	Name   string `json:"name"`
	NameRu string `json:"nameRu,omitempty"`
	Area   string `json:"area"`
	Region string `json:"region,omitempty"`
}

// Warehouse is a pickup branch within a city. A warehouse selection is only
// meaningful together with its owning city.
type Warehouse struct {
	Ref          string `json:"ref"`
	Description  string `json:"description"`
	ShortAddress string `json:"shortAddress"`
	Number       string `json:"number"`
	CityRef      string `json:"cityRef"`
}

// CMSPage is an editable content page.
type CMSPage struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// BlogPost is a published article.
type BlogPost struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
