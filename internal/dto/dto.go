// Package dto declares the transfer shapes returned by the service layer.
//
// Each shape carries exactly the columns the corresponding read operation
// projects; nothing else leaks through.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the {id, name, description} projection.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Product is the single-product projection with its category nested,
// or null when the product has no category.
type Product struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name"`
	UnitPrice       decimal.NullDecimal `json:"unitPrice"`
	QuantityPerUnit *string             `json:"quantityPerUnit"`
	UnitsInStock    int                 `json:"unitsInStock"`
	Category        *Category           `json:"category"`
}

// ProductInCategory is the projection used when listing a category's
// products; it carries the category name instead of the nested shape.
type ProductInCategory struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name"`
	UnitPrice       decimal.NullDecimal `json:"unitPrice"`
	QuantityPerUnit *string             `json:"quantityPerUnit"`
	UnitsInStock    int                 `json:"unitsInStock"`
	CategoryName    *string             `json:"categoryName"`
}

// ProductName is the minimal projection for name-substring search.
type ProductName struct {
	ProductName  string  `json:"productName"`
	CategoryName *string `json:"categoryName"`
}

// OrderSummary is the {id, order date, ship name, ship city} projection.
type OrderSummary struct {
	ID        int        `json:"id"`
	OrderDate *time.Time `json:"orderDate"`
	ShipName  string     `json:"shipName"`
	ShipCity  string     `json:"shipCity"`
}

// OrderDetailLine is a detail line with its product and category names.
type OrderDetailLine struct {
	ProductID    int             `json:"productId"`
	ProductName  string          `json:"productName"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	Discount     float64         `json:"discount"`
	CategoryName *string         `json:"categoryName"`
}

// OrderWithDetails is the order summary plus its detail lines.
type OrderWithDetails struct {
	ID        int               `json:"id"`
	OrderDate *time.Time        `json:"orderDate"`
	ShipName  string            `json:"shipName"`
	ShipCity  string            `json:"shipCity"`
	Details   []OrderDetailLine `json:"details"`
}

// OrderTree is the order with details resolved down to each product's
// category, used by the order-by-id read.
type OrderTree struct {
	ID      int               `json:"id"`
	Details []OrderTreeDetail `json:"details"`
}

// OrderTreeDetail is a detail line carrying the full product projection.
type OrderTreeDetail struct {
	Product OrderTreeProduct `json:"product"`
}

// OrderTreeProduct is the product slice of an OrderTree line.
type OrderTreeProduct struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// ProductSale is one sale of a product: the parent order's date plus the
// line's own unit price and quantity.
type ProductSale struct {
	OrderDate *time.Time      `json:"orderDate"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}
