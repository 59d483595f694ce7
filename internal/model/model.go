// Package model declares the entities of the order-management schema.
//
// Column mapping lives in the migrations under internal/database;
// these structs are what the repository layer scans rows into.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Name is never empty when persisted.
type Category struct {
	ID          int
	Name        string
	Description *string
}

// Product belongs to at most one category.
type Product struct {
	ID              int
	Name            string
	CategoryID      *int
	UnitPrice       decimal.NullDecimal
	QuantityPerUnit *string
	UnitsInStock    int
	Discontinued    bool
}

// Order is a customer order. Its detail lines live in OrderDetail rows.
type Order struct {
	ID             int
	CustomerID     *string
	EmployeeID     *int
	OrderDate      *time.Time
	RequiredDate   *time.Time
	ShippedDate    *time.Time
	Freight        decimal.NullDecimal
	ShipName       string
	ShipAddress    string
	ShipCity       string
	ShipPostalCode string
	ShipCountry    string
}

// OrderDetail is one line of an order. The (OrderID, ProductID) pair is
// unique per order.
type OrderDetail struct {
	OrderID   int
	ProductID int
	UnitPrice decimal.Decimal
	Quantity  int
	Discount  float64
}
