package repository

import (
	"github.com/northwind/dataservice/internal/dto"
	"github.com/northwind/dataservice/internal/model"
)

// Projection from scanned entities to the transfer shapes the services
// return. Entity-shaped reads scan into model structs and are mapped here;
// narrower reads scan straight into their dto projection.

func categoryDTO(c model.Category) dto.Category {
	return dto.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func productDTO(p model.Product, category *model.Category) dto.Product {
	product := dto.Product{
		ID:              p.ID,
		Name:            p.Name,
		UnitPrice:       p.UnitPrice,
		QuantityPerUnit: p.QuantityPerUnit,
		UnitsInStock:    p.UnitsInStock,
	}

	if category != nil {
		c := categoryDTO(*category)
		product.Category = &c
	}

	return product
}

func orderSummaryDTO(o model.Order) dto.OrderSummary {
	return dto.OrderSummary{
		ID:        o.ID,
		OrderDate: o.OrderDate,
		ShipName:  o.ShipName,
		ShipCity:  o.ShipCity,
	}
}

func orderWithDetailsDTO(o model.Order, details []dto.OrderDetailLine) dto.OrderWithDetails {
	return dto.OrderWithDetails{
		ID:        o.ID,
		OrderDate: o.OrderDate,
		ShipName:  o.ShipName,
		ShipCity:  o.ShipCity,
		Details:   details,
	}
}

func orderDetailLineDTO(d model.OrderDetail, productName string, categoryName *string) dto.OrderDetailLine {
	return dto.OrderDetailLine{
		ProductID:    d.ProductID,
		ProductName:  productName,
		UnitPrice:    d.UnitPrice,
		Quantity:     d.Quantity,
		Discount:     d.Discount,
		CategoryName: categoryName,
	}
}
