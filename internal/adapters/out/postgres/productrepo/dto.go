// Package productrepo provides data transfer objects and mapping functions for
// catalog persistence. A row is one product's stock at one warehouse location,
// so the table carries a composite primary key of product id and location.
package productrepo

import (
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for a catalog stock record.
// Price is nullable: seed data may carry unpriced records and the domain
// rejects them only when an order actually touches them.
type ProductDTO struct {
	ProductID int    `gorm:"primaryKey;autoIncrement:false"`
	Location  string `gorm:"primaryKey;size:32"`
	Name      string
	Price     *float64
	Quantity  int
}

// TableName specifies the database table name for catalog records.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product stock record to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ProductID: aggregate.ID(),
		Location:  aggregate.Location().String(),
		Name:      aggregate.Name(),
		Price:     aggregate.Price(),
		Quantity:  aggregate.Quantity(),
	}
}

// toDomain converts a database DTO to a product stock record using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ProductID,
		kernel.Location(dto.Location),
		dto.Name,
		dto.Price,
		dto.Quantity,
	)
}
