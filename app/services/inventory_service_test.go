package services_test

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
)

func createProduct(c *qt.C, f *catalogFixture, name string) *models.Product {
	product, err := services.NewProductService(f.db).Create(context.Background(), services.ProductInput{
		Name:          name,
		Brand:         "Apple",
		Price:         decimal.NewFromInt(100),
		SubCategoryID: f.phones,
	})
	c.Assert(err, qt.IsNil)
	return product
}

func intPtr(v int) *int {
	return &v
}

func TestUpdateStockUpserts(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newCatalog(c)
	svc := services.NewInventoryService(f.db)
	product := createProduct(c, f, "iPhone 13")

	item, created, err := svc.UpdateStock(ctx, services.StockInput{ProductID: product.ID, Quantity: 100, MinThreshold: 20})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	c.Assert(item.Quantity, qt.Equals, 100)
	c.Assert(item.MinThreshold, qt.Equals, 20)
	c.Assert(item.LastRestockDate, qt.IsNotNil)
	c.Assert(item.Product, qt.IsNotNil)
	c.Assert(item.Product.Name, qt.Equals, "iPhone 13")
	c.Assert(item.Product.Brand, qt.Equals, "Apple")

	again, created, err := svc.UpdateStock(ctx, services.StockInput{ProductID: product.ID, Quantity: 5, MinThreshold: 0})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)
	c.Assert(again.ID, qt.Equals, item.ID)
	c.Assert(again.Quantity, qt.Equals, 5)
	c.Assert(again.MinThreshold, qt.Equals, 0)

	items, err := svc.ListItems(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(items, qt.HasLen, 1)
}

func TestUpdateStockRejects(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newCatalog(c)
	svc := services.NewInventoryService(f.db)
	product := createProduct(c, f, "iPhone 13")

	_, _, err := svc.UpdateStock(ctx, services.StockInput{ProductID: product.ID, Quantity: -1, MinThreshold: -2})
	var verr *services.ValidationError
	c.Assert(errors.As(err, &verr), qt.IsTrue)
	c.Assert(verr.Details, qt.HasLen, 2)

	_, _, err = svc.UpdateStock(ctx, services.StockInput{ProductID: "missing", Quantity: 1, MinThreshold: 1})
	var refErr *services.ReferenceError
	c.Assert(errors.As(err, &refErr), qt.IsTrue)
}

func TestLowStock(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newCatalog(c)
	svc := services.NewInventoryService(f.db)

	stock := map[string][2]int{
		"below":  {3, 10},
		"equal":  {10, 10},
		"above":  {11, 10},
		"zeroed": {0, 0},
	}
	for name, qty := range stock {
		product := createProduct(c, f, name)
		_, _, err := svc.UpdateStock(ctx, services.StockInput{ProductID: product.ID, Quantity: qty[0], MinThreshold: qty[1]})
		c.Assert(err, qt.IsNil)
	}

	items, err := svc.LowStock(ctx)
	c.Assert(err, qt.IsNil)

	got := make([]string, 0, len(items))
	for _, item := range items {
		c.Assert(item.IsLowStock(), qt.IsTrue)
		got = append(got, item.Product.Name)
	}
	c.Assert(got, qt.ContentEquals, []string{"below", "equal", "zeroed"})
}

func TestInventoryItemCRUD(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newCatalog(c)
	svc := services.NewInventoryService(f.db)
	product := createProduct(c, f, "MacBook Pro")

	item, err := svc.CreateItem(ctx, services.InventoryItemInput{ProductID: product.ID, Quantity: 50, Location: "Entrepôt Paris"})
	c.Assert(err, qt.IsNil)
	c.Assert(item.MinThreshold, qt.Equals, models.DefaultMinThreshold)
	c.Assert(item.Location, qt.Equals, "Entrepôt Paris")

	_, err = svc.CreateItem(ctx, services.InventoryItemInput{ProductID: product.ID, Quantity: 1})
	var conflict *services.ConflictError
	c.Assert(errors.As(err, &conflict), qt.IsTrue)

	updated, err := svc.UpdateItem(ctx, item.ID, services.InventoryItemInput{Quantity: 7, MinThreshold: intPtr(3)})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Quantity, qt.Equals, 7)
	c.Assert(updated.MinThreshold, qt.Equals, 3)
	c.Assert(updated.Location, qt.Equals, "Entrepôt Paris")

	updated, err = svc.UpdateItem(ctx, item.ID, services.InventoryItemInput{Quantity: 8, Location: "Entrepôt Lyon"})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.MinThreshold, qt.Equals, 3)
	c.Assert(updated.Location, qt.Equals, "Entrepôt Lyon")

	_, err = svc.UpdateItem(ctx, item.ID, services.InventoryItemInput{Quantity: -8})
	var verr *services.ValidationError
	c.Assert(errors.As(err, &verr), qt.IsTrue)

	c.Assert(svc.DeleteItem(ctx, item.ID), qt.IsNil)
	_, err = svc.GetItem(ctx, item.ID)
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
	c.Assert(errors.Is(svc.DeleteItem(ctx, item.ID), services.ErrNotFound), qt.IsTrue)
}

func TestInventoryLocations(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	f := newCatalog(c)
	svc := services.NewInventoryService(f.db)

	lyon, err := svc.CreateLocation(ctx, services.InventoryInput{Name: "Lyon", Address: "1 rue de la Soie"})
	c.Assert(err, qt.IsNil)
	_, err = svc.CreateLocation(ctx, services.InventoryInput{Name: "Bordeaux"})
	c.Assert(err, qt.IsNil)

	all, err := svc.ListLocations(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 2)
	c.Assert(all[0].Name, qt.Equals, "Bordeaux")

	updated, err := svc.UpdateLocation(ctx, lyon.ID, services.InventoryInput{Name: "Lyon Est", Description: "quai"})
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Name, qt.Equals, "Lyon Est")
	c.Assert(updated.Address, qt.Equals, "")

	c.Assert(svc.DeleteLocation(ctx, lyon.ID), qt.IsNil)
	_, err = svc.GetLocation(ctx, lyon.ID)
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
}
