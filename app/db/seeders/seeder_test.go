package seeders_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/Rakhulsr/go-catalog/app/db/fakers"
	"github.com/Rakhulsr/go-catalog/app/db/seeders"
	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
)

func TestDBSeed(t *testing.T) {
	c := qt.New(t)
	db := testdb.Open(t)

	counts := func() map[string]int64 {
		out := map[string]int64{}
		for name, model := range map[string]interface{}{
			"categories":         &models.Category{},
			"sub_categories":     &models.SubCategory{},
			"products":           &models.Product{},
			"product_attributes": &models.ProductAttribute{},
			"inventory_items":    &models.InventoryItem{},
		} {
			var n int64
			c.Assert(db.Model(model).Count(&n).Error, qt.IsNil)
			out[name] = n
		}
		return out
	}

	want := map[string]int64{
		"categories":         3,
		"sub_categories":     5,
		"products":           5,
		"product_attributes": 5,
		"inventory_items":    4,
	}

	c.Assert(seeders.DBSeed(db), qt.IsNil)
	c.Assert(counts(), qt.DeepEquals, want)

	// seeding again starts from a clean catalog
	c.Assert(seeders.DBSeed(db), qt.IsNil)
	c.Assert(counts(), qt.DeepEquals, want)

	var iphone models.Product
	c.Assert(db.Preload("InventoryItem").First(&iphone, "name = ?", "iPhone 13").Error, qt.IsNil)
	c.Assert(iphone.Brand, qt.Equals, "Apple")
	c.Assert(iphone.Price.String(), qt.Equals, "999.99")
	c.Assert(iphone.InventoryItem.Quantity, qt.Equals, 100)
	c.Assert(iphone.InventoryItem.MinThreshold, qt.Equals, 20)

	c.Assert(seeders.Wipe(db), qt.IsNil)
	for name, n := range counts() {
		c.Assert(n, qt.Equals, int64(0), qt.Commentf("%s", name))
	}
}

func TestFakeProducts(t *testing.T) {
	c := qt.New(t)
	db := testdb.Open(t)

	products, err := fakers.FakeProducts(db, 12)
	c.Assert(err, qt.IsNil)
	c.Assert(products, qt.HasLen, 12)

	var items int64
	c.Assert(db.Model(&models.InventoryItem{}).Count(&items).Error, qt.IsNil)
	c.Assert(items, qt.Equals, int64(12))

	for _, p := range products {
		c.Assert(p.Price.IsNegative(), qt.IsFalse)
		c.Assert(p.SubCategoryID, qt.Not(qt.Equals), "")
	}

	_, err = fakers.FakeProducts(db, 0)
	c.Assert(err, qt.ErrorMatches, "product count must be positive, got 0")
}
