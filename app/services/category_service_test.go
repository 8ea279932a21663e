package services_test

import (
	"context"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Rakhulsr/go-catalog/app/db/testdb"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/services"
)

func subNames(subs []models.SubCategory) []string {
	names := make([]string, 0, len(subs))
	for _, s := range subs {
		names = append(names, s.Name)
	}
	return names
}

var errInjected = errors.New("injected insert failure")

// failNthInsert makes the nth insert into table fail.
func failNthInsert(c *qt.C, db *gorm.DB, table string, n int) {
	seen := 0
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		seen++
		if seen == n {
			tx.AddError(errInjected)
		}
	})
	c.Assert(err, qt.IsNil)
}

func countRows(c *qt.C, db *gorm.DB, model interface{}) int64 {
	var n int64
	c.Assert(db.Model(model).Count(&n).Error, qt.IsNil)
	return n
}

func TestCategoryCreateWithSubCategories(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := services.NewCategoryService(testdb.Open(t))

	category, err := svc.Create(ctx, services.CategoryInput{
		Name:        "Électronique",
		Description: "Produits électroniques",
		SubCategories: []services.SubCategoryInput{
			{Name: "Smartphones"},
			{Name: "Ordinateurs"},
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(category.ID, qt.Not(qt.Equals), "")
	c.Assert(category.SubCategories, qt.HasLen, 2)
	c.Assert(subNames(category.SubCategories), qt.ContentEquals, []string{"Smartphones", "Ordinateurs"})
	for _, sub := range category.SubCategories {
		c.Assert(sub.CategoryID, qt.Equals, category.ID)
	}

	all, err := svc.List(ctx, false)
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 1)
	c.Assert(all[0].SubCategories, qt.HasLen, 2)
}

func TestCategoryGetUnknown(t *testing.T) {
	c := qt.New(t)
	svc := services.NewCategoryService(testdb.Open(t))

	_, err := svc.Get(context.Background(), "missing")
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)

	_, err = svc.Update(context.Background(), "missing", services.CategoryInput{Name: "x"})
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)

	err = svc.Delete(context.Background(), "missing")
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
}

func TestCategoryUpdateReconcilesSubCategories(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)
	svc := services.NewCategoryService(db)
	products := services.NewProductService(db)

	category, err := svc.Create(ctx, services.CategoryInput{
		Name: "Maison",
		SubCategories: []services.SubCategoryInput{
			{Name: "Cuisine"},
			{Name: "Jardin"},
			{Name: "Salon"},
		},
	})
	c.Assert(err, qt.IsNil)

	byName := map[string]string{}
	for _, sub := range category.SubCategories {
		byName[sub.Name] = sub.ID
	}

	_, err = products.Create(ctx, services.ProductInput{
		Name:          "Robot",
		Price:         decimal.RequireFromString("299.99"),
		SubCategoryID: byName["Salon"],
	})
	c.Assert(err, qt.IsNil)

	result, err := svc.Update(ctx, category.ID, services.CategoryInput{
		Name:        "Maison & Jardin",
		Description: "Tout pour la maison",
		SubCategories: []services.SubCategoryInput{
			{ID: byName["Cuisine"], Name: "Cuisine équipée"},
			{Name: "Bureau"},
			{ID: "not-a-child", Name: "Intrus"},
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(result.Name, qt.Equals, "Maison & Jardin")
	c.Assert(result.Description, qt.Equals, "Tout pour la maison")

	// Jardin is removed, Salon survives because it still has a product
	c.Assert(subNames(result.SubCategories), qt.ContentEquals, []string{"Cuisine équipée", "Salon", "Bureau"})

	c.Assert(result.Warnings, qt.HasLen, 2)
	warned := map[string]services.ReconcileWarning{}
	for _, w := range result.Warnings {
		warned[w.SubCategoryID] = w
	}
	c.Assert(warned[byName["Salon"]].ProductCount, qt.Equals, int64(1))
	c.Assert(warned["not-a-child"].ProductCount, qt.Equals, int64(0))
}

func TestCategoryUpdateWithoutSubCategoriesKeepsThem(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := services.NewCategoryService(testdb.Open(t))

	category, err := svc.Create(ctx, services.CategoryInput{
		Name:          "Vêtements",
		SubCategories: []services.SubCategoryInput{{Name: "Hommes"}, {Name: "Femmes"}},
	})
	c.Assert(err, qt.IsNil)

	result, err := svc.Update(ctx, category.ID, services.CategoryInput{Name: "Mode"})
	c.Assert(err, qt.IsNil)
	c.Assert(result.Name, qt.Equals, "Mode")
	c.Assert(result.SubCategories, qt.HasLen, 2)
	c.Assert(result.Warnings, qt.HasLen, 0)

	result, err = svc.Update(ctx, category.ID, services.CategoryInput{Name: "Mode", SubCategories: []services.SubCategoryInput{}})
	c.Assert(err, qt.IsNil)
	c.Assert(result.SubCategories, qt.HasLen, 0)
}

func TestCategoryDeleteGuardsProducts(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)
	svc := services.NewCategoryService(db)
	products := services.NewProductService(db)

	category, err := svc.Create(ctx, services.CategoryInput{
		Name:          "Électronique",
		SubCategories: []services.SubCategoryInput{{Name: "Smartphones"}, {Name: "Vide"}},
	})
	c.Assert(err, qt.IsNil)

	var phones string
	for _, sub := range category.SubCategories {
		if sub.Name == "Smartphones" {
			phones = sub.ID
		}
	}
	product, err := products.Create(ctx, services.ProductInput{
		Name:          "iPhone 13",
		Price:         decimal.RequireFromString("999.99"),
		SubCategoryID: phones,
	})
	c.Assert(err, qt.IsNil)

	err = svc.Delete(ctx, category.ID)
	var conflict *services.ConflictError
	c.Assert(errors.As(err, &conflict), qt.IsTrue)
	c.Assert(conflict.Message, qt.Equals, "cannot delete category: it still has 1 product(s) in its sub-categories")

	// nothing was removed
	stored, err := svc.Get(ctx, category.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(stored.SubCategories, qt.HasLen, 2)

	c.Assert(products.Delete(ctx, product.ID), qt.IsNil)
	c.Assert(svc.Delete(ctx, category.ID), qt.IsNil)

	_, err = svc.Get(ctx, category.ID)
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
	_, err = svc.GetSubCategory(ctx, phones)
	c.Assert(errors.Is(err, services.ErrNotFound), qt.IsTrue)
}

func TestDeleteSubCategory(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)
	svc := services.NewCategoryService(db)

	category, err := svc.Create(ctx, services.CategoryInput{
		Name:          "Maison",
		SubCategories: []services.SubCategoryInput{{Name: "Cuisine"}, {Name: "Jardin"}},
	})
	c.Assert(err, qt.IsNil)
	kitchen, garden := category.SubCategories[0].ID, category.SubCategories[1].ID
	if category.SubCategories[0].Name != "Cuisine" {
		kitchen, garden = garden, kitchen
	}

	_, err = services.NewProductService(db).Create(ctx, services.ProductInput{
		Name:          "Poêle",
		Price:         decimal.NewFromInt(25),
		SubCategoryID: kitchen,
	})
	c.Assert(err, qt.IsNil)

	sub, err := svc.GetSubCategory(ctx, kitchen)
	c.Assert(err, qt.IsNil)
	c.Assert(sub.Products, qt.HasLen, 1)

	var conflict *services.ConflictError
	c.Assert(errors.As(svc.DeleteSubCategory(ctx, kitchen), &conflict), qt.IsTrue)
	c.Assert(svc.DeleteSubCategory(ctx, garden), qt.IsNil)
	c.Assert(errors.Is(svc.DeleteSubCategory(ctx, garden), services.ErrNotFound), qt.IsTrue)
}

func TestCategoryCreateIsAllOrNothing(t *testing.T) {
	c := qt.New(t)
	db := testdb.Open(t)
	svc := services.NewCategoryService(db)
	failNthInsert(c, db, "sub_categories", 2)

	_, err := svc.Create(context.Background(), services.CategoryInput{
		Name:          "Sport",
		SubCategories: []services.SubCategoryInput{{Name: "Vélo"}, {Name: "Course"}, {Name: "Natation"}},
	})
	c.Assert(errors.Is(err, errInjected), qt.IsTrue)
	c.Assert(countRows(c, db, &models.Category{}), qt.Equals, int64(0))
	c.Assert(countRows(c, db, &models.SubCategory{}), qt.Equals, int64(0))
}

func TestCategoryUpdateIsAllOrNothing(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	db := testdb.Open(t)
	svc := services.NewCategoryService(db)

	category, err := svc.Create(ctx, services.CategoryInput{
		Name:          "Maison",
		SubCategories: []services.SubCategoryInput{{Name: "Cuisine"}, {Name: "Jardin"}},
	})
	c.Assert(err, qt.IsNil)
	cuisine := category.SubCategories[0]
	if cuisine.Name != "Cuisine" {
		cuisine = category.SubCategories[1]
	}

	// Salon is inserted, Bureau fails
	failNthInsert(c, db, "sub_categories", 2)
	_, err = svc.Update(ctx, category.ID, services.CategoryInput{
		Name: "Habitat",
		SubCategories: []services.SubCategoryInput{
			{ID: cuisine.ID, Name: "Cuisine équipée"},
			{Name: "Salon"},
			{Name: "Bureau"},
		},
	})
	c.Assert(errors.Is(err, errInjected), qt.IsTrue)

	got, err := svc.Get(ctx, category.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Name, qt.Equals, "Maison")
	c.Assert(subNames(got.SubCategories), qt.ContentEquals, []string{"Cuisine", "Jardin"})
}
