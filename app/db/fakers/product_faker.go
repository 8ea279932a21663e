package fakers

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var fakeBrands = []string{"Apple", "Samsung", "Nike", "Zara", "Sony", "Bosch", "Lego"}

func SubCategoryFaker(categoryID string) *models.SubCategory {
	return &models.SubCategory{
		ID:          uuid.NewString(),
		Name:        strings.Title(faker.Word()),
		Description: faker.Sentence(),
		CategoryID:  categoryID,
	}
}

func ProductFaker(subCategoryID string) *models.Product {
	brand := fakeBrands[rand.Intn(len(fakeBrands))]

	return &models.Product{
		ID:            uuid.NewString(),
		Name:          fmt.Sprintf("%s %s", brand, strings.Title(faker.Word())),
		Description:   faker.Paragraph(),
		Price:         decimal.NewFromFloat(fakePrice()).Round(2),
		Brand:         brand,
		ImageURL:      faker.URL(),
		WeightVolume:  fmt.Sprintf("%dg", rand.Intn(2000)+50),
		SubCategoryID: subCategoryID,
	}
}

func InventoryItemFaker(productID string) *models.InventoryItem {
	return &models.InventoryItem{
		ProductID:    productID,
		Quantity:     rand.Intn(200),
		MinThreshold: rand.Intn(30) + 1,
		Location:     "Entrepôt " + faker.Word(),
	}
}

// FakeProducts inserts n random products, each with an inventory item, into a
// freshly created fake category.
func FakeProducts(db *gorm.DB, n int) ([]models.Product, error) {
	if n <= 0 {
		return nil, fmt.Errorf("product count must be positive, got %d", n)
	}

	products := make([]models.Product, 0, n)
	err := db.Transaction(func(tx *gorm.DB) error {
		category := &models.Category{
			ID:          uuid.NewString(),
			Name:        "Fake " + strings.Title(faker.Word()),
			Description: faker.Sentence(),
		}
		if err := tx.Omit(clause.Associations).Create(category).Error; err != nil {
			return err
		}

		subCategories := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			sub := SubCategoryFaker(category.ID)
			if err := tx.Omit(clause.Associations).Create(sub).Error; err != nil {
				return err
			}
			subCategories = append(subCategories, sub.ID)
		}

		for i := 0; i < n; i++ {
			product := ProductFaker(subCategories[rand.Intn(len(subCategories))])
			if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(InventoryItemFaker(product.ID)).Error; err != nil {
				return err
			}
			products = append(products, *product)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
