package seeders

import (
	"fmt"
	"log"

	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Seeder struct {
	Name   string
	Seeder interface{}
}

// wipeOrder lists tables children first so RESTRICT constraints never fire.
var wipeOrder = []interface{}{
	&models.InventoryItem{},
	&models.ProductAttribute{},
	&models.Product{},
	&models.SubCategory{},
	&models.Category{},
}

// Wipe removes every catalog row. Users and inventory locations are kept.
func Wipe(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range wipeOrder {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("wipe %T: %w", model, err)
			}
		}
		return nil
	})
}

func SeedersRegister() []Seeder {
	electronics := uuid.NewString()
	clothing := uuid.NewString()
	home := uuid.NewString()

	categories := []models.Category{
		{ID: electronics, Name: "Électronique", Description: "Produits électroniques et accessoires"},
		{ID: clothing, Name: "Vêtements", Description: "Vêtements et accessoires de mode"},
		{ID: home, Name: "Maison", Description: "Articles pour la maison et le jardin"},
	}

	smartphones := uuid.NewString()
	computers := uuid.NewString()
	men := uuid.NewString()
	women := uuid.NewString()
	kitchen := uuid.NewString()

	subCategories := []models.SubCategory{
		{ID: smartphones, Name: "Smartphones", Description: "Téléphones mobiles et accessoires", CategoryID: electronics},
		{ID: computers, Name: "Ordinateurs", Description: "Ordinateurs portables et de bureau", CategoryID: electronics},
		{ID: men, Name: "Hommes", Description: "Vêtements pour hommes", CategoryID: clothing},
		{ID: women, Name: "Femmes", Description: "Vêtements pour femmes", CategoryID: clothing},
		{ID: kitchen, Name: "Cuisine", Description: "Articles de cuisine", CategoryID: home},
	}

	iphone := uuid.NewString()
	macbook := uuid.NewString()
	jeans := uuid.NewString()
	dress := uuid.NewString()
	mixer := uuid.NewString()

	products := []models.Product{
		{
			ID: iphone, Name: "iPhone 13", Description: "Smartphone Apple dernière génération",
			Price: decimal.RequireFromString("999.99"), Brand: "Apple", WeightVolume: "174g", SubCategoryID: smartphones,
			ImageURL: "https://store.storeimages.cdn-apple.com/4668/as-images.apple.com/is/iphone-13-finish-select-202207-6-1inch-blue?wid=2560&hei=1440&fmt=jpeg&qlt=95&.v=1656712888128",
		},
		{
			ID: macbook, Name: "MacBook Pro", Description: "Ordinateur portable professionnel",
			Price: decimal.RequireFromString("1299.99"), Brand: "Apple", WeightVolume: "1.4kg", SubCategoryID: computers,
			ImageURL: "https://store.storeimages.cdn-apple.com/4668/as-images.apple.com/is/mbp-spacegray-select-202206?wid=904&hei=840&fmt=jpeg&qlt=95&.v=1664497359481",
		},
		{
			ID: jeans, Name: "Jean Slim", Description: "Jean coupe slim en denim",
			Price: decimal.RequireFromString("59.99"), Brand: "Levi's", WeightVolume: "500g", SubCategoryID: men,
			ImageURL: "https://lsco.scene7.com/is/image/lsco/A46250000-dynamic1-pdp?fmt=jpeg&qlt=70&resMode=bisharp&fit=crop,0&op_usm=1.25,0.6,8&wid=2000&hei=1800",
		},
		{
			ID: dress, Name: "Robe d'été", Description: "Robe légère pour l'été",
			Price: decimal.RequireFromString("45.99"), Brand: "Zara", WeightVolume: "200g", SubCategoryID: women,
			ImageURL: "https://static.zara.net/photos///2024/V/0/1/p/2731/026/712/2/w/563/2731026712_2_1_1.jpg?ts=1708506545646",
		},
		{
			ID: mixer, Name: "Robot Cuisine KitchenAid Artisan", Description: "Robot multifonction pour la cuisine",
			Price: decimal.RequireFromString("299.99"), Brand: "KitchenAid", WeightVolume: "5kg", SubCategoryID: kitchen,
			ImageURL: "https://kitchenaid-h.assetsadobe.com/is/image/content/dam/business-unit/whirlpool/en-us/marketing-content/site-assets/product-images/cooking/major-appliances/ranges/hero-image-ranges.png",
		},
	}

	attributes := []models.ProductAttribute{
		{ProductID: iphone, Name: "Couleur", Value: "Bleu"},
		{ProductID: iphone, Name: "Stockage", Value: "128 Go"},
		{ProductID: macbook, Name: "RAM", Value: "16 Go"},
		{ProductID: jeans, Name: "Taille", Value: "32"},
		{ProductID: dress, Name: "Taille", Value: "M"},
	}

	items := []models.InventoryItem{
		{ProductID: iphone, Quantity: 100, MinThreshold: 20, Location: "Entrepôt Paris"},
		{ProductID: macbook, Quantity: 50, MinThreshold: 10, Location: "Entrepôt Paris"},
		{ProductID: jeans, Quantity: 200, MinThreshold: 30, Location: "Entrepôt Lyon"},
		{ProductID: dress, Quantity: 150, MinThreshold: 25, Location: "Entrepôt Lyon"},
	}

	return []Seeder{
		{Name: "categories", Seeder: &categories},
		{Name: "sub-categories", Seeder: &subCategories},
		{Name: "products", Seeder: &products},
		{Name: "product attributes", Seeder: &attributes},
		{Name: "inventory items", Seeder: &items},
	}
}

// DBSeed wipes the catalog and loads the fixed sample data set.
func DBSeed(db *gorm.DB) error {
	if err := Wipe(db); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seeder := range SeedersRegister() {
			if err := tx.Omit(clause.Associations).Create(seeder.Seeder).Error; err != nil {
				return fmt.Errorf("seed %s: %w", seeder.Name, err)
			}
			log.Printf("Seeded %s", seeder.Name)
		}
		return nil
	})
}
