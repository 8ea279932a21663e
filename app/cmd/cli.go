package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/db/fakers"
	"github.com/Rakhulsr/go-catalog/app/db/seeders"
	"github.com/Rakhulsr/go-catalog/app/models"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/calc"
	"github.com/Rakhulsr/go-catalog/app/utils/format"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

const keysFile = ".env.new_keys"

func RunCli(env configs.ENV) {
	if err := NewCommand(env).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func NewCommand(env configs.ENV) *cli.Command {
	connect := func() (*gorm.DB, error) {
		return configs.OpenConnection(env)
	}

	return &cli.Command{
		Name:  "catalog",
		Usage: "Product catalog API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return Serve(ctx, env)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Reset the catalog and load sample data",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "fake",
						Usage: "also generate `N` random products",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					if n := c.Int("fake"); n > 0 {
						products, err := fakers.FakeProducts(db, n)
						if err != nil {
							return err
						}
						log.Printf("Generated %d fake products", len(products))
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "wipe",
				Usage: "Delete every category, product and inventory item",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := seeders.Wipe(db); err != nil {
						return err
					}
					log.Println("✅ Catalog wiped")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate session and JWT secrets for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := configs.GenerateAndWriteKeys(keysFile)
					if err != nil {
						return err
					}
					if err := keys.WriteEnv(c.Root().Writer); err != nil {
						return err
					}
					log.Printf("✅ Keys written to %s. Please copy them to your .env file.", keysFile)
					return nil
				},
			},
			{
				Name:  "stock-report",
				Usage: "Print the items at or below their restock threshold",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "notify",
						Usage: "also email the report to `ADDRESS` (needs SMTP_HOST and SMTP_FROM)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					items, err := services.NewInventoryService(db).LowStock(ctx)
					if err != nil {
						return err
					}
					if err := WriteStockReport(c.Root().Writer, items, env.CurrencySymbol); err != nil {
						return err
					}

					to := c.String("notify")
					if to == "" || len(items) == 0 {
						return nil
					}
					subject := fmt.Sprintf("Low stock: %d item(s) need restocking", len(items))
					body := services.BuildLowStockEmailBody(items, env.CurrencySymbol)
					if err := services.NewMailer(env.SMTP()).SendHTMLEmail(to, subject, body); err != nil {
						return err
					}
					log.Printf("✅ Report sent to %s", to)
					return nil
				},
			},
		},
	}
}

// WriteStockReport prints one row per low-stock item with the quantity needed
// to clear its threshold and the value of the stock on hand.
func WriteStockReport(w io.Writer, items []models.InventoryItem, currency string) error {
	var low []models.InventoryItem
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	items = low

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No items below their restock threshold.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tLOCATION\tQTY\tMIN\tRESTOCK\tVALUE")
	for _, item := range items {
		name := item.ProductID
		value := "-"
		if item.Product != nil {
			name = item.Product.Name
			value = format.Money(calc.StockValue(item.Product.Price, item.Quantity), currency)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			name, item.Location, item.Quantity, item.MinThreshold,
			calc.RestockGap(item.Quantity, item.MinThreshold), value)
	}
	return tw.Flush()
}
