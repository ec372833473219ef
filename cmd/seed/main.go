// Command seed loads a small demo catalog and customer directory so the API
// can be exercised against a fresh database.
package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"

	"github.com/pizzapos/backend/internal/adapter/storage"
	"github.com/pizzapos/backend/internal/config"
	"github.com/pizzapos/backend/internal/core/domain"
	"github.com/pizzapos/backend/internal/core/service"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	catalogRepo := storage.NewMySQLCatalog(db)
	customerRepo := storage.NewMySQLCustomers(db)
	invoiceRepo := storage.NewMySQLInvoices(db, nil) // sequence unused for seeding

	catalogService := service.NewCatalogService(catalogRepo, invoiceRepo)
	customerService := service.NewCustomerService(customerRepo, invoiceRepo)

	categories := map[string]*domain.Category{
		"Pizza":     {Name: "Pizza", Description: "Wood-fired pizzas"},
		"Beverages": {Name: "Beverages", Description: "Soft drinks and juices"},
		"Desserts":  {Name: "Desserts", Description: "Sweets and ice cream"},
	}
	for name, category := range categories {
		if err := catalogService.CreateCategory(ctx, category); err != nil {
			log.Fatalf("failed to create category %s: %v", name, err)
		}
	}

	items := []struct {
		name, category, description, price string
	}{
		{"Margherita", "Pizza", "Tomato, mozzarella, basil", "850.00"},
		{"Pepperoni", "Pizza", "Pepperoni, mozzarella", "1200.00"},
		{"Veggie Supreme", "Pizza", "Peppers, onion, olives, mushroom", "1050.00"},
		{"Cola 1.5L", "Beverages", "Chilled bottle", "450.50"},
		{"Fresh Lime Juice", "Beverages", "", "300.00"},
		{"Chocolate Lava Cake", "Desserts", "Served warm", "650.00"},
	}
	for _, it := range items {
		item := &domain.Item{
			CategoryID:  categories[it.category].ID,
			Name:        it.name,
			Description: it.description,
			UnitPrice:   decimal.RequireFromString(it.price),
		}
		if err := catalogService.CreateItem(ctx, item); err != nil {
			log.Fatalf("failed to create item %s: %v", it.name, err)
		}
	}

	customers := []*domain.Customer{
		{Name: "Walk-in Customer"},
		{Name: "Nimal Perera", Phone: "0771234567", Email: "nimal@example.com", Address: "12 Galle Road, Colombo 3"},
		{Name: "Sunil Stores", Phone: "0112345678", Address: "45 Main Street, Kandy"},
	}
	for _, customer := range customers {
		if err := customerService.CreateCustomer(ctx, customer); err != nil {
			log.Fatalf("failed to create customer %s: %v", customer.Name, err)
		}
	}

	log.Printf("seeded %d categories, %d items, %d customers", len(categories), len(items), len(customers))
}
