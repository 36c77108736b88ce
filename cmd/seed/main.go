// seed aplica el esquema y carga datos de demostración: una sucursal, las
// categorías base, una oferta vigente y un catálogo inicial de frutas y
// verduras. Es idempotente: se puede correr sobre una base ya poblada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/olivosverdes/fruteria-api/db"
	"github.com/olivosverdes/fruteria-api/internal/infrastructure/postgres"
	"github.com/olivosverdes/fruteria-api/pkg/config"
)

type seedProduct struct {
	name     string
	price    string
	category string
	onOffer  bool
}

var seedCategories = []string{"Frutas", "Verduras", "Orgánicos"}

var seedProducts = []seedProduct{
	{"Manzana Roja", "15.00", "Frutas", true},
	{"Plátano", "8.50", "Frutas", false},
	{"Naranja", "12.00", "Frutas", false},
	{"Fresa", "35.00", "Frutas", true},
	{"Zanahoria", "9.00", "Verduras", false},
	{"Jitomate", "18.00", "Verduras", false},
	{"Lechuga", "14.00", "Verduras", false},
	{"Espinaca Orgánica", "22.00", "Orgánicos", false},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		fail("aplicar esquema: %v", err)
	}
	fmt.Println("esquema aplicado")

	branchID := uuid.New().String()
	_, err = pool.Exec(ctx, `
		INSERT INTO branches (id, name, address)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM branches)`,
		branchID, "Sucursal Centro", "Av. Principal 123")
	if err != nil {
		fail("sembrar sucursal: %v", err)
	}

	for _, name := range seedCategories {
		_, err := pool.Exec(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), name)
		if err != nil {
			fail("sembrar categoría %s: %v", name, err)
		}
	}

	// Oferta de temporada: 20% por dos semanas a partir de hoy.
	offerID := uuid.New().String()
	today := time.Now().Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	_, err = pool.Exec(ctx, `
		INSERT INTO offers (id, name, description, active, start_date, end_date, discount_pct)
		SELECT $1, $2, $3, TRUE, $4::date, $5::date, $6
		WHERE NOT EXISTS (SELECT 1 FROM offers WHERE name = $2)`,
		offerID, "Oferta de Temporada", "Descuento en fruta de temporada", today, end, decimal.NewFromInt(20))
	if err != nil {
		fail("sembrar oferta: %v", err)
	}

	for _, p := range seedProducts {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fail("precio de %s: %v", p.name, err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO products (id, name, price, category_id, branch_id, offer_id)
			SELECT $1, $2, $3,
			       (SELECT id FROM categories WHERE name = $4),
			       (SELECT id FROM branches ORDER BY created_at LIMIT 1),
			       CASE WHEN $5 THEN (SELECT id FROM offers WHERE name = 'Oferta de Temporada') END
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $2)`,
			uuid.New().String(), p.name, price, p.category, p.onOffer)
		if err != nil {
			fail("sembrar producto %s: %v", p.name, err)
		}
	}

	fmt.Printf("listo: %d categorías, %d productos\n", len(seedCategories), len(seedProducts))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
