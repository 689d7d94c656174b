package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/KaaraOpCode/BohlalePOS/internal/core/domain"
)

// ErrProductNotFound is returned when a product id is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Catalog supplies the product records the till displays. The till only
// ever reads it; stock and status are maintained elsewhere.
type Catalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
}

// CatalogRepository reads the catalog from Postgres.
type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), category, price, stock, status
		FROM products
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *CatalogRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), category, price, stock, status
		FROM products
		WHERE id = $1
	`
	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var price decimal.Decimal
	var category, status string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &category, &price, &p.Stock, &status)
	if err != nil {
		return domain.Product{}, err
	}
	p.Category = domain.Category(category)
	p.Price = price
	p.Status = domain.ProductStatus(status)
	return p, nil
}

// SeedCatalog is the built-in demo catalog, used when no DATABASE_URL
// is configured and in tests.
type SeedCatalog struct {
	products []domain.Product
}

func NewSeedCatalog() *SeedCatalog {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	return &SeedCatalog{products: []domain.Product{
		{ID: "1", Name: "Wireless Headphones", Price: price("29.99"), Stock: 50, Category: domain.CategoryElectronics, Status: domain.ProductActive},
		{ID: "2", Name: "Cotton T-Shirt", Price: price("19.99"), Stock: 30, Category: domain.CategoryClothing, Status: domain.ProductActive},
		{ID: "3", Name: "Bluetooth Speaker", Price: price("59.99"), Stock: 25, Category: domain.CategoryElectronics, Status: domain.ProductActive},
		{ID: "4", Name: "Notebook", Price: price("4.99"), Stock: 100, Category: domain.CategoryStationery, Status: domain.ProductActive},
		{ID: "5", Name: "Organic Apple", Price: price("1.5"), Stock: 80, Category: domain.CategoryGroceries, Status: domain.ProductActive},
		{ID: "6", Name: "LED Lamp", Price: price("12.99"), Stock: 40, Category: domain.CategoryElectronics, Status: domain.ProductActive},
		{ID: "7", Name: "Jeans", Price: price("39.99"), Stock: 25, Category: domain.CategoryClothing, Status: domain.ProductActive},
		{ID: "8", Name: "Pencils Pack", Price: price("2.5"), Stock: 200, Category: domain.CategoryStationery, Status: domain.ProductActive},
	}}
}

func (s *SeedCatalog) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *SeedCatalog) Get(_ context.Context, id string) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}
