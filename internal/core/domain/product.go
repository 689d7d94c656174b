package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryClothing    Category = "Clothing"
	CategoryElectronics Category = "Electronics"
	CategoryGroceries   Category = "Groceries"
	CategoryStationery  Category = "Stationery"
	CategoryToys        Category = "Toys"
)

// Categories lists every category the terminal can filter by.
func Categories() []Category {
	return []Category{
		CategoryClothing,
		CategoryElectronics,
		CategoryGroceries,
		CategoryStationery,
		CategoryToys,
	}
}

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductInactive ProductStatus = "inactive"
)

// Product is a catalog entry. The catalog owns it; the cart only ever
// takes snapshots of it and never writes back.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Status      ProductStatus   `json:"status"`
}

type CustomerType string

const (
	CustomerIndividual CustomerType = "Individual"
	CustomerBusiness   CustomerType = "Business"
	CustomerNGO        CustomerType = "NGO"
)

type SaleType string

const (
	SaleRetail    SaleType = "Retail"
	SaleWholesale SaleType = "Wholesale"
	SaleBulk      SaleType = "Bulk"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

type RiskCategory string

const (
	RiskLow    RiskCategory = "low"
	RiskMedium RiskCategory = "medium"
	RiskHigh   RiskCategory = "high"
)

// OrderItem is a product snapshot frozen into a completed order.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is the aggregate produced at payment completion. It lives only
// for the duration of the session; persistence belongs to whoever is
// behind the receipt/back-office boundary, not to the till.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	CustomerType  CustomerType    `json:"customer_type"`
	SaleType      SaleType        `json:"sale_type"`
	PaymentMethod string          `json:"payment_method"`
	Items         []OrderItem     `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Transaction records the movement of money for an order.
//
// The risk fields are a data contract only: upstream fraud tooling fills
// them in. The till carries them but never computes them.
type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	OrderID       uuid.UUID         `json:"order_id"`
	PaymentMethod string            `json:"payment_method"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	RiskScore     float64           `json:"risk_score,omitempty"`
	RiskCategory  RiskCategory      `json:"risk_category,omitempty"`
	IsFraud       bool              `json:"is_fraud,omitempty"`
	AnomalyFlags  []string          `json:"anomaly_flags,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// BuildOrder freezes the current cart and pricing into a completed
// Order plus its Transaction. Called exactly once per payment, from the
// checkout flow.
func BuildOrder(lines []CartLine, pricing PricingResult, customerType CustomerType, saleType SaleType, paymentMethod string) (Order, Transaction) {
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	now := time.Now()
	order := Order{
		ID:            uuid.New(),
		CustomerType:  customerType,
		SaleType:      saleType,
		PaymentMethod: paymentMethod,
		Items:         items,
		Subtotal:      pricing.Subtotal,
		Discount:      pricing.DiscountAmount,
		Tax:           pricing.TaxAmount,
		TotalAmount:   pricing.TotalAmount,
		Status:        OrderCompleted,
		CreatedAt:     now,
	}

	txn := Transaction{
		ID:            uuid.New(),
		OrderID:       order.ID,
		PaymentMethod: paymentMethod,
		Amount:        pricing.TotalAmount,
		Status:        TransactionCompleted,
		CreatedAt:     now,
	}

	return order, txn
}
