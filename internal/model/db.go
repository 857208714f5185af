package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:50;not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Fragrance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Sizes []FragranceSize `gorm:"foreignKey:FragranceID;constraint:OnDelete:CASCADE" json:"sizes"`
}

type FragranceSize struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	FragranceID   uint            `gorm:"index;not null" json:"fragrance_id"`
	SizeName      string          `gorm:"size:50;not null" json:"size_name"`
	BurnTime      string          `gorm:"size:50" json:"burn_time"` // e.g. "30-35" hours
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	SKU           string          `gorm:"size:100;uniqueIndex" json:"sku"`
	IsActive      bool            `gorm:"not null" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type DiscountCode struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Code          string          `gorm:"size:50;uniqueIndex;not null" json:"code"` // stored uppercase
	DiscountType  string          `gorm:"size:20;not null" json:"discount_type"`    // percentage, fixed
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	IsActive      bool            `gorm:"not null" json:"is_active"`
	ExpiresAt     *time.Time      `json:"expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CustomerEmail   string          `gorm:"size:255;not null" json:"customer_email"`
	CustomerName    string          `gorm:"size:255" json:"customer_name"`
	CustomerPhone   string          `gorm:"size:50" json:"customer_phone"`
	ShippingAddress string          `gorm:"type:text" json:"shipping_address"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          string          `gorm:"size:50;index;not null;default:pending" json:"status"` // pending, paid, processing, shipped, delivered, cancelled
	PaymentIntentID string          `gorm:"size:255;uniqueIndex" json:"payment_intent_id"`        // one order per confirmed payment
	Notes           string          `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem rows are immutable after creation. PriceAtPurchase and the
// name fields are snapshots taken at checkout, so later catalog edits
// never affect recorded orders.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         uint            `gorm:"index;not null" json:"order_id"`
	FragranceSizeID uint            `gorm:"index" json:"fragrance_size_id"` // non-owning reference, may outlive the variant
	ProductName     string          `gorm:"size:255;not null" json:"product_name"`
	SizeName        string          `gorm:"size:50" json:"size_name"`
	BurnTime        string          `gorm:"size:50" json:"burn_time"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
	ImageURL        string          `gorm:"type:text" json:"image_url"`
}

// OrderStatuses are the values the status-update endpoint accepts.
// Transitions between them are admin-driven and deliberately unconstrained.
var OrderStatuses = []string{"pending", "paid", "processing", "shipped", "delivered", "cancelled"}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}
