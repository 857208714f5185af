package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	FragranceSizeID uint            `json:"fragrance_size_id"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress string          `json:"shipping_address"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentIntentID string          `json:"payment_intent_id"`
	DiscountCode    string          `json:"discount_code"`
	Items           []*CartItem     `json:"items"`
}

type CreatePaymentIntentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	CustomerEmail string          `json:"customer_email"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type ValidateDiscountRequest struct {
	Code string `json:"code"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type FragranceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

type FragranceSizeRequest struct {
	SizeName      string          `json:"size_name"`
	BurnTime      string          `json:"burn_time"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	SKU           string          `json:"sku"`
	IsActive      *bool           `json:"is_active"`
}

type UpdateStockRequest struct {
	StockQuantity int `json:"stock_quantity"`
}

type DiscountRequest struct {
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	IsActive      *bool           `json:"is_active"`
	ExpiresAt     *time.Time      `json:"expires_at"`
}
