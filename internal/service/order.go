package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"candle-shop-api/internal/client"
	"candle-shop-api/internal/dto"
	"candle-shop-api/internal/model"
	"candle-shop-api/internal/pricing"
	"candle-shop-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// totalTolerance is the largest accepted divergence between the
// recomputed order total and the client/processor amounts (one minor
// unit, covering rounding differences).
var totalTolerance = decimal.New(1, -2)

type OrderService interface {
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error)
	PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error)
}

type orderServiceImpl struct {
	db           *gorm.DB
	stripeClient client.StripeClient
	currency     string
	orderRepo    repository.OrderRepository
	fragRepo     repository.FragranceRepository
	discountRepo repository.DiscountRepository
}

func NewOrderService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	currency string,
	orderRepo repository.OrderRepository,
	fragRepo repository.FragranceRepository,
	discountRepo repository.DiscountRepository,
) OrderService {
	return &orderServiceImpl{
		db:           db,
		stripeClient: stripeClient,
		currency:     currency,
		orderRepo:    orderRepo,
		fragRepo:     fragRepo,
		discountRepo: discountRepo,
	}
}

func (s *orderServiceImpl) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, pricing.MinorUnits(req.Amount), s.currency, req.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return &dto.CreatePaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
	}, nil
}

// PlaceOrder records a confirmed payment as an order: one transaction
// inserting the order and its item snapshots and decrementing stock.
// Any step failing rolls the whole thing back.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	// Duplicate submission of the same payment is not an error: the
	// order is keyed by payment intent, so return what was recorded.
	if existing, err := s.orderRepo.FindByPaymentIntentID(ctx, nil, req.PaymentIntentID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up order by payment intent: %w", err)
	}

	// Repeated cart lines for the same variant collapse into one.
	quantityBySize := make(map[uint]int, len(req.Items))
	sizeIDs := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if _, seen := quantityBySize[item.FragranceSizeID]; !seen {
			sizeIDs = append(sizeIDs, item.FragranceSizeID)
		}
		quantityBySize[item.FragranceSizeID] += item.Quantity
	}

	sizes, err := s.fragRepo.FindSizesByIDs(ctx, nil, sizeIDs)
	if err != nil {
		return nil, fmt.Errorf("load size variants: %w", err)
	}
	if len(sizes) != len(sizeIDs) {
		return nil, fmt.Errorf("%w: unknown size variant in cart", ErrNotFound)
	}

	fragrances, err := s.loadFragrances(ctx, sizes)
	if err != nil {
		return nil, err
	}

	// Totals come from persisted prices, never from the client.
	lineItems := make([]pricing.LineItem, len(sizes))
	for i, size := range sizes {
		lineItems[i] = pricing.LineItem{
			UnitPrice: size.Price,
			Quantity:  quantityBySize[size.ID],
		}
	}
	subtotal := pricing.Subtotal(lineItems)

	discountAmount := decimal.Zero
	if req.DiscountCode != "" {
		discount, err := s.discountRepo.FindApplicable(ctx, NormalizeCode(req.DiscountCode), time.Now())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCodeNotFoundOrExpired
			}
			return nil, fmt.Errorf("look up discount: %w", err)
		}
		discountAmount = pricing.DiscountAmount(subtotal, discount.DiscountType, discount.DiscountValue)
	}
	total := pricing.Total(subtotal, discountAmount)

	if total.Sub(req.TotalAmount).Abs().GreaterThan(totalTolerance) {
		return nil, fmt.Errorf("%w: submitted %s, computed %s", ErrTotalMismatch, req.TotalAmount, total)
	}

	intent, err := s.stripeClient.GetPaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("stripe get payment intent: %w", err)
	}
	if intent.Status != client.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("%w: status %s", ErrPaymentNotConfirmed, intent.Status)
	}
	if intent.Amount != pricing.MinorUnits(total) {
		return nil, fmt.Errorf("%w: authorized %d, computed %d", ErrTotalMismatch, intent.Amount, pricing.MinorUnits(total))
	}

	order := &model.Order{
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     total,
		Status:          "paid",
		PaymentIntentID: req.PaymentIntentID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		items := make([]model.OrderItem, len(sizes))
		for i, size := range sizes {
			fragrance := fragrances[size.FragranceID]
			items[i] = model.OrderItem{
				OrderID:         order.ID,
				FragranceSizeID: size.ID,
				ProductName:     fragrance.Name,
				SizeName:        size.SizeName,
				BurnTime:        size.BurnTime,
				Quantity:        quantityBySize[size.ID],
				PriceAtPurchase: size.Price,
				ImageURL:        fragrance.ImageURL,
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		for _, size := range sizes {
			if err := s.fragRepo.DecrementStock(ctx, tx, size.ID, quantityBySize[size.ID]); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: variant %d", ErrInsufficientStock, size.ID)
				}
				return fmt.Errorf("decrement stock: %w", err)
			}
		}

		order.Items = items
		return nil
	})
	if err != nil {
		// A concurrent submission can win the unique payment intent
		// index between our pre-check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.orderRepo.FindByPaymentIntentID(ctx, nil, req.PaymentIntentID)
		}
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) loadFragrances(ctx context.Context, sizes []*model.FragranceSize) (map[uint]*model.Fragrance, error) {
	fragrances := make(map[uint]*model.Fragrance, len(sizes))
	for _, size := range sizes {
		if _, ok := fragrances[size.FragranceID]; ok {
			continue
		}
		fragrance, err := s.fragRepo.FindByID(ctx, size.FragranceID)
		if err != nil {
			return nil, fmt.Errorf("load fragrance %d: %w", size.FragranceID, err)
		}
		fragrances[size.FragranceID] = fragrance
	}
	return fragrances, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return order, nil
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id uint, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return order, nil
}

func validateOrderRequest(req *dto.CreateOrderRequest) error {
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer_email is required", ErrValidation)
	}
	if req.PaymentIntentID == "" {
		return fmt.Errorf("%w: payment_intent_id is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
	}
	return nil
}
