package orderControllers

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	couponControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/coupon"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ShippingRates is the fixed cost table keyed by shipping method id.
var ShippingRates = map[string]float64{
	"standard": 10.00,
	"express":  25.00,
}

// TaxRate is applied as a percentage of the subtotal. The engine uses this
// single rule everywhere; there is no flat per-item charge.
const TaxRate = 0.10

// CheckoutLine is one {game, quantity} pair from the buyer's cart.
type CheckoutLine struct {
	GameID   uint `json:"game_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// Pricing is the full cost breakdown of a checkout plus the order item
// snapshots priced at the game's live price.
type Pricing struct {
	Subtotal     float64
	ShippingCost float64
	Tax          float64
	Discount     float64
	Total        float64
	Items        []models.OrderItem
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputePricing validates every line against the live catalog and computes
// subtotal, shipping, discount, tax and total. Stock is checked here but NOT
// decremented; the decrement happens at payment confirmation. An invalid or
// inapplicable coupon yields a zero discount rather than a hard failure;
// the dedicated validation endpoint is the strict path.
func ComputePricing(tx *gorm.DB, lines []CheckoutLine, couponCode, shippingMethod string) (*Pricing, error) {
	shippingCost, ok := ShippingRates[shippingMethod]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShippingMethod, shippingMethod)
	}

	var p Pricing
	p.ShippingCost = shippingCost

	for _, line := range lines {
		var game models.Game
		if err := tx.First(&game, "id = ?", line.GameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrGameNotFound, line.GameID)
			}
			return nil, err
		}
		if game.Stock < line.Quantity {
			return nil, fmt.Errorf("%w for %q", ErrInsufficientStock, game.Title)
		}

		p.Subtotal += game.Price * float64(line.Quantity)
		p.Items = append(p.Items, models.OrderItem{
			GameID:        game.ID,
			SellerID:      game.SellerID,
			GameTitle:     game.Title,
			GameImage:     game.Image,
			Quantity:      line.Quantity,
			UnitPrice:     game.Price, // snapshot, immutable from here on
			Status:        models.ItemStatusPending,
			PaymentStatus: models.PaymentStatusPending,
		})
	}
	p.Subtotal = round2(p.Subtotal)

	if couponCode != "" {
		if discount, err := couponControllers.Apply(tx, couponCode, p.Subtotal); err == nil {
			p.Discount = round2(discount)
		}
	}

	p.Tax = round2(p.Subtotal * TaxRate)
	p.Total = round2(p.Subtotal + p.ShippingCost + p.Tax - p.Discount)
	return &p, nil
}
