package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

func TestComputePricingBreakdown(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller)
	gameA := seedGame(t, db, seller.ID, 15.00, 10) // 2 × 15 = 30
	gameB := seedGame(t, db, seller.ID, 10.00, 10) // 1 × 10 = 10

	require.NoError(t, db.Create(&models.Coupon{
		Code: "RETRO10", Discount: 0.10, MinValue: 20, IsActive: true,
	}).Error)

	p, err := ComputePricing(db, []CheckoutLine{
		{GameID: gameA.ID, Quantity: 2},
		{GameID: gameB.ID, Quantity: 1},
	}, "RETRO10", "standard")
	require.NoError(t, err)

	assert.Equal(t, 40.00, p.Subtotal)
	assert.Equal(t, 10.00, p.ShippingCost)
	assert.Equal(t, 4.00, p.Discount) // 10% of 40
	assert.Equal(t, 4.00, p.Tax)      // 10% of 40
	assert.Equal(t, 50.00, p.Total)   // 40 + 10 + 4 - 4

	require.Len(t, p.Items, 2)
	assert.Equal(t, gameA.Price, p.Items[0].UnitPrice)
	assert.Equal(t, seller.ID, p.Items[0].SellerID)
	assert.Equal(t, models.ItemStatusPending, p.Items[0].Status)
	assert.Equal(t, models.PaymentStatusPending, p.Items[0].PaymentStatus)
}

func TestComputePricingSnapshotIgnoresLaterPriceChange(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller)
	game := seedGame(t, db, seller.ID, 30.00, 5)

	p, err := ComputePricing(db, []CheckoutLine{{GameID: game.ID, Quantity: 1}}, "", "standard")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Game{}).Where("id = ?", game.ID).Update("price", 99.00).Error)

	assert.Equal(t, 30.00, p.Items[0].UnitPrice, "snapshot taken at pricing time")
}

func TestComputePricingInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller)
	game := seedGame(t, db, seller.ID, 20.00, 1)

	_, err := ComputePricing(db, []CheckoutLine{{GameID: game.ID, Quantity: 2}}, "", "standard")
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestComputePricingUnknownGame(t *testing.T) {
	db := openTestDB(t)

	_, err := ComputePricing(db, []CheckoutLine{{GameID: 999, Quantity: 1}}, "", "standard")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestComputePricingInvalidShippingMethod(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller)
	game := seedGame(t, db, seller.ID, 20.00, 5)

	_, err := ComputePricing(db, []CheckoutLine{{GameID: game.ID, Quantity: 1}}, "", "drone")
	assert.ErrorIs(t, err, ErrInvalidShippingMethod)
}

func TestComputePricingInapplicableCouponIsSoft(t *testing.T) {
	db := openTestDB(t)
	seller := seedUser(t, db, models.RoleSeller)
	game := seedGame(t, db, seller.ID, 10.00, 5)

	require.NoError(t, db.Create(&models.Coupon{
		Code: "EXPIRED", Discount: 0.50, IsActive: true,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	p, err := ComputePricing(db, []CheckoutLine{{GameID: game.ID, Quantity: 1}}, "EXPIRED", "standard")
	require.NoError(t, err, "checkout proceeds without the discount")
	assert.Equal(t, 0.00, p.Discount)
	assert.Equal(t, 21.00, p.Total) // 10 + 10 shipping + 1 tax
}
