package paymentControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	orderControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/order"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Game{}, &models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedGame(t *testing.T, db *gorm.DB, price float64, stock int) models.Game {
	t.Helper()
	game := models.Game{SellerID: 1, Title: "Chrono Trigger", Price: price, Stock: stock}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func seedOrder(t *testing.T, db *gorm.DB, buyerID uint, items ...models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		ExternalID: fmt.Sprintf("%s-%d", t.Name(), buyerID),
		UserID:     buyerID,
		Items:      items,
		Status:     models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, orderControllers.RecomputeOrderStatus(db, order.ID))
	require.NoError(t, db.Preload("Items").First(&order, order.ID).Error)
	return order
}

func TestConfirmPaymentDecrementsStock(t *testing.T) {
	db := openTestDB(t)
	game := seedGame(t, db, 30.00, 5)
	order := seedOrder(t, db, 1, models.OrderItem{
		GameID: game.ID, SellerID: 1, Quantity: 2, UnitPrice: 30,
		Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending,
	})

	result, err := ConfirmPayment(db, order.ID)
	require.NoError(t, err)

	assert.Empty(t, result.CancelledItems)
	assert.Equal(t, models.PaymentStatusPaid, result.Order.PaymentStatus)
	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, models.PaymentStatusPaid, result.Order.Items[0].PaymentStatus)

	var reloaded models.Game
	require.NoError(t, db.First(&reloaded, game.ID).Error)
	assert.Equal(t, 3, reloaded.Stock)
}

func TestConfirmPaymentStockRaceCancelsLoser(t *testing.T) {
	db := openTestDB(t)
	game := seedGame(t, db, 30.00, 1)

	// Two checkouts were both admitted on the last unit; only the first
	// confirmation can take it.
	first := seedOrder(t, db, 1, models.OrderItem{
		GameID: game.ID, SellerID: 1, Quantity: 1, UnitPrice: 30,
		Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending,
	})
	second := seedOrder(t, db, 2, models.OrderItem{
		GameID: game.ID, SellerID: 1, Quantity: 1, UnitPrice: 30,
		Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending,
	})

	winner, err := ConfirmPayment(db, first.ID)
	require.NoError(t, err)
	assert.Empty(t, winner.CancelledItems)
	assert.Equal(t, models.PaymentStatusPaid, winner.Order.PaymentStatus)

	loser, err := ConfirmPayment(db, second.ID)
	require.NoError(t, err)
	require.Len(t, loser.CancelledItems, 1)
	assert.Equal(t, models.ItemStatusCancelled, loser.CancelledItems[0].Status)
	assert.Equal(t, models.PaymentStatusFailed, loser.CancelledItems[0].PaymentStatus)
	assert.Equal(t, models.OrderStatusCancelled, loser.Order.Status)

	// Stock never goes negative.
	var reloaded models.Game
	require.NoError(t, db.First(&reloaded, game.ID).Error)
	assert.Equal(t, 0, reloaded.Stock)
}

func TestConfirmPaymentPartialExhaustion(t *testing.T) {
	db := openTestDB(t)
	plenty := seedGame(t, db, 20.00, 10)
	scarce := seedGame(t, db, 50.00, 0)

	order := seedOrder(t, db, 1,
		models.OrderItem{GameID: plenty.ID, SellerID: 1, Quantity: 1, UnitPrice: 20,
			Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending},
		models.OrderItem{GameID: scarce.ID, SellerID: 1, Quantity: 1, UnitPrice: 50,
			Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending},
	)

	result, err := ConfirmPayment(db, order.ID)
	require.NoError(t, err)

	require.Len(t, result.CancelledItems, 1)
	assert.Equal(t, scarce.ID, result.CancelledItems[0].GameID)
	assert.Equal(t, models.OrderStatusPartiallyCancelled, result.Order.Status)
	assert.Equal(t, models.PaymentStatusPaid, result.Order.PaymentStatus, "the surviving line settles")
}

func TestConfirmPaymentSkipsCancelledAndSettledItems(t *testing.T) {
	db := openTestDB(t)
	game := seedGame(t, db, 30.00, 5)
	order := seedOrder(t, db, 1,
		models.OrderItem{GameID: game.ID, SellerID: 1, Quantity: 1, UnitPrice: 30,
			Status: models.ItemStatusCancelled, PaymentStatus: models.PaymentStatusFailed},
		models.OrderItem{GameID: game.ID, SellerID: 1, Quantity: 1, UnitPrice: 30,
			Status: models.ItemStatusShipped, PaymentStatus: models.PaymentStatusPaid},
	)

	_, err := ConfirmPayment(db, order.ID)
	require.NoError(t, err)

	// Neither line triggers a second decrement.
	var reloaded models.Game
	require.NoError(t, db.First(&reloaded, game.ID).Error)
	assert.Equal(t, 5, reloaded.Stock)
}

func TestConfirmPaymentUnknownOrder(t *testing.T) {
	db := openTestDB(t)
	_, err := ConfirmPayment(db, 404)
	assert.ErrorIs(t, err, orderControllers.ErrNotFound)
}

func TestFailPayment(t *testing.T) {
	db := openTestDB(t)
	game := seedGame(t, db, 30.00, 5)
	order := seedOrder(t, db, 1, models.OrderItem{
		GameID: game.ID, SellerID: 1, Quantity: 1, UnitPrice: 30,
		Status: models.ItemStatusPending, PaymentStatus: models.PaymentStatusPending,
	})

	out, err := FailPayment(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, out.PaymentStatus)
	require.Len(t, out.Items, 1)
	assert.Equal(t, models.PaymentStatusFailed, out.Items[0].PaymentStatus)

	// No reservation existed, so stock is untouched.
	var reloaded models.Game
	require.NoError(t, db.First(&reloaded, game.ID).Error)
	assert.Equal(t, 5, reloaded.Stock)
}
