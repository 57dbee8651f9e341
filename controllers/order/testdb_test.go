package orderControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// openTestDB returns an isolated in-memory database per test.
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
		&models.User{},
		&models.Game{},
		&models.Cart{},
		&models.CartItem{},
		&models.Address{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.CheckoutKey{},
		&models.RevokedToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Email:        fmt.Sprintf("%s-%d@example.com", role, seq()),
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()
	addr := models.Address{UserID: userID, Street: "Rua A", City: "Fortaleza", Country: "BR"}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return addr
}

func seedGame(t *testing.T, db *gorm.DB, sellerID uint, price float64, stock int) models.Game {
	t.Helper()
	game := models.Game{
		SellerID: sellerID,
		Title:    fmt.Sprintf("Game %d", seq()),
		Genre:    "RPG",
		Platform: "SNES",
		Price:    price,
		Stock:    stock,
	}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}

// seedOrder persists an order with the given items and re-derives its
// aggregate statuses so tests start from a consistent snapshot.
func seedOrder(t *testing.T, db *gorm.DB, buyerID uint, items ...models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		ExternalID: fmt.Sprintf("ext-%d", seq()),
		UserID:     buyerID,
		Items:      items,
		Status:     models.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := RecomputeOrderStatus(db, order.ID); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if err := db.Preload("Items").First(&order, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return order
}

var seqCounter uint

func seq() uint {
	seqCounter++
	return seqCounter
}
