package couponControllers

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestApply(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "RETRO10", Discount: 0.10, MinValue: 20, IsActive: true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	discount, err := Apply(db, "RETRO10", 100)
	require.NoError(t, err)
	assert.Equal(t, 10.00, discount)

	// Codes are matched case-insensitively and trimmed.
	discount, err = Apply(db, "  retro10 ", 100)
	require.NoError(t, err)
	assert.Equal(t, 10.00, discount)
}

func TestApplyRejections(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "MIN50", Discount: 0.20, MinValue: 50, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "GONE", Discount: 0.20, IsActive: true,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "OFF", Discount: 0.20, IsActive: false,
	}).Error)

	_, err := Apply(db, "NOPE", 100)
	assert.ErrorIs(t, err, ErrCouponNotFound)

	_, err = Apply(db, "MIN50", 49.99)
	assert.ErrorIs(t, err, ErrCouponBelowMinValue)

	_, err = Apply(db, "GONE", 100)
	assert.ErrorIs(t, err, ErrCouponExpired)

	_, err = Apply(db, "OFF", 100)
	assert.ErrorIs(t, err, ErrCouponInactive)
}

func TestApplyZeroExpiryNeverExpires(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "FOREVER", Discount: 0.05, IsActive: true,
	}).Error)

	discount, err := Apply(db, "FOREVER", 100)
	require.NoError(t, err)
	assert.Equal(t, 5.00, discount)
}

func TestDeactivateExpired(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "OLD", Discount: 0.10, IsActive: true,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "FRESH", Discount: 0.10, IsActive: true,
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "FOREVER", Discount: 0.10, IsActive: true,
	}).Error)

	n, err := DeactivateExpired(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var old, fresh, forever models.Coupon
	require.NoError(t, db.First(&old, "code = ?", "OLD").Error)
	require.NoError(t, db.First(&fresh, "code = ?", "FRESH").Error)
	require.NoError(t, db.First(&forever, "code = ?", "FOREVER").Error)
	assert.False(t, old.IsActive)
	assert.True(t, fresh.IsActive)
	assert.True(t, forever.IsActive, "zero expiry means no expiry")
}
