package couponControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// Resolution failures are distinct so the storefront can tell the buyer
// exactly why a code was rejected before checkout.
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponInactive      = errors.New("coupon is not active")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponBelowMinValue = errors.New("order subtotal is below the coupon minimum")
)

// Apply resolves a code against the given subtotal and returns the discount
// amount. Callers decide whether a failure is hard (validation endpoint) or
// soft (checkout proceeds with zero discount).
func Apply(db *gorm.DB, code string, subtotal float64) (float64, error) {
	var coupon models.Coupon
	if err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCouponNotFound
		}
		return 0, err
	}
	if !coupon.IsActive {
		return 0, ErrCouponInactive
	}
	if !coupon.ExpiresAt.IsZero() && coupon.ExpiresAt.Before(time.Now()) {
		return 0, ErrCouponExpired
	}
	if subtotal < coupon.MinValue {
		return 0, ErrCouponBelowMinValue
	}
	return subtotal * coupon.Discount, nil
}

type validateCouponRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
}

// POST /coupons/validate
// Pre-checkout validation for UI feedback: unlike checkout itself, an
// inapplicable coupon is reported as an explicit error here.
func ValidateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		discount, err := Apply(db, req.Code, req.Subtotal)
		if err != nil {
			status := http.StatusUnprocessableEntity
			if errors.Is(err, ErrCouponNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"code": strings.ToUpper(strings.TrimSpace(req.Code)), "discount": discount})
	}
}

type couponInput struct {
	Code      string    `json:"code" binding:"required"`
	Discount  float64   `json:"discount" binding:"required,gt=0,lte=1"`
	MinValue  float64   `json:"min_value"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  *bool     `json:"is_active"`
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input couponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		coupon := models.Coupon{
			Code:      strings.ToUpper(strings.TrimSpace(input.Code)),
			Discount:  input.Discount,
			MinValue:  input.MinValue,
			ExpiresAt: input.ExpiresAt,
			IsActive:  true,
		}
		if input.IsActive != nil {
			coupon.IsActive = *input.IsActive
		}

		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

// GET /admin/coupons
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var input couponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"code":       strings.ToUpper(strings.TrimSpace(input.Code)),
			"discount":   input.Discount,
			"min_value":  input.MinValue,
			"expires_at": input.ExpiresAt,
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}

		if err := db.Model(&coupon).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Coupon{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
	}
}

// DeactivateExpired flips is_active off for coupons past their expiry.
// Called by the daily maintenance sweep.
func DeactivateExpired(db *gorm.DB) (int64, error) {
	// Coupons with a zero ExpiresAt never expire.
	result := db.Model(&models.Coupon{}).
		Where("is_active = ? AND expires_at > ? AND expires_at < ?", true, time.Unix(0, 0), time.Now()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
