package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

// ValidateToken verifies the bearer token, rejects revoked JTIs and places
// the verified caller identity (user_id, role) in the request context.
// Handlers trust these values without re-verifying credentials.
func ValidateToken(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		jti, _ := claims["jti"].(string)
		if jti != "" {
			var revoked models.RevokedToken
			err := db.Where("jti = ?", jti).First(&revoked).Error
			if err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				c.Abort()
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				// Fail closed: a token whose revocation cannot be checked is
				// not trusted.
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to verify token"})
				c.Abort()
				return
			}
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}
		roleClaim, _ := claims["role"].(string)

		c.Set("user_id", uint(userIDClaim))
		c.Set("role", models.Role(roleClaim))
		c.Set("jti", jti)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set("token_exp", time.Unix(int64(exp), 0))
		}

		c.Next()
	}
}
