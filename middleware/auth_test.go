package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.RevokedToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func signToken(t *testing.T, jti string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 7,
		"role":    string(models.RoleUser),
		"jti":     jti,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", ValidateToken(db), func(c *gin.Context) {
		id, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	db := openTestDB(t)
	r := newRouter(db)

	w := doRequest(r, signToken(t, "jti-ok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestValidateTokenRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	db := openTestDB(t)
	r := newRouter(db)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsRevokedJTI(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.RevokedToken{
		JTI: "jti-revoked", ExpiresAt: time.Now().Add(time.Hour),
	}).Error)
	r := newRouter(db)

	w := doRequest(r, signToken(t, "jti-revoked"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestValidateTokenFailsClosedOnRevocationLookupError(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	db := openTestDB(t)
	r := newRouter(db)

	// Simulate a revocation-store outage: the lookup errors, and the request
	// must be rejected rather than waved through.
	require.NoError(t, db.Migrator().DropTable(&models.RevokedToken{}))

	w := doRequest(r, signToken(t, "jti-unverifiable"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
