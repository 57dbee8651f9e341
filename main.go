package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	couponControllers "github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/controllers/coupon"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/models"
	"github.com/FThiagoB/FSN3-Projeto-Integrador-GameVault-sub000/routes"
)

func main() {
	log.Println("✅ Starting GameVault API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
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
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (cover art, excel imports)
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded cover images
	uploadsDir := os.Getenv("UPLOAD_DIR")
	if uploadsDir == "" {
		uploadsDir = "/var/www/gamevault/uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start maintenance routine at 3 AM daily
	go startDailyMaintenanceAtFixedTime(db, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyMaintenanceAtFixedTime runs housekeeping daily at a fixed hour:
// purges expired revoked tokens and checkout keys, deactivates expired coupons.
func startDailyMaintenanceAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next maintenance run scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		runMaintenance(db)
	}
}

func runMaintenance(db *gorm.DB) {
	cutoff := time.Now()

	res := db.Where("expires_at < ?", cutoff).Delete(&models.RevokedToken{})
	if res.Error != nil {
		log.Printf("❌ Failed to purge revoked tokens: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🗑️ Purged %d expired revoked tokens", res.RowsAffected)
	}

	res = db.Where("expires_at < ?", cutoff).Delete(&models.CheckoutKey{})
	if res.Error != nil {
		log.Printf("❌ Failed to purge checkout keys: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🗑️ Purged %d expired checkout keys", res.RowsAffected)
	}

	if n, err := couponControllers.DeactivateExpired(db); err != nil {
		log.Printf("❌ Failed to deactivate expired coupons: %v", err)
	} else if n > 0 {
		log.Printf("✅ Deactivated %d expired coupons", n)
	}
}
