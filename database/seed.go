package database

import (
	"log"

	"essence_store/config"
	"essence_store/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	password := config.ConfigOr("ADMIN_PASSWORD", "admin123")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	hash := string(bytes)
	if err != nil {
		hash = password
	}
	admins := []model.Admin{
		{Name: "Store Admin", Email: config.ConfigOr("ADMIN_EMAIL", "admin@essenceclean.com"), Password: hash, Role: "admin"},
	}

	for _, admin := range admins {
		if err := db.Where(model.Admin{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin:", admin.Email, "error:", err)
		}
	}

	products := []model.Product{
		{
			Name:          "Complete Care Bundle",
			Tagline:       "Everything your home needs",
			Description:   "Floor cleaner, dish wash and glass cleaner in one pack. Plant-based formulas, safe around kids and pets.",
			Price:         849,
			OriginalPrice: floatPtr(1099),
			Discount:      strPtr("23% OFF"),
			Features:      model.StringList{"3 full-size products", "Plant-based formula", "Refill pouches included"},
			Badge:         strPtr("Best Seller"),
			Rating:        4.8,
			Reviews:       214,
			Category:      "bundle",
			Stock:         120,
			IsActive:      true,
		},
		{
			Name:        "Herbal Floor Cleaner",
			Tagline:     "Lemongrass fresh",
			Description: "Concentrated floor cleaner with natural lemongrass oil. One cap cleans a full bucket.",
			Price:       299,
			Features:    model.StringList{"1L concentrate", "No harsh chemicals"},
			Rating:      4.6,
			Reviews:     98,
			Category:    "single",
			Scent:       strPtr("Lemongrass"),
			Stock:       300,
			IsActive:    true,
		},
		{
			Name:        "Natural Dish Wash Gel",
			Tagline:     "Tough on grease, soft on hands",
			Description: "Coconut-derived dish gel that cuts grease without drying skin.",
			Price:       249,
			Features:    model.StringList{"500ml bottle", "Coconut surfactants"},
			Rating:      4.7,
			Reviews:     156,
			Category:    "single",
			Scent:       strPtr("Citrus"),
			Stock:       250,
			IsActive:    true,
		},
	}

	for _, product := range products {
		product.Slug = slug.Make(product.Name)
		if err := db.Where(model.Product{Slug: product.Slug}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Name, "error:", err)
		}
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
