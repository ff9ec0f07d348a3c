package database

import (
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admins := []model.AdminUser{
		{Name: "Administrator", Email: "admin@restaurant.local", Password: string(bytes), Role: constants.ROLE_ADMIN},
	}
	for _, admin := range admins {
		if err := db.Where(model.AdminUser{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin:", admin.Email, "error:", err)
		}
	}

	tables := []model.Table{
		{TableNumber: "1", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "2", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "3", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "4", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "5", Status: constants.TABLE_AVAILABLE},
		{TableNumber: "6", Status: constants.TABLE_AVAILABLE},
	}
	for _, table := range tables {
		if err := db.Where(model.Table{TableNumber: table.TableNumber}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.TableNumber, "error:", err)
		}
	}

	menuItems := []model.MenuItem{
		{Name: "Margherita Pizza", Price: 10.99, Category: "Mains", Description: "Tomato, mozzarella, basil", IsAvailable: true},
		{Name: "Caesar Salad", Price: 7.50, Category: "Starters", Description: "Romaine, parmesan, croutons", IsAvailable: true},
		{Name: "Spaghetti Carbonara", Price: 12.50, Category: "Mains", Description: "Egg, guanciale, pecorino", IsAvailable: true},
		{Name: "Tiramisu", Price: 6.00, Category: "Desserts", Description: "Mascarpone, espresso, cocoa", IsAvailable: true},
		{Name: "Sparkling Water", Price: 2.50, Category: "Drinks", Description: "", IsAvailable: true},
	}
	for _, item := range menuItems {
		item.Slug = slug.Make(item.Name)
		if err := db.Where(model.MenuItem{Slug: item.Slug}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}
}
