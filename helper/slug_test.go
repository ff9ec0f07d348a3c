package helper

import (
	"testing"

	"restaurant_manager/model"
)

func TestGenerateUniqueMenuItemSlug(t *testing.T) {
	t.Parallel()

	db := openTestStore(t)

	first := GenerateUniqueMenuItemSlug(db, "Margherita Pizza")
	if first != "margherita-pizza" {
		t.Fatalf("slug = %q, want margherita-pizza", first)
	}
	if err := db.Create(&model.MenuItem{Name: "Margherita Pizza", Slug: first, Price: 10.99, Category: "Mains", IsAvailable: true}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	second := GenerateUniqueMenuItemSlug(db, "Margherita Pizza")
	if second != "margherita-pizza-1" {
		t.Fatalf("slug = %q, want margherita-pizza-1", second)
	}
	if err := db.Create(&model.MenuItem{Name: "Margherita Pizza", Slug: second, Price: 11.99, Category: "Mains", IsAvailable: true}).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	third := GenerateUniqueMenuItemSlug(db, "Margherita Pizza")
	if third != "margherita-pizza-2" {
		t.Fatalf("slug = %q, want margherita-pizza-2", third)
	}
}
