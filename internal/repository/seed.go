package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

// DefaultMenu returns the built-in starter catalog
func DefaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Vegetable Salad",
			Price:       "10",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			Description: "Crisp lettuce, tomatoes, cucumbers, carrots and bell peppers with olive oil and lemon.",
			Category:    models.CategoryStarter,
		},
		{
			ID:          "2",
			Name:        "Lentil Soup",
			Price:       "8",
			Image:       "https://images.pexels.com/photos/539451/pexels-photo-539451.jpeg",
			Description: "Lentils slow cooked with onions, carrots, garlic and spices. Served with bread.",
			Category:    models.CategoryStarter,
		},
		{
			ID:          "3",
			Name:        "Beef Burger",
			Price:       "15",
			Image:       "https://images.unsplash.com/photo-1550547660-d9450f859349?auto=format&fit=crop&w=80&q=80",
			Description: "Grilled beef patty in a toasted bun with lettuce, tomato, onion and cheese.",
			Category:    models.CategoryMain,
		},
		{
			ID:          "4",
			Name:        "Margherita Pizza",
			Price:       "12",
			Image:       "https://images.pexels.com/photos/10836977/pexels-photo-10836977.jpeg",
			Description: "Tomato sauce, mozzarella and fresh basil on a crispy crust.",
			Category:    models.CategoryMain,
		},
		{
			ID:          "5",
			Name:        "Cheesecake",
			Price:       "9",
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSjOSkPERVYz6sVua0XzIQeUM2vxxuaX-6nQA&s",
			Description: "Creamy cheese filling on a buttery biscuit base.",
			Category:    models.CategoryDessert,
		},
		{
			ID:          "6",
			Name:        "Chocolate Brownie",
			Price:       "7",
			Image:       "https://images.pexels.com/photos/27359377/pexels-photo-27359377.jpeg",
			Description: "Fudgy chocolate brownie, best served warm with ice cream.",
			Category:    models.CategoryDessert,
		},
	}
}

// LoadSeedFile reads a JSON array of menu items from path.
// Items may carry retired category labels or no ID; the catalog service
// migrates them on startup.
func LoadSeedFile(path string) ([]models.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return items, nil
}
