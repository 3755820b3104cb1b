package market

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnknownItem        = errors.New("unknown item")
	ErrItemNotOwned       = errors.New("item not in inventory")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

const MaxPurchaseQuantity = 99

type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       int     `json:"price"`
	WaterDelta  float64 `json:"waterDelta"`
	HealthDelta float64 `json:"healthDelta"`
}

var catalog = []Item{
	{ID: "fish_food", Name: "Fish food", Price: 50, HealthDelta: 0.25},
	{ID: "water_conditioner", Name: "Water conditioner", Price: 50, WaterDelta: 0.25},
	{ID: "vitamin_pack", Name: "Vitamin pack", Price: 120, HealthDelta: 0.5},
}

func Items() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

func LookupItem(id string) (Item, error) {
	for _, item := range catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

type InventoryItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
