package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is persisted as one unit. Revision is bumped by every successful save
// and guards the read-modify-write cycle.
type Cart struct {
	ID         string          `json:"cartId"`
	UserID     string          `json:"userId"`
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Revision   int64           `json:"revision"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CartItem is a snapshot of one stay taken when it was added.
type CartItem struct {
	ItemKey       string          `json:"itemKey"`
	RoomTypeID    string          `json:"roomTypeId"`
	RoomTypeName  string          `json:"roomTypeName"`
	HotelID       string          `json:"hotelId"`
	HotelName     string          `json:"hotelName"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	CheckInDate   string          `json:"checkInDate"`
	CheckOutDate  string          `json:"checkOutDate"`
	Nights        int             `json:"nights"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// RecomputeTotal sums the line items from scratch.
func (c *Cart) RecomputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

func (c *Cart) FindItem(itemKey string) (int, bool) {
	for i, item := range c.Items {
		if item.ItemKey == itemKey {
			return i, true
		}
	}
	return -1, false
}
