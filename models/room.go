package models

// Room is a bookable hotel room. Number is the unique identifier across the
// whole inventory; Type is a free-form label such as "Single" or "Deluxe".
type Room struct {
	Number int     `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
}
