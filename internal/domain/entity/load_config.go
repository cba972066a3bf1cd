package entity

// MaxDays is the last forecast day published by RBB.
const MaxDays = 7

// LoadConfig selects the city and the number of forecast days loaded by one cycle.
type LoadConfig struct {
	LocationID string `json:"id"`
	Days       int    `json:"days"`
}

// Normalize clamps Days into [0, MaxDays].
func (c LoadConfig) Normalize() LoadConfig {
	if c.Days > MaxDays {
		c.Days = MaxDays
	}
	if c.Days < 0 {
		c.Days = 0
	}
	return c
}
