package domain

// Reward is a static catalog item priced in XP. Redemption does not
// remove it from the catalog.
type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
