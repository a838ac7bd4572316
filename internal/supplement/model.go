package supplement

import "time"

// Ingredient is a global catalog entry. Its id is the stable foreign key
// (`stdId`) product ingredient lines point at.
type Ingredient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases,omitempty"`
	Category       string   `json:"category"`
	DefaultUnit    string   `json:"defaultUnit"`
	SafeUpperLimit *float64 `json:"safeUpperLimit,omitempty"`
	RDA            *float64 `json:"rda,omitempty"`
}

// IngredientLine carries the dose of one catalog ingredient per serving.
// StdID must reference an existing Ingredient, enforced before any write.
type IngredientLine struct {
	StdID  string  `json:"stdId"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Product lives in the global catalog; CreatedBy records soft ownership but
// any signed-in user may edit.
type Product struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Brand                 string           `json:"brand"`
	Ingredients           []IngredientLine `json:"ingredients"`
	ServingsPerDayDefault float64          `json:"servingsPerDayDefault"`
	CreatedBy             string           `json:"createdBy,omitempty"`
	Verified              bool             `json:"verified"`
}

// Log is one intake entry. ProductName/ProductBrand are snapshots taken at
// log time so history reads the same after the product is edited or deleted.
// Logs are created and deleted, never updated; several logs per product per
// day are valid and additive.
type Log struct {
	ID            string    `json:"id,omitempty"`
	Date          string    `json:"date"`
	ProductID     string    `json:"productId"`
	ProductName   *string   `json:"productName,omitempty"`
	ProductBrand  *string   `json:"productBrand,omitempty"`
	ServingsTaken float64   `json:"servingsTaken"`
	Timestamp     time.Time `json:"timestamp"`
}
