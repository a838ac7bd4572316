package supplement

type ProductRequest struct {
	Name                  string           `json:"name" binding:"required"`
	Brand                 string           `json:"brand"`
	Ingredients           []IngredientLine `json:"ingredients" binding:"required"`
	ServingsPerDayDefault float64          `json:"servingsPerDayDefault"`
}

type LogRequest struct {
	Date          string  `json:"date" binding:"required"`
	ProductID     string  `json:"productId" binding:"required"`
	ServingsTaken float64 `json:"servingsTaken" binding:"required"`
}

type SeedResponse struct {
	Seeded int `json:"seeded"`
}
