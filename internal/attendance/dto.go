package attendance

type MarkRequest struct {
	TrainingTypeID  *string `json:"trainingTypeId,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type ToggleResponse struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

type TypeRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color string  `json:"color" binding:"required"`
	Icon  *string `json:"icon,omitempty"`
}

type BackfillResponse struct {
	Migrated int `json:"migrated"`
	Total    int `json:"total"`
}
