package dto

// ObservationRequest alta o edición de una observación.
type ObservationRequest struct {
	Text string `json:"text"`
}

// ObservationResponse observación con sus marcas de tiempo.
type ObservationResponse struct {
	ID            int64  `json:"id"`
	OpportunityID int64  `json:"opportunity_id"`
	Text          string `json:"text"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
