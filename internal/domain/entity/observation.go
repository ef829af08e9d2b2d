package entity

import "time"

// Observation nota libre asociada a una oportunidad.
// Se listan por fecha de creación descendente; la más reciente se denormaliza
// en los listados de oportunidades como last_observation.
type Observation struct {
	ID            int64
	OpportunityID int64
	Text          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
