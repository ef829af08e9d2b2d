package entity

// OpportunityStatus estado del pipeline (EVALUACIÓN, GANADA, PERDIDA, ...).
type OpportunityStatus struct {
	ID   int64
	Name string
}

// OpportunityType tipo de oportunidad.
type OpportunityType struct {
	ID   int64
	Name string
}

// Motive motivo de cierre o desestimación.
type Motive struct {
	ID   int64
	Name string
}
