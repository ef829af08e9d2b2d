package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ColorCode semáforo de avance de una oportunidad.
type ColorCode string

const (
	ColorRed    ColorCode = "RED"
	ColorYellow ColorCode = "YELLOW"
	ColorGreen  ColorCode = "GREEN"
	ColorNone   ColorCode = "NONE"
)

// Valid indica si el valor es uno de los cuatro colores conocidos.
func (c ColorCode) Valid() bool {
	switch c {
	case ColorRed, ColorYellow, ColorGreen, ColorNone:
		return true
	}
	return false
}

// LifecycleState estado de ciclo de vida derivado de is_archived y deleted_at.
type LifecycleState string

const (
	StateActive  LifecycleState = "ACTIVE"
	StateHistory LifecycleState = "HISTORY"
	StateTrash   LifecycleState = "TRASH"
)

// Opportunity es la entidad central del pipeline comercial.
//
// Las filas incompletas (sin nombre o sin cuenta) son válidas: la grilla las
// muestra primero para que se completen. Los campos *Name/LastObservation se
// denormalizan solo en lecturas de listado.
type Opportunity struct {
	ID                    int64
	Name                  string
	AccountID             *int64
	StatusID              *int64
	OpportunityTypeID     *int64
	ManagerID             int64
	ResponsibleDCID       *int64
	ResponsibleBusinessID *int64
	ResponsibleTechID     *int64

	// Semáforo y reglas de negocio
	Percentage      int
	ColorCode       ColorCode
	HasIAProposal   bool
	HasPrototype    bool
	HasRFP          bool
	HasAnteproyecto bool
	ReasonMotive    *string
	MotiveID        *int64
	KRedIndex       *int

	// Cronograma
	StartDate         *time.Time
	UnderstandingDate *time.Time
	ScopeDate         *time.Time
	CoeDate           *time.Time
	DeliveryDate      *time.Time
	CommitmentDate    *time.Time
	EngagementDate    *time.Time
	RealDeliveryDate  *time.Time

	// Métricas de esfuerzo
	EstimatedHours      *decimal.Decimal
	EstimatedTermMonths *decimal.Decimal
	WorkPlanLink        *string
	OrderIndex          *int

	// Estados de persistencia
	IsArchived bool
	DeletedAt  *time.Time
	UpdatedAt  time.Time

	// Denormalizados (solo lectura, presentes en listados)
	AccountName     *string
	StatusName      *string
	MotiveName      *string
	ManagerName     *string
	DCName          *string
	NegName         *string
	TecName         *string
	LastObservation *string
}

// State deriva el estado de ciclo de vida. deleted_at manda sobre is_archived.
func (o *Opportunity) State() LifecycleState {
	if o.DeletedAt != nil {
		return StateTrash
	}
	if o.IsArchived {
		return StateHistory
	}
	return StateActive
}

// KRed devuelve el índice k-red tratando nil como cero.
func (o *Opportunity) KRed() int {
	if o.KRedIndex == nil {
		return 0
	}
	return *o.KRedIndex
}
