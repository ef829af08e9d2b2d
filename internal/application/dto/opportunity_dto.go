package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OpportunityPatch actualización parcial de una oportunidad. Cada edición
// inline de la grilla llega como un body con solo los campos tocados, por lo
// que hay que distinguir "campo ausente" de "campo en null": UnmarshalJSON
// registra las claves presentes y Has() las consulta.
//
// Regla heredada del cliente: un string vacío equivale a null.
type OpportunityPatch struct {
	Name                  *string          `json:"name"`
	AccountID             *int64           `json:"account_id"`
	StatusID              *int64           `json:"status_id"`
	OpportunityTypeID     *int64           `json:"opportunity_type_id"`
	ManagerID             *int64           `json:"manager_id"`
	ResponsibleDCID       *int64           `json:"responsible_dc_id"`
	ResponsibleBusinessID *int64           `json:"responsible_business_id"`
	ResponsibleTechID     *int64           `json:"responsible_tech_id"`
	Percentage            *int             `json:"percentage"`
	ColorCode             *string          `json:"color_code"`
	HasIAProposal         *bool            `json:"has_ia_proposal"`
	HasPrototype          *bool            `json:"has_prototype"`
	HasRFP                *bool            `json:"has_rfp"`
	HasAnteproyecto       *bool            `json:"has_anteproyecto"`
	ReasonMotive          *string          `json:"reason_motive"`
	MotiveID              *int64           `json:"motive_id"`
	KRedIndex             *int             `json:"k_red_index"`
	StartDate             *string          `json:"start_date"`
	UnderstandingDate     *string          `json:"understanding_date"`
	ScopeDate             *string          `json:"scope_date"`
	CoeDate               *string          `json:"coe_date"`
	DeliveryDate          *string          `json:"delivery_date"`
	CommitmentDate        *string          `json:"commitment_date"`
	EngagementDate        *string          `json:"engagement_date"`
	RealDeliveryDate      *string          `json:"real_delivery_date"`
	EstimatedHours        *decimal.Decimal `json:"estimated_hours"`
	EstimatedTermMonths   *decimal.Decimal `json:"estimated_term_months"`
	WorkPlanLink          *string          `json:"work_plan_link"`
	OrderIndex            *int             `json:"order_index"`
	IsArchived            *bool            `json:"is_archived"`

	present map[string]struct{}
}

// UnmarshalJSON decodifica el patch y registra qué claves venían en el body.
func (p *OpportunityPatch) UnmarshalJSON(data []byte) error {
	type alias OpportunityPatch
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = OpportunityPatch(a)
	p.present = make(map[string]struct{}, len(raw))
	for k := range raw {
		p.present[k] = struct{}{}
	}
	return nil
}

// Has indica si la clave JSON venía en el body (aunque fuera null).
func (p *OpportunityPatch) Has(field string) bool {
	_, ok := p.present[field]
	return ok
}

// CreateOpportunityRequest alta de oportunidad. El id lo emite el servidor y
// vuelve en la respuesta; el cliente no lo predice.
type CreateOpportunityRequest struct {
	Name                  string           `json:"name"`
	AccountID             *int64           `json:"account_id"`
	StatusID              *int64           `json:"status_id"`
	OpportunityTypeID     *int64           `json:"opportunity_type_id"`
	ManagerID             int64            `json:"manager_id"`
	ResponsibleDCID       *int64           `json:"responsible_dc_id"`
	ResponsibleBusinessID *int64           `json:"responsible_business_id"`
	ResponsibleTechID     *int64           `json:"responsible_tech_id"`
	Percentage            int              `json:"percentage"`
	ColorCode             string           `json:"color_code"`
	HasIAProposal         bool             `json:"has_ia_proposal"`
	HasPrototype          bool             `json:"has_prototype"`
	HasRFP                bool             `json:"has_rfp"`
	HasAnteproyecto       bool             `json:"has_anteproyecto"`
	ReasonMotive          *string          `json:"reason_motive"`
	MotiveID              *int64           `json:"motive_id"`
	KRedIndex             *int             `json:"k_red_index"`
	StartDate             *string          `json:"start_date"`
	UnderstandingDate     *string          `json:"understanding_date"`
	ScopeDate             *string          `json:"scope_date"`
	CoeDate               *string          `json:"coe_date"`
	DeliveryDate          *string          `json:"delivery_date"`
	CommitmentDate        *string          `json:"commitment_date"`
	EngagementDate        *string          `json:"engagement_date"`
	RealDeliveryDate      *string          `json:"real_delivery_date"`
	EstimatedHours        *decimal.Decimal `json:"estimated_hours"`
	EstimatedTermMonths   *decimal.Decimal `json:"estimated_term_months"`
	WorkPlanLink          *string          `json:"work_plan_link"`
	OrderIndex            *int             `json:"order_index"`
	IsArchived            bool             `json:"is_archived"`
}

// OpportunityResponse fila completa de oportunidad, con los nombres
// denormalizados que consume la grilla. Las fechas van como YYYY-MM-DD.
type OpportunityResponse struct {
	ID                    int64            `json:"id"`
	Name                  string           `json:"name"`
	AccountID             *int64           `json:"account_id"`
	AccountName           *string          `json:"account_name,omitempty"`
	StatusID              *int64           `json:"status_id"`
	StatusName            *string          `json:"status_name,omitempty"`
	OpportunityTypeID     *int64           `json:"opportunity_type_id"`
	ManagerID             int64            `json:"manager_id"`
	ManagerName           *string          `json:"manager_name,omitempty"`
	ResponsibleDCID       *int64           `json:"responsible_dc_id"`
	DCName                *string          `json:"dc_name,omitempty"`
	ResponsibleBusinessID *int64           `json:"responsible_business_id"`
	NegName               *string          `json:"neg_name,omitempty"`
	ResponsibleTechID     *int64           `json:"responsible_tech_id"`
	TecName               *string          `json:"tec_name,omitempty"`
	Percentage            int              `json:"percentage"`
	ColorCode             string           `json:"color_code"`
	HasIAProposal         bool             `json:"has_ia_proposal"`
	HasPrototype          bool             `json:"has_prototype"`
	HasRFP                bool             `json:"has_rfp"`
	HasAnteproyecto       bool             `json:"has_anteproyecto"`
	ReasonMotive          *string          `json:"reason_motive"`
	MotiveID              *int64           `json:"motive_id"`
	MotiveName            *string          `json:"motive_name,omitempty"`
	KRedIndex             *int             `json:"k_red_index"`
	StartDate             *string          `json:"start_date"`
	UnderstandingDate     *string          `json:"understanding_date"`
	ScopeDate             *string          `json:"scope_date"`
	CoeDate               *string          `json:"coe_date"`
	DeliveryDate          *string          `json:"delivery_date"`
	CommitmentDate        *string          `json:"commitment_date"`
	EngagementDate        *string          `json:"engagement_date"`
	RealDeliveryDate      *string          `json:"real_delivery_date"`
	EstimatedHours        *decimal.Decimal `json:"estimated_hours"`
	EstimatedTermMonths   *decimal.Decimal `json:"estimated_term_months"`
	WorkPlanLink          *string          `json:"work_plan_link"`
	OrderIndex            *int             `json:"order_index"`
	IsArchived            bool             `json:"is_archived"`
	DeletedAt             *string          `json:"deleted_at"`
	UpdatedAt             string           `json:"updated_at"`
	LastObservation       *string          `json:"last_observation"`

	// Días hábiles entre cierre de alcance y entrega real; "-" si no aplica.
	ScopeToDeliveryDays string `json:"scope_to_delivery_days"`
}

// MaxIDResponse respuesta de la sonda de id máximo.
type MaxIDResponse struct {
	MaxID int64 `json:"max_id"`
}

// FacetsResponse ids alcanzables por selector dado el resto de filtros.
type FacetsResponse struct {
	AccountIDs  []int64 `json:"account_ids"`
	StatusIDs   []int64 `json:"status_ids"`
	ManagerIDs  []int64 `json:"manager_ids"`
	ApproverIDs []int64 `json:"approver_ids"`
	BusinessIDs []int64 `json:"business_ids"`
}

// MoveToHistoryResponse resultado del pase a históricos por lote.
type MoveToHistoryResponse struct {
	Moved   int    `json:"moved"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}
