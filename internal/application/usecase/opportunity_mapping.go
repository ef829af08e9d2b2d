package usecase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

const dateLayout = "2006-01-02"

// parseDate interpreta una fecha del body. Cadena vacía o null limpian el
// campo; cualquier otro valor debe ser YYYY-MM-DD.
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &t, nil
}

// normalizeText convierte cadena vacía en null; el resto pasa tal cual.
func normalizeText(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	return raw
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// applyFieldPatch vuelca sobre la entidad los campos presentes en el body,
// fuera del par porcentaje/color que resuelve applySemaphorePatch. Un null
// explícito limpia el campo; ausencia lo deja intacto.
func applyFieldPatch(o *entity.Opportunity, p *dto.OpportunityPatch) error {
	if p.Has("name") {
		if p.Name == nil {
			o.Name = ""
		} else {
			o.Name = *p.Name
		}
	}
	if p.Has("account_id") {
		o.AccountID = p.AccountID
	}
	if p.Has("status_id") {
		o.StatusID = p.StatusID
	}
	if p.Has("opportunity_type_id") {
		o.OpportunityTypeID = p.OpportunityTypeID
	}
	if p.Has("manager_id") {
		if p.ManagerID == nil {
			return fmt.Errorf("%w: manager_id no puede ser null", domain.ErrInvalidInput)
		}
		o.ManagerID = *p.ManagerID
	}
	if p.Has("responsible_dc_id") {
		o.ResponsibleDCID = p.ResponsibleDCID
	}
	if p.Has("responsible_business_id") {
		o.ResponsibleBusinessID = p.ResponsibleBusinessID
	}
	if p.Has("responsible_tech_id") {
		o.ResponsibleTechID = p.ResponsibleTechID
	}
	if p.Has("has_ia_proposal") && p.HasIAProposal != nil {
		o.HasIAProposal = *p.HasIAProposal
	}
	if p.Has("has_prototype") && p.HasPrototype != nil {
		o.HasPrototype = *p.HasPrototype
	}
	if p.Has("has_rfp") && p.HasRFP != nil {
		o.HasRFP = *p.HasRFP
	}
	if p.Has("has_anteproyecto") && p.HasAnteproyecto != nil {
		o.HasAnteproyecto = *p.HasAnteproyecto
	}
	if p.Has("reason_motive") {
		o.ReasonMotive = normalizeText(p.ReasonMotive)
	}
	if p.Has("motive_id") {
		o.MotiveID = p.MotiveID
	}
	if p.Has("k_red_index") {
		o.KRedIndex = p.KRedIndex
	}
	if p.Has("estimated_hours") {
		o.EstimatedHours = p.EstimatedHours
	}
	if p.Has("estimated_term_months") {
		o.EstimatedTermMonths = p.EstimatedTermMonths
	}
	if p.Has("work_plan_link") {
		o.WorkPlanLink = normalizeText(p.WorkPlanLink)
	}
	if p.Has("order_index") {
		o.OrderIndex = p.OrderIndex
	}
	if p.Has("is_archived") && p.IsArchived != nil {
		o.IsArchived = *p.IsArchived
	}

	dates := []struct {
		field string
		raw   *string
		dst   **time.Time
	}{
		{"start_date", p.StartDate, &o.StartDate},
		{"understanding_date", p.UnderstandingDate, &o.UnderstandingDate},
		{"scope_date", p.ScopeDate, &o.ScopeDate},
		{"coe_date", p.CoeDate, &o.CoeDate},
		{"delivery_date", p.DeliveryDate, &o.DeliveryDate},
		{"commitment_date", p.CommitmentDate, &o.CommitmentDate},
		{"engagement_date", p.EngagementDate, &o.EngagementDate},
		{"real_delivery_date", p.RealDeliveryDate, &o.RealDeliveryDate},
	}
	for _, d := range dates {
		if !p.Has(d.field) {
			continue
		}
		t, err := parseDate(d.field, d.raw)
		if err != nil {
			return err
		}
		*d.dst = t
	}
	return nil
}

// toOpportunityResponse arma la fila de respuesta con los nombres
// desnormalizados y la métrica de días hábiles ya presentada.
func toOpportunityResponse(o *entity.Opportunity) *dto.OpportunityResponse {
	days, ok := pipeline.BusinessDays(o.ScopeDate, o.RealDeliveryDate)
	scopeToDelivery := "-"
	if ok {
		scopeToDelivery = strconv.Itoa(days)
	}
	return &dto.OpportunityResponse{
		ID:                    o.ID,
		Name:                  o.Name,
		AccountID:             o.AccountID,
		AccountName:           o.AccountName,
		StatusID:              o.StatusID,
		StatusName:            o.StatusName,
		OpportunityTypeID:     o.OpportunityTypeID,
		ManagerID:             o.ManagerID,
		ManagerName:           o.ManagerName,
		ResponsibleDCID:       o.ResponsibleDCID,
		DCName:                o.DCName,
		ResponsibleBusinessID: o.ResponsibleBusinessID,
		NegName:               o.NegName,
		ResponsibleTechID:     o.ResponsibleTechID,
		TecName:               o.TecName,
		Percentage:            o.Percentage,
		ColorCode:             string(o.ColorCode),
		HasIAProposal:         o.HasIAProposal,
		HasPrototype:          o.HasPrototype,
		HasRFP:                o.HasRFP,
		HasAnteproyecto:       o.HasAnteproyecto,
		ReasonMotive:          o.ReasonMotive,
		MotiveID:              o.MotiveID,
		MotiveName:            o.MotiveName,
		KRedIndex:             o.KRedIndex,
		StartDate:             formatDate(o.StartDate),
		UnderstandingDate:     formatDate(o.UnderstandingDate),
		ScopeDate:             formatDate(o.ScopeDate),
		CoeDate:               formatDate(o.CoeDate),
		DeliveryDate:          formatDate(o.DeliveryDate),
		CommitmentDate:        formatDate(o.CommitmentDate),
		EngagementDate:        formatDate(o.EngagementDate),
		RealDeliveryDate:      formatDate(o.RealDeliveryDate),
		EstimatedHours:        o.EstimatedHours,
		EstimatedTermMonths:   o.EstimatedTermMonths,
		WorkPlanLink:          o.WorkPlanLink,
		OrderIndex:            o.OrderIndex,
		IsArchived:            o.IsArchived,
		DeletedAt:             formatTimestamp(o.DeletedAt),
		UpdatedAt:             o.UpdatedAt.Format(time.RFC3339),
		LastObservation:       o.LastObservation,
		ScopeToDeliveryDays:   scopeToDelivery,
	}
}
