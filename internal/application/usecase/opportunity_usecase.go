package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/semaphore"
)

// moveToHistoryWorkers cota de archivados concurrentes en el pase por lote.
const moveToHistoryWorkers = 8

// OpportunityUseCase casos de uso de oportunidades: listados ordenados y
// facetados, altas con id emitido por el servidor, ediciones parciales con la
// regla del semáforo, ciclo de vida papelera/históricos y pase por lote.
type OpportunityUseCase struct {
	repo         repository.OpportunityRepository
	accountRepo  repository.AccountRepository
	employeeRepo repository.EmployeeRepository
}

// NewOpportunityUseCase construye el caso de uso con sus puertos.
func NewOpportunityUseCase(
	repo repository.OpportunityRepository,
	accountRepo repository.AccountRepository,
	employeeRepo repository.EmployeeRepository,
) *OpportunityUseCase {
	return &OpportunityUseCase{repo: repo, accountRepo: accountRepo, employeeRepo: employeeRepo}
}

// List devuelve la vista pedida ya filtrada y, para la vista activa, ordenada
// con la prioridad de estados. Las demás vistas conservan el orden id
// descendente que entrega el repositorio.
func (uc *OpportunityUseCase) List(ctx context.Context, view repository.View, cr pipeline.Criteria) ([]dto.OpportunityResponse, error) {
	opps, err := uc.repo.List(ctx, view)
	if err != nil {
		return nil, err
	}
	opps = pipeline.Apply(opps, cr)
	if view == repository.ViewActive {
		opps = pipeline.SortActive(opps)
	}
	out := make([]dto.OpportunityResponse, 0, len(opps))
	for _, o := range opps {
		out = append(out, *toOpportunityResponse(o))
	}
	return out, nil
}

// Facets calcula las opciones alcanzables de cada selector de la vista.
func (uc *OpportunityUseCase) Facets(ctx context.Context, view repository.View, cr pipeline.Criteria) (*dto.FacetsResponse, error) {
	opps, err := uc.repo.List(ctx, view)
	if err != nil {
		return nil, err
	}
	f := pipeline.Facets(opps, cr)
	return &dto.FacetsResponse{
		AccountIDs:  f.AccountIDs,
		StatusIDs:   f.StatusIDs,
		ManagerIDs:  f.ManagerIDs,
		ApproverIDs: f.ApproverIDs,
		BusinessIDs: f.BusinessIDs,
	}, nil
}

// MaxID sonda heredada del cliente; los ids reales los emite Create.
func (uc *OpportunityUseCase) MaxID(ctx context.Context) (int64, error) {
	return uc.repo.MaxID(ctx)
}

// Get devuelve una oportunidad por id, o domain.ErrNotFound.
func (uc *OpportunityUseCase) Get(ctx context.Context, id int64) (*dto.OpportunityResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOpportunityResponse(o), nil
}

// Create da de alta una oportunidad. Valida gerente obligatorio, referencias
// activas y la regla del semáforo; el color rojo fuerza porcentaje 0. El id
// lo emite la base y vuelve en la respuesta.
func (uc *OpportunityUseCase) Create(ctx context.Context, in dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	if in.ManagerID == 0 {
		return nil, fmt.Errorf("%w: el gerente comercial es obligatorio", domain.ErrInvalidInput)
	}
	color := entity.ColorCode(in.ColorCode)
	if in.ColorCode == "" {
		color = entity.ColorNone
	}
	if !color.Valid() {
		return nil, fmt.Errorf("%w: color_code desconocido '%s'", domain.ErrInvalidInput, in.ColorCode)
	}
	percentage := in.Percentage
	if color == entity.ColorRed {
		percentage = 0
	}
	if !semaphore.Validate(percentage, color) {
		return nil, fmt.Errorf("%w: porcentaje %d%% con color %s (%s)",
			domain.ErrSemaphoreRule, percentage, color, semaphore.RangeSuggestion(color))
	}
	if err := uc.checkReferences(ctx, in.AccountID, &in.ManagerID); err != nil {
		return nil, err
	}

	o := &entity.Opportunity{
		Name:                  in.Name,
		AccountID:             in.AccountID,
		StatusID:              in.StatusID,
		OpportunityTypeID:     in.OpportunityTypeID,
		ManagerID:             in.ManagerID,
		ResponsibleDCID:       in.ResponsibleDCID,
		ResponsibleBusinessID: in.ResponsibleBusinessID,
		ResponsibleTechID:     in.ResponsibleTechID,
		Percentage:            percentage,
		ColorCode:             color,
		HasIAProposal:         in.HasIAProposal,
		HasPrototype:          in.HasPrototype,
		HasRFP:                in.HasRFP,
		HasAnteproyecto:       in.HasAnteproyecto,
		ReasonMotive:          normalizeText(in.ReasonMotive),
		MotiveID:              in.MotiveID,
		KRedIndex:             in.KRedIndex,
		EstimatedHours:        in.EstimatedHours,
		EstimatedTermMonths:   in.EstimatedTermMonths,
		WorkPlanLink:          normalizeText(in.WorkPlanLink),
		OrderIndex:            in.OrderIndex,
		IsArchived:            in.IsArchived,
		UpdatedAt:             time.Now(),
	}
	var err error
	if o.StartDate, err = parseDate("start_date", in.StartDate); err != nil {
		return nil, err
	}
	if o.UnderstandingDate, err = parseDate("understanding_date", in.UnderstandingDate); err != nil {
		return nil, err
	}
	if o.ScopeDate, err = parseDate("scope_date", in.ScopeDate); err != nil {
		return nil, err
	}
	if o.CoeDate, err = parseDate("coe_date", in.CoeDate); err != nil {
		return nil, err
	}
	if o.DeliveryDate, err = parseDate("delivery_date", in.DeliveryDate); err != nil {
		return nil, err
	}
	if o.CommitmentDate, err = parseDate("commitment_date", in.CommitmentDate); err != nil {
		return nil, err
	}
	if o.EngagementDate, err = parseDate("engagement_date", in.EngagementDate); err != nil {
		return nil, err
	}
	if o.RealDeliveryDate, err = parseDate("real_delivery_date", in.RealDeliveryDate); err != nil {
		return nil, err
	}

	id, err := uc.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// Update aplica una edición parcial. La regla del semáforo se evalúa sobre el
// par resultante: pasar a rojo fuerza 0%, y salir de rojo sin un porcentaje
// nuevo válido exige reingresarlo (nunca se ajusta en silencio).
func (uc *OpportunityUseCase) Update(ctx context.Context, id int64, p dto.OpportunityPatch) (*dto.OpportunityResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}

	if err := uc.applySemaphorePatch(o, &p); err != nil {
		return nil, err
	}
	if err := applyFieldPatch(o, &p); err != nil {
		return nil, err
	}
	if p.Has("account_id") || p.Has("manager_id") {
		mid := o.ManagerID
		if err := uc.checkReferences(ctx, o.AccountID, &mid); err != nil {
			return nil, err
		}
	}

	o.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// applySemaphorePatch resuelve el nuevo par (porcentaje, color) de la edición.
func (uc *OpportunityUseCase) applySemaphorePatch(o *entity.Opportunity, p *dto.OpportunityPatch) error {
	if !p.Has("color_code") && !p.Has("percentage") {
		return nil
	}

	color := o.ColorCode
	if p.Has("color_code") {
		if p.ColorCode == nil {
			return fmt.Errorf("%w: color_code no puede ser null", domain.ErrInvalidInput)
		}
		color = entity.ColorCode(*p.ColorCode)
		if !color.Valid() {
			return fmt.Errorf("%w: color_code desconocido '%s'", domain.ErrInvalidInput, *p.ColorCode)
		}
	}

	// Rojo siempre fuerza 0%, venga o no porcentaje en el body.
	if color == entity.ColorRed {
		o.ColorCode = entity.ColorRed
		o.Percentage = 0
		return nil
	}

	percentage := o.Percentage
	hasNewPercentage := p.Has("percentage")
	if hasNewPercentage {
		if p.Percentage == nil {
			return fmt.Errorf("%w: percentage no puede ser null", domain.ErrInvalidInput)
		}
		percentage = *p.Percentage
	}

	if !semaphore.Validate(percentage, color) {
		if p.Has("color_code") && !hasNewPercentage {
			// El porcentaje almacenado quedó inválido para el color nuevo:
			// se exige reingresarlo en vez de ajustarlo en silencio.
			return fmt.Errorf("%w (%s)", domain.ErrPercentageRequired, semaphore.RangeSuggestion(color))
		}
		return fmt.Errorf("%w: porcentaje %d%% con color %s (%s)",
			domain.ErrSemaphoreRule, percentage, color, semaphore.RangeSuggestion(color))
	}

	o.ColorCode = color
	o.Percentage = percentage
	return nil
}

// checkReferences valida que cuenta y gerente existan y estén activos.
func (uc *OpportunityUseCase) checkReferences(ctx context.Context, accountID *int64, managerID *int64) error {
	if accountID != nil {
		acc, err := uc.accountRepo.GetByID(ctx, *accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return fmt.Errorf("%w: la cuenta %d no existe", domain.ErrInvalidInput, *accountID)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: la cuenta '%s' está inactiva", domain.ErrInvalidInput, acc.Name)
		}
	}
	if managerID != nil && *managerID != 0 {
		emp, err := uc.employeeRepo.GetByID(ctx, *managerID)
		if err != nil {
			return err
		}
		if emp == nil {
			return fmt.Errorf("%w: el empleado %d no existe", domain.ErrInvalidInput, *managerID)
		}
		if !emp.IsActive {
			return fmt.Errorf("%w: el empleado '%s' está inactivo", domain.ErrInvalidInput, emp.FullName)
		}
	}
	return nil
}

// SoftDelete mueve la oportunidad a la papelera.
func (uc *OpportunityUseCase) SoftDelete(ctx context.Context, id int64) error {
	return uc.repo.SoftDelete(ctx, id)
}

// Restore saca la oportunidad de la papelera. No toca is_archived: vuelve al
// estado activo o histórico que tenía antes del borrado.
func (uc *OpportunityUseCase) Restore(ctx context.Context, id int64) error {
	return uc.repo.Restore(ctx, id)
}

// HardDelete elimina definitivamente; la confirmación es asunto del cliente.
func (uc *OpportunityUseCase) HardDelete(ctx context.Context, id int64) error {
	return uc.repo.HardDelete(ctx, id)
}

// MoveToHistory archiva por lote las activas que cumplen la regla: rojo con
// k_red alto, o estado ganada/perdida. Cada archivado es independiente; una
// falla no bloquea al resto y el resultado reporta totales, no detalle.
func (uc *OpportunityUseCase) MoveToHistory(ctx context.Context) (*dto.MoveToHistoryResponse, error) {
	opps, err := uc.repo.List(ctx, repository.ViewActive)
	if err != nil {
		return nil, err
	}
	selected := pipeline.SelectForHistory(opps)
	if len(selected) == 0 {
		return &dto.MoveToHistoryResponse{
			Message: "No hay registros que cumplan las condiciones para ser movidos.",
		}, nil
	}

	var (
		mu     sync.Mutex
		failed int
	)
	var g errgroup.Group
	g.SetLimit(moveToHistoryWorkers)
	for _, o := range selected {
		o := o
		g.Go(func() error {
			if err := uc.repo.SetArchived(ctx, o.ID, true); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	moved := len(selected) - failed
	return &dto.MoveToHistoryResponse{
		Moved:   moved,
		Failed:  failed,
		Message: fmt.Sprintf("%d registros movidos a históricos.", moved),
	}, nil
}
