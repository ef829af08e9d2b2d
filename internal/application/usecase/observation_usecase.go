package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// ObservationUseCase bitácora de seguimiento de una oportunidad.
type ObservationUseCase struct {
	repo    repository.ObservationRepository
	oppRepo repository.OpportunityRepository
}

func NewObservationUseCase(repo repository.ObservationRepository, oppRepo repository.OpportunityRepository) *ObservationUseCase {
	return &ObservationUseCase{repo: repo, oppRepo: oppRepo}
}

// ListByOpportunity devuelve la bitácora, la más reciente primero.
func (uc *ObservationUseCase) ListByOpportunity(ctx context.Context, opportunityID int64) ([]dto.ObservationResponse, error) {
	if o, err := uc.oppRepo.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	} else if o == nil {
		return nil, domain.ErrNotFound
	}
	obs, err := uc.repo.ListByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ObservationResponse, 0, len(obs))
	for _, ob := range obs {
		out = append(out, toObservationResponse(ob))
	}
	return out, nil
}

// Create agrega una observación a la bitácora; el texto no puede ser vacío.
func (uc *ObservationUseCase) Create(ctx context.Context, opportunityID int64, in dto.ObservationRequest) (*dto.ObservationResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: la observación no puede ser vacía", domain.ErrInvalidInput)
	}
	if o, err := uc.oppRepo.GetByID(ctx, opportunityID); err != nil {
		return nil, err
	} else if o == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	ob := &entity.Observation{
		OpportunityID: opportunityID,
		Text:          text,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, err := uc.repo.Create(ctx, ob)
	if err != nil {
		return nil, err
	}
	ob.ID = id
	resp := toObservationResponse(ob)
	return &resp, nil
}

// Update reemplaza el texto de una observación existente.
func (uc *ObservationUseCase) Update(ctx context.Context, id int64, in dto.ObservationRequest) (*dto.ObservationResponse, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: la observación no puede ser vacía", domain.ErrInvalidInput)
	}
	ob, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ob == nil {
		return nil, domain.ErrNotFound
	}
	ob.Text = text
	ob.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ob); err != nil {
		return nil, err
	}
	resp := toObservationResponse(ob)
	return &resp, nil
}

// Delete elimina una observación de la bitácora.
func (uc *ObservationUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toObservationResponse(ob *entity.Observation) dto.ObservationResponse {
	return dto.ObservationResponse{
		ID:            ob.ID,
		OpportunityID: ob.OpportunityID,
		Text:          ob.Text,
		CreatedAt:     ob.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     ob.UpdatedAt.Format(time.RFC3339),
	}
}
