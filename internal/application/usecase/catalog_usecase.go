package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// CatalogUseCase los tres catálogos de solo nombre: estados, tipos y motivos.
// Comparten las mismas reglas (nombre obligatorio y único, borrado guardado
// por referencias), así que un solo caso de uso los atiende a los tres.
type CatalogUseCase struct {
	statuses repository.StatusRepository
	types    repository.OpportunityTypeRepository
	motives  repository.MotiveRepository
}

func NewCatalogUseCase(
	statuses repository.StatusRepository,
	types repository.OpportunityTypeRepository,
	motives repository.MotiveRepository,
) *CatalogUseCase {
	return &CatalogUseCase{statuses: statuses, types: types, motives: motives}
}

func requireName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	return name, nil
}

// ListStatuses devuelve los estados del pipeline.
func (uc *CatalogUseCase) ListStatuses(ctx context.Context) ([]dto.NameResponse, error) {
	rows, err := uc.statuses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) CreateStatus(ctx context.Context, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	id, err := uc.statuses.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) UpdateStatus(ctx context.Context, id int64, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.statuses.Update(ctx, id, name); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) DeleteStatus(ctx context.Context, id int64) error {
	return uc.statuses.Delete(ctx, id)
}

// ListTypes devuelve los tipos de oportunidad.
func (uc *CatalogUseCase) ListTypes(ctx context.Context) ([]dto.NameResponse, error) {
	rows, err := uc.types.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) CreateType(ctx context.Context, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	id, err := uc.types.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) UpdateType(ctx context.Context, id int64, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.types.Update(ctx, id, name); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) DeleteType(ctx context.Context, id int64) error {
	return uc.types.Delete(ctx, id)
}

// ListMotives devuelve los motivos de cierre o desestimación.
func (uc *CatalogUseCase) ListMotives(ctx context.Context) ([]dto.NameResponse, error) {
	rows, err := uc.motives.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NameResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NameResponse{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) CreateMotive(ctx context.Context, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	id, err := uc.motives.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) UpdateMotive(ctx context.Context, id int64, in dto.NameRequest) (*dto.NameResponse, error) {
	name, err := requireName(in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.motives.Update(ctx, id, name); err != nil {
		return nil, err
	}
	return &dto.NameResponse{ID: id, Name: name}, nil
}

func (uc *CatalogUseCase) DeleteMotive(ctx context.Context, id int64) error {
	return uc.motives.Delete(ctx, id)
}
