package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// AccountUseCase casos de uso de cuentas. La regla central es la guarda de
// desactivación: una cuenta con oportunidades activas no se puede apagar.
type AccountUseCase struct {
	repo repository.AccountRepository
}

func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// List devuelve las cuentas; con onlyActive true solo las habilitadas para
// asignar en oportunidades nuevas.
func (uc *AccountUseCase) List(ctx context.Context, onlyActive bool) ([]dto.AccountResponse, error) {
	accs, err := uc.repo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, toAccountResponse(a))
	}
	return out, nil
}

// Create da de alta una cuenta; el nombre es único y activa por defecto.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.AccountRequest) (*dto.AccountResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la cuenta es obligatorio", domain.ErrInvalidInput)
	}
	a := &entity.Account{
		Name:         name,
		ContactName:  normalizeText(in.ContactName),
		ContactEmail: normalizeText(in.ContactEmail),
		IsActive:     true,
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	id, err := uc.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	resp := toAccountResponse(a)
	return &resp, nil
}

// Update edita una cuenta. Desactivarla exige que no tenga oportunidades
// activas; el mensaje de rechazo incluye el conteo.
func (uc *AccountUseCase) Update(ctx context.Context, id int64, in dto.AccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}

	if in.IsActive != nil && a.IsActive && !*in.IsActive {
		n, err := uc.repo.CountActiveOpportunities(ctx, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("%w: la cuenta '%s' tiene %d oportunidad(es) activa(s)",
				domain.ErrAccountHasActive, a.Name, n)
		}
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		a.Name = name
	}
	a.ContactName = normalizeText(in.ContactName)
	a.ContactEmail = normalizeText(in.ContactEmail)
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	resp := toAccountResponse(a)
	return &resp, nil
}

// Delete elimina una cuenta sin oportunidades que la referencien. La guarda
// corre en la transacción del repositorio; aquí solo se propaga el conflicto.
func (uc *AccountUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toAccountResponse(a *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:           a.ID,
		Name:         a.Name,
		ContactName:  a.ContactName,
		ContactEmail: a.ContactEmail,
		IsActive:     a.IsActive,
	}
}
