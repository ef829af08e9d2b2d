package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/dto"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// fakeOpportunityRepo repositorio en memoria para los casos de uso.
type fakeOpportunityRepo struct {
	rows   map[int64]*entity.Opportunity
	nextID int64

	// ids cuyo archivado debe fallar en SetArchived
	failArchive map[int64]bool
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{rows: make(map[int64]*entity.Opportunity), failArchive: make(map[int64]bool)}
}

func (f *fakeOpportunityRepo) List(_ context.Context, view repository.View) ([]*entity.Opportunity, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	out := make([]*entity.Opportunity, 0, len(ids))
	for _, id := range ids {
		o := f.rows[id]
		switch view {
		case repository.ViewActive:
			if o.DeletedAt != nil || o.IsArchived {
				continue
			}
		case repository.ViewHistory:
			if o.DeletedAt != nil || !o.IsArchived {
				continue
			}
		case repository.ViewTrash:
			if o.DeletedAt == nil {
				continue
			}
		default:
			if o.DeletedAt != nil {
				continue
			}
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOpportunityRepo) GetByID(_ context.Context, id int64) (*entity.Opportunity, error) {
	o, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOpportunityRepo) MaxID(_ context.Context) (int64, error) {
	var max int64
	for id := range f.rows {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (f *fakeOpportunityRepo) Create(_ context.Context, o *entity.Opportunity) (int64, error) {
	f.nextID++
	cp := *o
	cp.ID = f.nextID
	f.rows[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeOpportunityRepo) Update(_ context.Context, o *entity.Opportunity) error {
	if _, ok := f.rows[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	f.rows[o.ID] = &cp
	return nil
}

func (f *fakeOpportunityRepo) SoftDelete(_ context.Context, id int64) error {
	o, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	o.DeletedAt = &now
	return nil
}

func (f *fakeOpportunityRepo) Restore(_ context.Context, id int64) error {
	o, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.DeletedAt = nil
	return nil
}

func (f *fakeOpportunityRepo) HardDelete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeOpportunityRepo) SetArchived(_ context.Context, id int64, archived bool) error {
	if f.failArchive[id] {
		return errors.New("fallo simulado")
	}
	o, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.IsArchived = archived
	return nil
}

type fakeAccountRepo struct {
	rows map[int64]*entity.Account

	// oportunidades activas que reporta la guarda de desactivación
	activeCount int
}

func (f *fakeAccountRepo) List(_ context.Context, onlyActive bool) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(f.rows))
	for _, a := range f.rows {
		if onlyActive && !a.IsActive {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	a, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, a *entity.Account) (int64, error) {
	id := int64(len(f.rows) + 1)
	cp := *a
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, a *entity.Account) error {
	cp := *a
	f.rows[a.ID] = &cp
	return nil
}

func (f *fakeAccountRepo) CountActiveOpportunities(_ context.Context, _ int64) (int, error) {
	return f.activeCount, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	if f.activeCount > 0 {
		return &domain.ReferencedError{Count: f.activeCount}
	}
	delete(f.rows, id)
	return nil
}

type fakeEmployeeRepo struct {
	rows map[int64]*entity.Employee
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) { return nil, nil }

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) (int64, error) {
	id := int64(len(f.rows) + 1)
	cp := *e
	cp.ID = id
	f.rows[id] = &cp
	return id, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	f.rows[e.ID] = &cp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

func newOpportunityUC() (*OpportunityUseCase, *fakeOpportunityRepo) {
	repo := newFakeOpportunityRepo()
	accounts := &fakeAccountRepo{rows: map[int64]*entity.Account{
		1: {ID: 1, Name: "Acme", IsActive: true},
		2: {ID: 2, Name: "Dormida", IsActive: false},
	}}
	employees := &fakeEmployeeRepo{rows: map[int64]*entity.Employee{
		1: {ID: 1, FullName: "Laura Gómez", RoleID: 1, IsActive: true, RoleKind: entity.RoleKindManager},
		2: {ID: 2, FullName: "Baja Pérez", RoleID: 1, IsActive: false, RoleKind: entity.RoleKindManager},
	}}
	return NewOpportunityUseCase(repo, accounts, employees), repo
}

func patchOf(t *testing.T, body string) dto.OpportunityPatch {
	t.Helper()
	var p dto.OpportunityPatch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func TestCreate_RojoFuerzaCero(t *testing.T) {
	uc, repo := newOpportunityUC()

	resp, err := uc.Create(context.Background(), dto.CreateOpportunityRequest{
		Name:       "Migración core",
		ManagerID:  1,
		ColorCode:  "RED",
		Percentage: 55,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Percentage)
	assert.Equal(t, "RED", resp.ColorCode)
	assert.Equal(t, 0, repo.rows[resp.ID].Percentage)
}

func TestCreate_SemaforoInvalido(t *testing.T) {
	uc, _ := newOpportunityUC()

	_, err := uc.Create(context.Background(), dto.CreateOpportunityRequest{
		Name:       "Propuesta",
		ManagerID:  1,
		ColorCode:  "YELLOW",
		Percentage: 80,
	})
	assert.ErrorIs(t, err, domain.ErrSemaphoreRule)
}

func TestCreate_GerenteObligatorio(t *testing.T) {
	uc, _ := newOpportunityUC()

	_, err := uc.Create(context.Background(), dto.CreateOpportunityRequest{Name: "Sin gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ReferenciasInactivas(t *testing.T) {
	uc, _ := newOpportunityUC()
	ctx := context.Background()

	cuenta := int64(2)
	_, err := uc.Create(ctx, dto.CreateOpportunityRequest{Name: "X", ManagerID: 1, AccountID: &cuenta})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateOpportunityRequest{Name: "X", ManagerID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_IDEmitidoPorElServidor(t *testing.T) {
	uc, _ := newOpportunityUC()
	ctx := context.Background()

	first, err := uc.Create(ctx, dto.CreateOpportunityRequest{Name: "Uno", ManagerID: 1})
	require.NoError(t, err)
	second, err := uc.Create(ctx, dto.CreateOpportunityRequest{Name: "Dos", ManagerID: 1})
	require.NoError(t, err)

	assert.Greater(t, second.ID, first.ID)
}

func TestUpdate_PasarARojoFuerzaCero(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "En verde", ManagerID: 1, ColorCode: "GREEN", Percentage: 80,
	})
	require.NoError(t, err)

	resp, err := uc.Update(ctx, created.ID, patchOf(t, `{"color_code":"RED"}`))
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Percentage)
	assert.Equal(t, "RED", resp.ColorCode)
	assert.Equal(t, 0, repo.rows[created.ID].Percentage)
}

func TestUpdate_SalirDeRojoExigePorcentaje(t *testing.T) {
	uc, _ := newOpportunityUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "En rojo", ManagerID: 1, ColorCode: "RED",
	})
	require.NoError(t, err)

	// 0% guardado no es válido para YELLOW: sin porcentaje nuevo se rechaza.
	_, err = uc.Update(ctx, created.ID, patchOf(t, `{"color_code":"YELLOW"}`))
	assert.ErrorIs(t, err, domain.ErrPercentageRequired)

	// Con porcentaje válido en el mismo body la edición pasa.
	resp, err := uc.Update(ctx, created.ID, patchOf(t, `{"color_code":"YELLOW","percentage":60}`))
	require.NoError(t, err)
	assert.Equal(t, 60, resp.Percentage)
	assert.Equal(t, "YELLOW", resp.ColorCode)
}

func TestUpdate_PorcentajeSoloValidaContraColorActual(t *testing.T) {
	uc, _ := newOpportunityUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "Amarilla", ManagerID: 1, ColorCode: "YELLOW", Percentage: 55,
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, patchOf(t, `{"percentage":90}`))
	assert.ErrorIs(t, err, domain.ErrSemaphoreRule)

	resp, err := uc.Update(ctx, created.ID, patchOf(t, `{"percentage":65}`))
	require.NoError(t, err)
	assert.Equal(t, 65, resp.Percentage)
}

func TestUpdate_AusenteVsNull(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	start := "2026-03-02"
	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "Con fecha", ManagerID: 1, StartDate: &start,
	})
	require.NoError(t, err)

	// Un body que no menciona start_date la deja intacta.
	_, err = uc.Update(ctx, created.ID, patchOf(t, `{"name":"Renombrada"}`))
	require.NoError(t, err)
	require.NotNil(t, repo.rows[created.ID].StartDate)

	// Cadena vacía equivale a null y limpia el campo.
	_, err = uc.Update(ctx, created.ID, patchOf(t, `{"start_date":""}`))
	require.NoError(t, err)
	assert.Nil(t, repo.rows[created.ID].StartDate)
}

func TestRestore_NoTocaArchivado(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "Histórica", ManagerID: 1, IsArchived: true,
	})
	require.NoError(t, err)

	require.NoError(t, uc.SoftDelete(ctx, created.ID))
	require.NotNil(t, repo.rows[created.ID].DeletedAt)

	require.NoError(t, uc.Restore(ctx, created.ID))
	assert.Nil(t, repo.rows[created.ID].DeletedAt)
	assert.True(t, repo.rows[created.ID].IsArchived, "restaurar vuelve al corte previo, no a activas")
}

func TestMoveToHistory_SoloLasQueCumplen(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	k3, ganada := 3, "GANADA"
	seed := []*entity.Opportunity{
		{Name: "Roja madura", ManagerID: 1, ColorCode: entity.ColorRed, KRedIndex: &k3},
		{Name: "Cerrada", ManagerID: 1, ColorCode: entity.ColorGreen, Percentage: 100, StatusName: &ganada},
		{Name: "Sigue viva", ManagerID: 1, ColorCode: entity.ColorYellow, Percentage: 60},
	}
	for _, o := range seed {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	resp, err := uc.MoveToHistory(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Moved)
	assert.Equal(t, 0, resp.Failed)
	assert.True(t, repo.rows[1].IsArchived)
	assert.True(t, repo.rows[2].IsArchived)
	assert.False(t, repo.rows[3].IsArchived)
}

func TestMoveToHistory_SinCandidatas(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Opportunity{Name: "Viva", ManagerID: 1, ColorCode: entity.ColorGreen, Percentage: 80})
	require.NoError(t, err)

	resp, err := uc.MoveToHistory(ctx)
	require.NoError(t, err)

	assert.Zero(t, resp.Moved)
	assert.Contains(t, resp.Message, "No hay registros")
	assert.False(t, repo.rows[1].IsArchived)
}

func TestMoveToHistory_UnaFallaNoBloqueaElResto(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	k3 := 3
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &entity.Opportunity{Name: "Roja", ManagerID: 1, ColorCode: entity.ColorRed, KRedIndex: &k3})
		require.NoError(t, err)
	}
	repo.failArchive[2] = true

	resp, err := uc.MoveToHistory(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Moved)
	assert.Equal(t, 1, resp.Failed)
	assert.True(t, repo.rows[1].IsArchived)
	assert.False(t, repo.rows[2].IsArchived)
	assert.True(t, repo.rows[3].IsArchived)
}

func TestList_VistaActivaOrdenada(t *testing.T) {
	uc, repo := newOpportunityUC()
	ctx := context.Background()

	acc := int64(1)
	eval, gan := "EVALUACIÓN", "GANADA"
	seed := []*entity.Opportunity{
		{Name: "Ganada vieja", AccountID: &acc, ManagerID: 1, StatusName: &gan, ColorCode: entity.ColorGreen, Percentage: 100},
		{Name: "En evaluación", AccountID: &acc, ManagerID: 1, StatusName: &eval, ColorCode: entity.ColorNone},
		{Name: "", ManagerID: 1, ColorCode: entity.ColorNone},
	}
	for _, o := range seed {
		_, err := repo.Create(ctx, o)
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, repository.ViewActive, pipeline.Criteria{})
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Incompleta primero, luego evaluación antes que ganada.
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, int64(1), out[2].ID)
}

func TestGet_Inexistente(t *testing.T) {
	uc, _ := newOpportunityUC()

	_, err := uc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScopeToDeliveryDays_Presentacion(t *testing.T) {
	uc, _ := newOpportunityUC()
	ctx := context.Background()

	scope, delivery := "2026-01-05", "2026-01-12" // lunes a lunes: 5 hábiles
	created, err := uc.Create(ctx, dto.CreateOpportunityRequest{
		Name: "Con plazo", ManagerID: 1, ScopeDate: &scope, RealDeliveryDate: &delivery,
	})
	require.NoError(t, err)
	assert.Equal(t, "5", created.ScopeToDeliveryDays)

	sinFecha, err := uc.Create(ctx, dto.CreateOpportunityRequest{Name: "Sin plazo", ManagerID: 1})
	require.NoError(t, err)
	assert.Equal(t, "-", sinFecha.ScopeToDeliveryDays)
}
