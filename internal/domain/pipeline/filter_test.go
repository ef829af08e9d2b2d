package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

// dataset de prueba: dos cuentas, dos gerentes, dos estados.
func facetDataset() []*entity.Opportunity {
	return []*entity.Opportunity{
		opp(1, func(o *entity.Opportunity) {
			o.AccountID = ptr(int64(1))
			o.AccountName = ptr("Acme")
			o.StatusID = ptr(int64(10))
			o.ManagerID = 100
			o.ManagerName = ptr("Laura Pérez")
		}),
		opp(2, func(o *entity.Opportunity) {
			o.AccountID = ptr(int64(1))
			o.AccountName = ptr("Acme")
			o.StatusID = ptr(int64(20))
			o.ManagerID = 200
			o.ManagerName = ptr("Marcos Díaz")
		}),
		opp(3, func(o *entity.Opportunity) {
			o.AccountID = ptr(int64(2))
			o.AccountName = ptr("Globex")
			o.StatusID = ptr(int64(20))
			o.ManagerID = 200
			o.ManagerName = ptr("Marcos Díaz")
			o.ResponsibleDCID = ptr(int64(300))
			o.DCName = ptr("Sofía Ruiz")
		}),
	}
}

func TestApply_CombinaConAND(t *testing.T) {
	data := facetDataset()

	got := pipeline.Apply(data, pipeline.Criteria{
		AccountID: ptr(int64(1)),
		StatusID:  ptr(int64(20)),
	})

	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

// La faceta propia no se restringe a sí misma: con Acme seleccionada, Acme
// sigue apareciendo en las opciones de cuenta, pero las demás dimensiones sí
// se acotan.
func TestFacets_LaDimensionPropiaNoSeAutofiltra(t *testing.T) {
	data := facetDataset()

	facets := pipeline.Facets(data, pipeline.Criteria{AccountID: ptr(int64(1))})

	assert.Equal(t, []int64{1, 2}, facets.AccountIDs, "ambas cuentas siguen siendo opciones")
	assert.Equal(t, []int64{10, 20}, facets.StatusIDs)
	assert.Equal(t, []int64{100, 200}, facets.ManagerIDs)
	assert.Empty(t, facets.ApproverIDs, "ninguna oportunidad de Acme tiene aprobador")
}

func TestFacets_CascadaEntreDimensiones(t *testing.T) {
	data := facetDataset()

	// Con el gerente 100 seleccionado, solo la cuenta Acme y el estado 10
	// siguen alcanzables en el resto de selectores.
	facets := pipeline.Facets(data, pipeline.Criteria{ManagerID: ptr(int64(100))})

	assert.Equal(t, []int64{1}, facets.AccountIDs)
	assert.Equal(t, []int64{10}, facets.StatusIDs)
	assert.Equal(t, []int64{100, 200}, facets.ManagerIDs, "el selector de gerente se calcula sin su propio filtro")
}

func TestApply_BusquedaLibre(t *testing.T) {
	data := facetDataset()

	cases := []struct {
		name   string
		term   string
		expect []int64
	}{
		{"por nombre de cuenta", "acme", []int64{1, 2}},
		{"por gerente sin acentos", "marcos diaz", []int64{2, 3}},
		{"por aprobador", "sofía", []int64{3}},
		{"sin coincidencias", "initech", []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pipeline.Apply(data, pipeline.Criteria{Search: tc.term})
			assert.Equal(t, tc.expect, ids(got))
		})
	}
}

func TestApply_BusquedaYFiltroCombinan(t *testing.T) {
	data := facetDataset()

	got := pipeline.Apply(data, pipeline.Criteria{
		Search:    "marcos",
		AccountID: ptr(int64(2)),
	})

	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestApply_FiltroPorKRed(t *testing.T) {
	data := []*entity.Opportunity{
		opp(1, func(o *entity.Opportunity) { o.KRedIndex = ptr(3) }),
		opp(2, nil), // k_red nulo cuenta como 0
	}

	got := pipeline.Apply(data, pipeline.Criteria{KRedIndex: ptr(3)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = pipeline.Apply(data, pipeline.Criteria{KRedIndex: ptr(0)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, pipeline.Criteria{}.IsZero())
	assert.False(t, pipeline.Criteria{Search: "x"}.IsZero())
	assert.False(t, pipeline.Criteria{AccountID: ptr(int64(1))}.IsZero())
}
