package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

func ptr[T any](v T) *T { return &v }

func opp(id int64, mutate func(*entity.Opportunity)) *entity.Opportunity {
	o := &entity.Opportunity{
		ID:        id,
		Name:      "Oportunidad",
		AccountID: ptr(int64(1)),
		StatusID:  ptr(int64(1)),
		ManagerID: 1,
		ColorCode: entity.ColorNone,
	}
	if mutate != nil {
		mutate(o)
	}
	return o
}

// Escenario de referencia: A (sin nombre ni cuenta), B (nombre y gerente sin
// estado), C (ELABORACIÓN k=1), D (GANADA k=5) debe quedar A, B, C, D.
func TestSortActive_EscenarioReferencia(t *testing.T) {
	a := opp(1, func(o *entity.Opportunity) { o.Name = ""; o.AccountID = nil })
	b := opp(2, func(o *entity.Opportunity) { o.StatusID = nil })
	c := opp(3, func(o *entity.Opportunity) { o.StatusName = ptr("ELABORACIÓN"); o.KRedIndex = ptr(1) })
	d := opp(4, func(o *entity.Opportunity) { o.StatusName = ptr("GANADA"); o.KRedIndex = ptr(5) })

	got := pipeline.SortActive([]*entity.Opportunity{d, c, b, a})

	require.Len(t, got, 4)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestSortActive_PrioridadDeEstados(t *testing.T) {
	// El orden fijo manda sobre id y k_red
	ganada := opp(10, func(o *entity.Opportunity) { o.StatusName = ptr("GANADA"); o.KRedIndex = ptr(9) })
	evaluacion := opp(1, func(o *entity.Opportunity) { o.StatusName = ptr("En evaluación") })
	esperando := opp(5, func(o *entity.Opportunity) { o.StatusName = ptr("Esperando respuesta del cliente") })

	got := pipeline.SortActive([]*entity.Opportunity{ganada, esperando, evaluacion})
	assert.Equal(t, []int64{1, 5, 10}, ids(got))
}

func TestSortActive_CoincidenciaSinAcentos(t *testing.T) {
	// "EVALUACION" sin tilde debe caer en el mismo grupo que "EVALUACIÓN"
	conTilde := opp(1, func(o *entity.Opportunity) { o.StatusName = ptr("EVALUACIÓN") })
	sinTilde := opp(2, func(o *entity.Opportunity) { o.StatusName = ptr("evaluacion") })
	perdida := opp(3, func(o *entity.Opportunity) { o.StatusName = ptr("PERDIDA") })

	got := pipeline.SortActive([]*entity.Opportunity{perdida, sinTilde, conTilde})
	// Dentro del mismo grupo desempata mayor id primero
	assert.Equal(t, []int64{2, 1, 3}, ids(got))
}

func TestSortActive_EstadoNoReconocidoAlFinal(t *testing.T) {
	raro := opp(99, func(o *entity.Opportunity) { o.StatusName = ptr("EN PAUSA") })
	perdida := opp(1, func(o *entity.Opportunity) { o.StatusName = ptr("PERDIDA") })

	got := pipeline.SortActive([]*entity.Opportunity{raro, perdida})
	assert.Equal(t, []int64{1, 99}, ids(got))
}

func TestSortActive_DesempatePorKRedYLuegoID(t *testing.T) {
	bajo := opp(7, func(o *entity.Opportunity) { o.StatusName = ptr("GANADA"); o.KRedIndex = ptr(1) })
	alto := opp(2, func(o *entity.Opportunity) { o.StatusName = ptr("GANADA"); o.KRedIndex = ptr(4) })
	sinK := opp(9, func(o *entity.Opportunity) { o.StatusName = ptr("GANADA") })

	got := pipeline.SortActive([]*entity.Opportunity{sinK, bajo, alto})
	assert.Equal(t, []int64{2, 7, 9}, ids(got))
}

func TestSortActive_NoModificaLaEntrada(t *testing.T) {
	a := opp(1, nil)
	b := opp(2, nil)
	in := []*entity.Opportunity{a, b}

	_ = pipeline.SortActive(in)
	assert.Equal(t, []int64{1, 2}, ids(in), "el slice original no debe reordenarse")
}

func ids(opps []*entity.Opportunity) []int64 {
	out := make([]int64, 0, len(opps))
	for _, o := range opps {
		out = append(out, o.ID)
	}
	return out
}
