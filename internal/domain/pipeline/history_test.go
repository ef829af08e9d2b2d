package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

// Escenario de referencia: de [RED k=4 "En progreso", GREEN "GANADA",
// YELLOW k=1 "En progreso"] califican exactamente las dos primeras.
func TestSelectForHistory_EscenarioReferencia(t *testing.T) {
	rojo := opp(1, func(o *entity.Opportunity) {
		o.ColorCode = entity.ColorRed
		o.KRedIndex = ptr(4)
		o.StatusName = ptr("En progreso")
	})
	ganada := opp(2, func(o *entity.Opportunity) {
		o.ColorCode = entity.ColorGreen
		o.StatusName = ptr("GANADA")
	})
	amarillo := opp(3, func(o *entity.Opportunity) {
		o.ColorCode = entity.ColorYellow
		o.KRedIndex = ptr(1)
		o.StatusName = ptr("En progreso")
	})

	got := pipeline.SelectForHistory([]*entity.Opportunity{rojo, ganada, amarillo})

	require.Len(t, got, 2)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestQualifiesForHistory(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.Opportunity)
		want   bool
	}{
		{"rojo con k_red igual al umbral", func(o *entity.Opportunity) {
			o.ColorCode = entity.ColorRed
			o.KRedIndex = ptr(3)
		}, true},
		{"rojo con k_red bajo no califica", func(o *entity.Opportunity) {
			o.ColorCode = entity.ColorRed
			o.KRedIndex = ptr(2)
		}, false},
		{"k_red alto sin rojo no califica", func(o *entity.Opportunity) {
			o.ColorCode = entity.ColorGreen
			o.KRedIndex = ptr(9)
		}, false},
		{"estado perdida en minúsculas", func(o *entity.Opportunity) {
			o.StatusName = ptr("Oportunidad perdida")
		}, true},
		{"estado ganada como substring", func(o *entity.Opportunity) {
			o.StatusName = ptr("GANADA - firmada")
		}, true},
		{"sin estado ni rojo", func(o *entity.Opportunity) {
			o.StatusName = nil
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := opp(1, tc.mutate)
			assert.Equal(t, tc.want, pipeline.QualifiesForHistory(o))
		})
	}
}
