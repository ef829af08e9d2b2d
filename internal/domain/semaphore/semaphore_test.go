package semaphore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/semaphore"
)

func TestValidate_TablaCanonica(t *testing.T) {
	cases := []struct {
		name       string
		percentage int
		color      entity.ColorCode
		want       bool
	}{
		{"rojo exige 0", 0, entity.ColorRed, true},
		{"rojo rechaza 1", 1, entity.ColorRed, false},
		{"rojo rechaza 100", 100, entity.ColorRed, false},
		{"sin color acepta 0", 0, entity.ColorNone, true},
		{"sin color acepta 49", 49, entity.ColorNone, true},
		{"sin color rechaza 50", 50, entity.ColorNone, false},
		{"amarillo rechaza 49", 49, entity.ColorYellow, false},
		{"amarillo acepta 50", 50, entity.ColorYellow, true},
		{"amarillo acepta 69", 69, entity.ColorYellow, true},
		{"amarillo rechaza 70", 70, entity.ColorYellow, false},
		{"verde rechaza 69", 69, entity.ColorGreen, false},
		{"verde acepta 70", 70, entity.ColorGreen, true},
		{"verde acepta 100", 100, entity.ColorGreen, true},
		{"verde rechaza 101", 101, entity.ColorGreen, false},
		{"color desconocido nunca valida", 50, entity.ColorCode("PURPLE"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, semaphore.Validate(tc.percentage, tc.color))
		})
	}
}

// TestValidate_TotalYDeterminista recorre todos los enteros 0-100 con los
// cuatro colores: la función decide siempre, y exactamente un color (además
// de un eventual RED en 0) acepta cada porcentaje.
func TestValidate_TotalYDeterminista(t *testing.T) {
	colors := []entity.ColorCode{entity.ColorRed, entity.ColorYellow, entity.ColorGreen, entity.ColorNone}
	for p := 0; p <= 100; p++ {
		accepted := 0
		for _, c := range colors {
			first := semaphore.Validate(p, c)
			// mismo input, mismo resultado
			require.Equal(t, first, semaphore.Validate(p, c))
			if first && c != entity.ColorRed {
				accepted++
			}
		}
		assert.Equal(t, 1, accepted, "porcentaje %d debe caer en exactamente una banda de color", p)
	}
}

func TestRangeSuggestion(t *testing.T) {
	assert.Contains(t, semaphore.RangeSuggestion(entity.ColorRed), "0%")
	assert.Contains(t, semaphore.RangeSuggestion(entity.ColorYellow), "50%")
	assert.Contains(t, semaphore.RangeSuggestion(entity.ColorGreen), "70%")
	assert.Contains(t, semaphore.RangeSuggestion(entity.ColorNone), "49%")
	assert.Empty(t, semaphore.RangeSuggestion(entity.ColorCode("PURPLE")))
}
