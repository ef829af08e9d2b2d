package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBusinessDays(t *testing.T) {
	cases := []struct {
		name string
		from *time.Time
		to   *time.Time
		want int
		ok   bool
	}{
		// 2026-09-04 es viernes; 2026-09-07 el lunes siguiente: solo cuenta el lunes
		{"viernes a lunes", date(2026, time.September, 4), date(2026, time.September, 7), 1, true},
		{"mismo día", date(2026, time.September, 4), date(2026, time.September, 4), 0, true},
		{"semana completa lunes a lunes", date(2026, time.September, 7), date(2026, time.September, 14), 5, true},
		{"sábado a domingo", date(2026, time.September, 5), date(2026, time.September, 6), 0, true},
		{"inicio posterior al fin", date(2026, time.September, 8), date(2026, time.September, 7), 0, false},
		{"falta fecha de inicio", nil, date(2026, time.September, 7), 0, false},
		{"falta fecha de fin", date(2026, time.September, 7), nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := pipeline.BusinessDays(tc.from, tc.to)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBusinessDays_ExcluyeInicioIncluyeFin(t *testing.T) {
	// martes -> miércoles: el martes no cuenta, el miércoles sí
	got, ok := pipeline.BusinessDays(date(2026, time.September, 8), date(2026, time.September, 9))
	assert.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestCalendarDays(t *testing.T) {
	got, ok := pipeline.CalendarDays(date(2026, time.September, 1), date(2026, time.September, 11))
	assert.True(t, ok)
	assert.Equal(t, 10, got)

	_, ok = pipeline.CalendarDays(nil, date(2026, time.September, 11))
	assert.False(t, ok)
}
