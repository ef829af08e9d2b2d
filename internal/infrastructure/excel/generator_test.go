package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/export"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

func sampleRows() []*entity.Opportunity {
	acme := "Acme"
	estado := "EVALUACIÓN"
	gerente := "Laura Medina"
	dc := "Carlos Ruiz"
	neg := "Ana Soto"
	motivo := "Precio"
	obs := "Esperando alcance firmado"
	inicio := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	coe := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	entrega := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return []*entity.Opportunity{
		{
			ID: 7, Name: "Migración core", AccountName: &acme, StatusName: &estado,
			ManagerName: &gerente, DCName: &dc, NegName: &neg, MotiveName: &motivo,
			LastObservation: &obs, Percentage: 60, ColorCode: entity.ColorYellow,
			StartDate: &inicio, CoeDate: &coe, DeliveryDate: &entrega,
		},
		{ID: 8, Name: "Sin datos", ColorCode: entity.ColorNone},
	}
}

func openSheet(t *testing.T, content []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, ref)
	require.NoError(t, err)
	return v
}

func TestBuild_PlanillaDC(t *testing.T) {
	content, err := NewGenerator().Build(export.AudienceDC, sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f := openSheet(t, content)

	assert.Equal(t, "ID", cell(t, f, "A1"))
	assert.Equal(t, "Gerente Comercial", cell(t, f, "C1"))
	assert.Equal(t, "Motivo", cell(t, f, "I1"))

	assert.Equal(t, "60 %", cell(t, f, "B2"))
	assert.Equal(t, "Laura Medina", cell(t, f, "C2"))
	assert.Equal(t, "Esperando alcance firmado", cell(t, f, "D2"))
	assert.Equal(t, "15/01/2026", cell(t, f, "H2"))
	assert.Equal(t, "Precio", cell(t, f, "I2"))

	// Avance en cero: celda vacía, no "0 %".
	assert.Equal(t, "", cell(t, f, "B3"))
}

func TestBuild_PlanillaJP(t *testing.T) {
	content, err := NewGenerator().Build(export.AudienceJP, sampleRows())
	require.NoError(t, err)

	f := openSheet(t, content)

	assert.Equal(t, "Equipo de Preventa-COE", cell(t, f, "F1"))
	assert.Equal(t, "Estado Final", cell(t, f, "N1"))
	assert.Equal(t, "Motivo", cell(t, f, "O1"))

	assert.Equal(t, "Carlos Ruiz - Ana Soto", cell(t, f, "F2"))
	assert.Equal(t, "05/01/2026", cell(t, f, "G2"))
	// Inicio lunes 05/01 a COE viernes 09/01: 4 días corridos; a entrega: 10.
	assert.Equal(t, "4", cell(t, f, "L2"))
	assert.Equal(t, "10", cell(t, f, "M2"))

	// Fila sin responsables ni fechas.
	assert.Equal(t, "N/A", cell(t, f, "F3"))
	assert.Equal(t, "", cell(t, f, "L3"))
}

func TestBuild_ColoresDeEncabezado(t *testing.T) {
	for aud, want := range map[export.Audience]string{
		export.AudienceDC:    headerWarm,
		export.AudiencePablo: headerWarm,
		export.AudienceJP:    headerCool,
	} {
		content, err := NewGenerator().Build(aud, sampleRows())
		require.NoError(t, err, "audiencia %s", aud)

		f := openSheet(t, content)
		styleID, err := f.GetCellStyle(sheetName, "A1")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotEmpty(t, style.Fill.Color, "audiencia %s", aud)
		assert.Contains(t, style.Fill.Color[0], want, "audiencia %s", aud)
	}
}

func TestBuild_TodasLasAudiencias(t *testing.T) {
	for _, aud := range []export.Audience{export.AudienceDC, export.AudiencePablo, export.AudienceJP} {
		content, err := NewGenerator().Build(aud, sampleRows())
		require.NoError(t, err, "audiencia %s", aud)
		assert.NotEmpty(t, content)
	}
}
