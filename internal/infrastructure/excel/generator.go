// Package excel genera las planillas de seguimiento con excelize. Implementa
// el puerto export.Generator; el recorte de columnas depende de la audiencia.
package excel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/gestor-oportunidades/internal/application/export"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
)

const sheetName = "Oportunidades"

// Colores de relleno heredados de las planillas que circulaban por correo.
const (
	headerWarm    = "FFE0B2" // naranja: planillas DC y Pablo
	headerCool    = "B0E0E6" // celeste: planilla JP
	fillRed       = "FF0000"
	fillYellow    = "FFFF00"
	fillGreen     = "00FF00"
	fillHighlight = "C6EFCE" // verde suave: estado final y motivo de JP
	dateFmt       = "02/01/2006"
)

// column una columna de la planilla: encabezado, ancho y extractor de valor.
type column struct {
	header string
	width  float64
	value  func(o *entity.Opportunity) any
	// semaphore pinta la celda con el color del semáforo de la fila
	semaphore bool
	// highlight pinta la celda con un relleno fijo en todas las filas
	highlight string
}

// Generator generador de planillas sobre excelize.
type Generator struct{}

var _ export.Generator = (*Generator)(nil)

func NewGenerator() *Generator { return &Generator{} }

// Build arma la planilla de la audiencia y devuelve el XLSX serializado.
func (g *Generator) Build(audience export.Audience, opps []*entity.Opportunity) ([]byte, error) {
	cols, headerColor := layout(audience)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de encabezado: %w", err)
	}

	fillStyles, err := newFillStyles(f, cols)
	if err != nil {
		return nil, err
	}

	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("columna %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return nil, fmt.Errorf("ancho de columna %s: %w", name, err)
		}
		cell := name + "1"
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return nil, fmt.Errorf("encabezado %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("estilo %s: %w", cell, err)
		}
	}

	for rowIdx, o := range opps {
		rowNum := rowIdx + 2
		for colIdx, col := range cols {
			name, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, fmt.Errorf("columna %d: %w", colIdx+1, err)
			}
			cell := fmt.Sprintf("%s%d", name, rowNum)
			if err := f.SetCellValue(sheetName, cell, col.value(o)); err != nil {
				return nil, fmt.Errorf("celda %s: %w", cell, err)
			}
			fill := col.highlight
			if col.semaphore {
				fill = semaphoreFill(o.ColorCode)
			}
			if fill == "" {
				continue
			}
			if err := f.SetCellStyle(sheetName, cell, cell, fillStyles[fill]); err != nil {
				return nil, fmt.Errorf("estilo %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilla: %w", err)
	}
	return buf.Bytes(), nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
	}
}

// semaphoreFill color de relleno de la fila según el semáforo; NONE no pinta.
func semaphoreFill(code entity.ColorCode) string {
	switch code {
	case entity.ColorRed:
		return fillRed
	case entity.ColorYellow:
		return fillYellow
	case entity.ColorGreen:
		return fillGreen
	}
	return ""
}

// newFillStyles un estilo por color de relleno que el layout puede llegar a
// pedir, creado una sola vez por archivo.
func newFillStyles(f *excelize.File, cols []column) (map[string]int, error) {
	colors := []string{fillRed, fillYellow, fillGreen}
	for _, col := range cols {
		if col.highlight != "" {
			colors = append(colors, col.highlight)
		}
	}
	styles := make(map[string]int, len(colors))
	for _, color := range colors {
		if _, ok := styles[color]; ok {
			continue
		}
		id, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
			Border:    thinBorder(),
		})
		if err != nil {
			return nil, fmt.Errorf("estilo de relleno %s: %w", color, err)
		}
		styles[color] = id
	}
	return styles, nil
}

// layout columnas y color de encabezado de cada audiencia. DC y Pablo
// comparten el recorte de seguimiento; JP lleva el detalle de fechas con los
// días corridos entre hitos.
func layout(audience export.Audience) ([]column, string) {
	if audience == export.AudienceJP {
		return jpColumns(), headerCool
	}
	return trackingColumns(), headerWarm
}

// trackingColumns recorte DC/Pablo: las tres columnas centrales se pintan con
// el color del semáforo de la fila.
func trackingColumns() []column {
	return []column{
		{header: "ID", width: 5, value: func(o *entity.Opportunity) any { return o.ID }},
		{header: "%", width: 5, value: func(o *entity.Opportunity) any { return percentCell(o.Percentage) }},
		{header: "Gerente Comercial", width: 20, semaphore: true, value: func(o *entity.Opportunity) any { return textCell(o.ManagerName) }},
		{header: "Observaciones", width: 40, semaphore: true, value: func(o *entity.Opportunity) any { return textCell(o.LastObservation) }},
		{header: "Nombre de la cuenta", width: 25, semaphore: true, value: func(o *entity.Opportunity) any { return textCell(o.AccountName) }},
		{header: "Nombre de la oportunidad", width: 40, value: func(o *entity.Opportunity) any { return o.Name }},
		{header: "Estado", width: 15, value: func(o *entity.Opportunity) any { return textCell(o.StatusName) }},
		{header: "Entregar al Gerente Comercial", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.DeliveryDate) }},
		{header: "Motivo", width: 20, value: func(o *entity.Opportunity) any { return textCell(o.MotiveName) }},
	}
}

func jpColumns() []column {
	return []column{
		{header: "ID", width: 5, value: func(o *entity.Opportunity) any { return o.ID }},
		{header: "%", width: 5, value: func(o *entity.Opportunity) any { return percentCell(o.Percentage) }},
		{header: "Nombre de la Cuenta", width: 25, value: func(o *entity.Opportunity) any { return textCell(o.AccountName) }},
		{header: "Nombre Oportunidad", width: 40, value: func(o *entity.Opportunity) any { return o.Name }},
		{header: "Gerente Comercial", width: 20, value: func(o *entity.Opportunity) any { return textCell(o.ManagerName) }},
		{header: "Equipo de Preventa-COE", width: 30, value: func(o *entity.Opportunity) any { return presalesTeamCell(o) }},
		{header: "Fecha-Inicio (Comercial pasa a Preventa)", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.StartDate) }},
		{header: "Fecha-Entendimiento (Primer reunión con Preventa)", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.UnderstandingDate) }},
		{header: "Fecha-Alcance (Cierre del alcance)", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.ScopeDate) }},
		{header: "Fecha-COE (Aprobación COE)", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.CoeDate) }},
		{header: "Fecha-Entrega (Fecha envío PP al comercial)", width: 15, value: func(o *entity.Opportunity) any { return dateCell(o.DeliveryDate) }},
		{header: "Días (Fecha-Inicio y Fecha-COE)", width: 10, value: func(o *entity.Opportunity) any {
			return daysCell(pipeline.CalendarDays(o.StartDate, o.CoeDate))
		}},
		{header: "Días (Fecha-Inicio y Fecha-Entrega)", width: 10, value: func(o *entity.Opportunity) any {
			return daysCell(pipeline.CalendarDays(o.StartDate, o.DeliveryDate))
		}},
		{header: "Estado Final", width: 20, highlight: fillHighlight, value: func(o *entity.Opportunity) any { return textCell(o.StatusName) }},
		{header: "Motivo", width: 20, highlight: fillHighlight, value: func(o *entity.Opportunity) any { return textCell(o.MotiveName) }},
	}
}

// presalesTeamCell DC y analista de negocio unidos con guion; N/A si no hay
// ninguno asignado.
func presalesTeamCell(o *entity.Opportunity) string {
	parts := make([]string, 0, 2)
	for _, s := range []*string{o.DCName, o.NegName} {
		if s != nil && *s != "" {
			parts = append(parts, *s)
		}
	}
	if len(parts) == 0 {
		return "N/A"
	}
	return strings.Join(parts, " - ")
}

func textCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateFmt)
}

// percentCell un avance en cero se muestra vacío, no como "0 %".
func percentCell(p int) string {
	if p == 0 {
		return ""
	}
	return fmt.Sprintf("%d %%", p)
}

func daysCell(days int, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(days)
}
