// Package export arma las planillas de seguimiento que se reparten por
// correo. Cada audiencia tiene su propio recorte de columnas; la generación
// del archivo queda detrás de un puerto para no atar el caso de uso a la
// librería de planillas.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/pipeline"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

// Audience recorte de columnas de la planilla.
type Audience string

const (
	AudienceDC    Audience = "dc"    // aprobadores: foco en hitos y semáforo
	AudiencePablo Audience = "pablo" // dirección: foco comercial
	AudienceJP    Audience = "jp"    // jefes de proyecto: plazos en días corridos
)

// ParseAudience interpreta el segmento de ruta de la exportación.
func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceDC, AudiencePablo, AudienceJP:
		return Audience(s), nil
	}
	return "", fmt.Errorf("%w: audiencia de exportación desconocida '%s'", domain.ErrInvalidInput, s)
}

// Generator puerto de generación de planillas.
type Generator interface {
	// Build produce el archivo binario de la planilla para la audiencia.
	Build(audience Audience, opps []*entity.Opportunity) ([]byte, error)
}

// File planilla generada lista para descargar.
type File struct {
	Name    string
	Content []byte
}

// ExportUseCase arma la planilla de la vista activa para una audiencia.
type ExportUseCase struct {
	repo repository.OpportunityRepository
	gen  Generator
}

func NewExportUseCase(repo repository.OpportunityRepository, gen Generator) *ExportUseCase {
	return &ExportUseCase{repo: repo, gen: gen}
}

// Export arma la planilla de la audiencia. DC y Pablo parten de la vista
// activa con el orden operativo de la grilla; Pablo además recorta a los
// registros en verde o amarillo. JP cubre activas e históricos. El nombre
// sigue la convención export_<audiencia>_DDMMAAAA.xlsx.
func (uc *ExportUseCase) Export(ctx context.Context, audience Audience) (*File, error) {
	view := repository.ViewActive
	if audience == AudienceJP {
		view = repository.ViewAll
	}
	opps, err := uc.repo.List(ctx, view)
	if err != nil {
		return nil, err
	}
	if view == repository.ViewActive {
		opps = pipeline.SortActive(opps)
	}
	if audience == AudiencePablo {
		opps = greenYellowOnly(opps)
	}

	content, err := uc.gen.Build(audience, opps)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("export_%s_%s.xlsx", audience, time.Now().Format("02012006"))
	return &File{Name: name, Content: content}, nil
}

// greenYellowOnly recorta a los registros en verde o amarillo; el resto no
// viaja en la planilla de dirección.
func greenYellowOnly(opps []*entity.Opportunity) []*entity.Opportunity {
	out := make([]*entity.Opportunity, 0, len(opps))
	for _, o := range opps {
		if o.ColorCode == entity.ColorGreen || o.ColorCode == entity.ColorYellow {
			out = append(out, o)
		}
	}
	return out
}
