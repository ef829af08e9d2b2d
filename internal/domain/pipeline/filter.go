package pipeline

import (
	"sort"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// Dimension identifica una faceta de filtrado.
type Dimension string

const (
	DimAccount  Dimension = "account"
	DimStatus   Dimension = "status"
	DimManager  Dimension = "manager"
	DimApprover Dimension = "approver"
	DimBusiness Dimension = "business"
)

// Criteria criterio de filtrado explícito para la grilla. Un puntero nil
// significa "sin filtro" en esa dimensión. Todos los criterios se combinan
// con AND; Search es substring sobre nombre de oportunidad, de cuenta y de
// los cuatro responsables, sin distinguir mayúsculas ni acentos.
type Criteria struct {
	AccountID  *int64
	StatusID   *int64
	ManagerID  *int64
	ApproverID *int64
	BusinessID *int64
	KRedIndex  *int
	Search     string
}

// IsZero indica que no hay ningún filtro activo.
func (c Criteria) IsZero() bool {
	return c.AccountID == nil && c.StatusID == nil && c.ManagerID == nil &&
		c.ApproverID == nil && c.BusinessID == nil && c.KRedIndex == nil && c.Search == ""
}

// Apply filtra el conjunto completo con todos los criterios activos.
func Apply(opps []*entity.Opportunity, cr Criteria) []*entity.Opportunity {
	return applyExcept(opps, cr, "")
}

// applyExcept filtra ignorando una dimensión, base de la semántica facetada:
// las opciones de cada selector se calculan con el resto de filtros puestos.
func applyExcept(opps []*entity.Opportunity, cr Criteria, ignore Dimension) []*entity.Opportunity {
	out := make([]*entity.Opportunity, 0, len(opps))
	for _, o := range opps {
		if !matches(o, cr, ignore) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matches(o *entity.Opportunity, cr Criteria, ignore Dimension) bool {
	if cr.AccountID != nil && ignore != DimAccount && !eqOpt(o.AccountID, *cr.AccountID) {
		return false
	}
	if cr.StatusID != nil && ignore != DimStatus && !eqOpt(o.StatusID, *cr.StatusID) {
		return false
	}
	if cr.ManagerID != nil && ignore != DimManager && o.ManagerID != *cr.ManagerID {
		return false
	}
	if cr.ApproverID != nil && ignore != DimApprover && !eqOpt(o.ResponsibleDCID, *cr.ApproverID) {
		return false
	}
	if cr.BusinessID != nil && ignore != DimBusiness && !eqOpt(o.ResponsibleBusinessID, *cr.BusinessID) {
		return false
	}
	if cr.KRedIndex != nil && o.KRed() != *cr.KRedIndex {
		return false
	}
	if cr.Search != "" && !matchesSearch(o, cr.Search) {
		return false
	}
	return true
}

func matchesSearch(o *entity.Opportunity, term string) bool {
	for _, s := range []string{
		o.Name,
		strDeref(o.AccountName),
		strDeref(o.ManagerName),
		strDeref(o.DCName),
		strDeref(o.NegName),
		strDeref(o.TecName),
	} {
		if s != "" && foldContains(s, term) {
			return true
		}
	}
	return false
}

func eqOpt(v *int64, want int64) bool {
	return v != nil && *v == want
}

// FacetOptions ids alcanzables por dimensión dado el resto de filtros. La
// dimensión propia no se restringe a sí misma: seleccionar una cuenta no la
// quita de su propio selector.
type FacetOptions struct {
	AccountIDs  []int64
	StatusIDs   []int64
	ManagerIDs  []int64
	ApproverIDs []int64
	BusinessIDs []int64
}

// Facets calcula las opciones de cada selector re-filtrando el conjunto
// completo e ignorando solo la dimensión en cuestión.
func Facets(opps []*entity.Opportunity, cr Criteria) FacetOptions {
	return FacetOptions{
		AccountIDs:  collect(applyExcept(opps, cr, DimAccount), func(o *entity.Opportunity) *int64 { return o.AccountID }),
		StatusIDs:   collect(applyExcept(opps, cr, DimStatus), func(o *entity.Opportunity) *int64 { return o.StatusID }),
		ManagerIDs:  collect(applyExcept(opps, cr, DimManager), func(o *entity.Opportunity) *int64 { mid := o.ManagerID; return &mid }),
		ApproverIDs: collect(applyExcept(opps, cr, DimApprover), func(o *entity.Opportunity) *int64 { return o.ResponsibleDCID }),
		BusinessIDs: collect(applyExcept(opps, cr, DimBusiness), func(o *entity.Opportunity) *int64 { return o.ResponsibleBusinessID }),
	}
}

func collect(opps []*entity.Opportunity, get func(*entity.Opportunity) *int64) []int64 {
	seen := make(map[int64]struct{}, len(opps))
	out := make([]int64, 0, len(opps))
	for _, o := range opps {
		id := get(o)
		if id == nil || *id == 0 {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
