// Package pipeline contiene las reglas puras del pipeline comercial: orden de
// la vista activa, filtros facetados, selección para históricos y métricas de
// días hábiles. Ninguna función toca la persistencia; todas son deterministas
// sobre sus argumentos.
package pipeline

import (
	"sort"

	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
)

// statusPriority orden fijo de estados para la vista activa. Coincidencia por
// substring sin acentos ni mayúsculas; gana la primera.
var statusPriority = []string{
	"EVALUACION",
	"ELABORACION",
	"ESPERANDO",
	"RESPUESTA",
	"REASIGNADO A CAPACITY",
	"DESESTIMADA",
	"GANADA",
	"PERDIDA",
}

// statusRank devuelve el índice de prioridad del nombre de estado, o -1 si no
// coincide con ningún token conocido.
func statusRank(statusName string) int {
	folded := Fold(statusName)
	for i, token := range statusPriority {
		if foldContains(folded, token) {
			return i
		}
	}
	return -1
}

// SortActive ordena la vista ON. Devuelve una copia; el slice de entrada no
// se modifica. El orden total es:
//
//  1. filas sin nombre ni cuenta (placeholders por completar)
//  2. filas con nombre y gerente pero sin estado
//  3. prioridad fija de estado; estados no reconocidos al final
//  4. mayor k_red_index primero
//  5. mayor id primero
//
// Se usa un sort estable para que empates repetidos no "bailen" entre
// renders.
func SortActive(opps []*entity.Opportunity) []*entity.Opportunity {
	sorted := make([]*entity.Opportunity, len(opps))
	copy(sorted, opps)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		aEmpty := a.Name == "" && a.AccountID == nil
		bEmpty := b.Name == "" && b.AccountID == nil
		if aEmpty != bEmpty {
			return aEmpty
		}

		aNeedsStatus := a.Name != "" && a.ManagerID != 0 && a.StatusID == nil
		bNeedsStatus := b.Name != "" && b.ManagerID != 0 && b.StatusID == nil
		if aNeedsStatus != bNeedsStatus {
			return aNeedsStatus
		}

		aRank := statusRank(strDeref(a.StatusName))
		bRank := statusRank(strDeref(b.StatusName))
		switch {
		case aRank != -1 && bRank != -1:
			if aRank != bRank {
				return aRank < bRank
			}
		case aRank != -1:
			return true
		case bRank != -1:
			return false
		}

		if a.KRed() != b.KRed() {
			return a.KRed() > b.KRed()
		}
		return a.ID > b.ID
	})

	return sorted
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
