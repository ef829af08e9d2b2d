package pipeline

import "github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"

// kRedHistoryThreshold índice k-red a partir del cual una oportunidad en rojo
// pasa a históricos.
const kRedHistoryThreshold = 3

// QualifiesForHistory decide si una oportunidad activa debe moverse a
// históricos: semáforo en rojo con k_red_index >= 3, o estado que contenga
// GANADA o PERDIDA (sin distinguir mayúsculas ni acentos).
func QualifiesForHistory(o *entity.Opportunity) bool {
	if o.ColorCode == entity.ColorRed && o.KRed() >= kRedHistoryThreshold {
		return true
	}
	status := strDeref(o.StatusName)
	return foldContains(status, "GANADA") || foldContains(status, "PERDIDA")
}

// SelectForHistory devuelve el subconjunto que cumple QualifiesForHistory.
func SelectForHistory(opps []*entity.Opportunity) []*entity.Opportunity {
	var out []*entity.Opportunity
	for _, o := range opps {
		if QualifiesForHistory(o) {
			out = append(out, o)
		}
	}
	return out
}
