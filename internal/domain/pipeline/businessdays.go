package pipeline

import "time"

// BusinessDays cuenta los días hábiles (lunes a viernes) entre dos fechas:
// excluye el día de inicio e incluye el de fin. Devuelve ok=false si falta
// alguna fecha o si from es posterior a to; la capa de presentación muestra
// "-" en ese caso.
func BusinessDays(from, to *time.Time) (days int, ok bool) {
	if from == nil || to == nil {
		return 0, false
	}
	start := truncateDay(*from)
	end := truncateDay(*to)
	if start.After(end) {
		return 0, false
	}

	for cur := start; cur.Before(end); {
		cur = cur.AddDate(0, 0, 1)
		if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days, true
}

// CalendarDays diferencia en días calendario entre dos fechas (to - from),
// usada por las columnas de días de la exportación JP. ok=false si falta
// alguna fecha.
func CalendarDays(from, to *time.Time) (days int, ok bool) {
	if from == nil || to == nil {
		return 0, false
	}
	diff := truncateDay(*to).Sub(truncateDay(*from))
	return int(diff.Hours() / 24), true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
