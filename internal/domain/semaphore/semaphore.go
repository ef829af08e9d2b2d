// Package semaphore implementa la regla de negocio porcentaje/semáforo.
//
// Tabla canónica (partición sin solapes):
//
//	RED    -> exactamente 0%
//	NONE   -> 0% a 49%
//	YELLOW -> 50% a 69%
//	GREEN  -> 70% a 100%
//
// El sistema original traía dos tablas levemente distintas (una permitía
// YELLOW y NONE en 0-69); aquí se aplica una sola en todos los caminos de
// escritura.
package semaphore

import "github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"

// Validate es un predicado puro: indica si el par (porcentaje, color) cumple
// la regla del semáforo. Colores desconocidos nunca validan.
func Validate(percentage int, color entity.ColorCode) bool {
	switch color {
	case entity.ColorRed:
		return percentage == 0
	case entity.ColorNone:
		return percentage >= 0 && percentage <= 49
	case entity.ColorYellow:
		return percentage >= 50 && percentage <= 69
	case entity.ColorGreen:
		return percentage >= 70 && percentage <= 100
	}
	return false
}

// RangeSuggestion devuelve el rango esperado para un color, para mensajes de
// error orientados al usuario.
func RangeSuggestion(color entity.ColorCode) string {
	switch color {
	case entity.ColorRed:
		return "debe ser 0%"
	case entity.ColorYellow:
		return "rango permitido: 50% - 69%"
	case entity.ColorGreen:
		return "rango permitido: 70% - 100%"
	case entity.ColorNone:
		return "rango permitido: 0% - 49%"
	}
	return ""
}
