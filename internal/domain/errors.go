package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrSemaphoreRule      = errors.New("combinación de porcentaje y semáforo inválida")
	ErrPercentageRequired = errors.New("debe ingresar un porcentaje válido para el nuevo color")
	ErrReferenced         = errors.New("el recurso está referenciado y no puede ser eliminado")
	ErrAccountHasActive   = errors.New("la cuenta tiene oportunidades activas")
	ErrUnauthorized       = errors.New("credenciales inválidas")
)

// ReferencedError envuelve ErrReferenced con el número de registros que
// bloquean la operación, para mensajes del tipo "tiene N oportunidades".
type ReferencedError struct {
	Count int
}

func (e *ReferencedError) Error() string { return ErrReferenced.Error() }

// Unwrap permite errors.Is(err, ErrReferenced).
func (e *ReferencedError) Unwrap() error { return ErrReferenced }
