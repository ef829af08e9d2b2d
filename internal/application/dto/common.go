package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Códigos de error estables para que el cliente distinga conflictos de
// unicidad y guardas referenciales de fallas genéricas.
const (
	CodeValidation   = "VALIDATION"
	CodeInvalidBody  = "INVALID_BODY"
	CodeDuplicate    = "DUPLICATE"
	CodeReferenced   = "REFERENCED"
	CodeNotFound     = "NOT_FOUND"
	CodeSemaphore    = "SEMAPHORE_RULE"
	CodeInternal     = "INTERNAL"
	CodeUnauthorized = "UNAUTHORIZED"
)
