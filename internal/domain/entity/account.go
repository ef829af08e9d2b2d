package entity

// Account cuenta/cliente al que pertenecen las oportunidades.
type Account struct {
	ID           int64
	Name         string
	ContactName  *string
	ContactEmail *string
	IsActive     bool
}
