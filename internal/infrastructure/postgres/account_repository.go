package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/entity"
	"github.com/tu-usuario/gestor-oportunidades/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// List devuelve las cuentas por nombre; con onlyActive filtra las inactivas.
func (r *AccountRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Account, error) {
	query := `SELECT id, name, contact_name, contact_email, is_active FROM accounts`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.ContactName, &a.ContactEmail, &a.IsActive); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return out, nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id int64) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(ctx,
		`SELECT id, name, contact_name, contact_email, is_active FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.ContactName, &a.ContactEmail, &a.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Create persiste una cuenta nueva; el nombre es único.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO accounts (name, contact_name, contact_email, is_active)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.ContactName, a.ContactEmail, a.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return id, nil
}

// Update guarda la cuenta completa.
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE accounts SET name = $2, contact_name = $3, contact_email = $4, is_active = $5
		WHERE id = $1`,
		a.ID, a.Name, a.ContactName, a.ContactEmail, a.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update account: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountActiveOpportunities cuenta las oportunidades vivas (sin borrar y no
// archivadas) que referencian la cuenta.
func (r *AccountRepo) CountActiveOpportunities(ctx context.Context, accountID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM opportunities
		WHERE account_id = $1 AND deleted_at IS NULL AND NOT is_archived`, accountID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count account opportunities: %w", err)
	}
	return n, nil
}

// Delete elimina la cuenta solo si ninguna oportunidad la referencia. La
// verificación va en el mismo DELETE, así no hay ventana entre conteo y
// borrado; el conteo posterior es solo para el mensaje.
func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `
		DELETE FROM accounts a WHERE a.id = $1
		AND NOT EXISTS (SELECT 1 FROM opportunities o WHERE o.account_id = a.id)`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var n int
	if err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM opportunities WHERE account_id = $1`, id).Scan(&n); err != nil {
		return fmt.Errorf("count account references: %w", err)
	}
	if n > 0 {
		return &domain.ReferencedError{Count: n}
	}
	return domain.ErrNotFound
}
