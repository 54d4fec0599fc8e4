package sqlite

import (
	"context"
	"database/sql"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/store"
)

type contactsRepo struct {
	db *sql.DB
}

const contactColumns = `id, owner_id, first_name, last_name, email, phone, created_at, updated_at`

func (r *contactsRepo) GetContact(ctx context.Context, ownerID, id string) (domain.Contact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ? AND owner_id = ?`, id, ownerID)

	var c domain.Contact
	err := row.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Contact{}, mapNotFound(err)
	}
	return c, nil
}

func (r *contactsRepo) ListContacts(
	ctx context.Context,
	ownerID string,
	limit, offset int,
) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts
		 WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0, limit)
	for rows.Next() {
		var c domain.Contact
		err := rows.Scan(&c.ID, &c.OwnerID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (id, owner_id, first_name, last_name, email, phone, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.FirstName, c.LastName, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return mapConflict(err)
	}
	return nil
}

func (r *contactsRepo) UpdateContact(ctx context.Context, c domain.Contact) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts
		 SET first_name = ?, last_name = ?, email = ?, phone = ?, updated_at = ?
		 WHERE id = ? AND owner_id = ?`,
		c.FirstName, c.LastName, c.Email, c.Phone, c.UpdatedAt, c.ID, c.OwnerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *contactsRepo) DeleteContact(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
