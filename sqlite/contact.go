package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/contactfind/contactfind"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ contactfind.ContactService = (*ContactService)(nil)

// ContactService implements contactfind.ContactService using SQLite.
// Records are keyed by company name so that re-runs find prior results.
type ContactService struct {
	db *DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *DB) *ContactService {
	return &ContactService{db: db}
}

// UpsertContacts inserts or updates one row per record, keyed by company
// name. A non-empty incoming field replaces the stored value; an empty one
// leaves the stored value alone, so a partial re-run never erases fields
// found earlier.
func (s *ContactService) UpsertContacts(ctx context.Context, records []*contactfind.ContactRecord, extractedBy string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}

		id := record.ID
		if id == "" {
			id = uuid.New().String()
		}
		resolvedAt := record.ResolvedAt
		if resolvedAt.IsZero() {
			resolvedAt = time.Now().UTC()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO contacts (id, company_name, website, email, email_source, phone, phone_source, extracted_by, resolved_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(company_name) DO UPDATE SET
				website = CASE WHEN excluded.website != '' THEN excluded.website ELSE contacts.website END,
				email = CASE WHEN excluded.email != '' THEN excluded.email ELSE contacts.email END,
				email_source = CASE WHEN excluded.email != '' THEN excluded.email_source ELSE contacts.email_source END,
				phone = CASE WHEN excluded.phone != '' THEN excluded.phone ELSE contacts.phone END,
				phone_source = CASE WHEN excluded.phone != '' THEN excluded.phone_source ELSE contacts.phone_source END,
				extracted_by = excluded.extracted_by,
				updated_at = excluded.updated_at
		`, id, record.CompanyName, record.Website, record.Email, record.EmailSource,
			record.Phone, record.PhoneSource, extractedBy, resolvedAt.Format(time.RFC3339), now)
		if err != nil {
			return contactfind.Errorf(contactfind.EINTERNAL, "upserting contact for %s: %v", record.CompanyName, err)
		}
	}

	return nil
}

// FindContactsByName returns stored records for the given company names,
// keyed by name. Names with no stored record are absent from the map.
func (s *ContactService) FindContactsByName(ctx context.Context, names []string) (map[string]*contactfind.ContactRecord, error) {
	result := make(map[string]*contactfind.ContactRecord)
	if len(names) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, company_name, website, email, email_source, phone, phone_source, resolved_at
		FROM contacts
		WHERE company_name IN (`+placeholders+`)
	`, args...)
	if err != nil {
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "querying contacts: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record contactfind.ContactRecord
		var resolvedAt string
		if err := rows.Scan(&record.ID, &record.CompanyName, &record.Website,
			&record.Email, &record.EmailSource, &record.Phone, &record.PhoneSource, &resolvedAt); err != nil {
			return nil, contactfind.Errorf(contactfind.EINTERNAL, "scanning contact row: %v", err)
		}
		record.ResolvedAt, _ = time.Parse(time.RFC3339, resolvedAt)
		record.Saved = true
		result[record.CompanyName] = &record
	}
	if err := rows.Err(); err != nil {
		return nil, contactfind.Errorf(contactfind.EINTERNAL, "reading contact rows: %v", err)
	}

	return result, nil
}
