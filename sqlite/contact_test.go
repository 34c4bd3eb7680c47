package sqlite_test

import (
	"context"
	"testing"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestContactService_UpsertContacts(t *testing.T) {
	t.Parallel()

	t.Run("inserts new records with generated IDs", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		ctx := context.Background()

		err := s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Website: "https://acmetools.com", Email: "sales@acmetools.com", EmailSource: "website"},
			{CompanyName: "Bharat Pumps", Phone: "+919876543210", PhoneSource: "indiamart"},
		}, "run-2026-08-27")
		require.NoError(t, err)

		found, err := s.FindContactsByName(ctx, []string{"Acme Tools Pvt Ltd", "Bharat Pumps"})
		require.NoError(t, err)
		require.Len(t, found, 2)

		acme := found["Acme Tools Pvt Ltd"]
		require.NotNil(t, acme)
		assert.NotEmpty(t, acme.ID)
		assert.Equal(t, "sales@acmetools.com", acme.Email)
		assert.Equal(t, "website", acme.EmailSource)
		assert.True(t, acme.Saved)
	})

	t.Run("update fills empty fields without erasing stored ones", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Email: "sales@acmetools.com", EmailSource: "website"},
		}, "first-run"))

		// Second run found only the phone.
		require.NoError(t, s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Phone: "+919876543210", PhoneSource: "indiamart"},
		}, "second-run"))

		found, err := s.FindContactsByName(ctx, []string{"Acme Tools Pvt Ltd"})
		require.NoError(t, err)
		record := found["Acme Tools Pvt Ltd"]
		require.NotNil(t, record)
		assert.Equal(t, "sales@acmetools.com", record.Email)
		assert.Equal(t, "website", record.EmailSource)
		assert.Equal(t, "+919876543210", record.Phone)
		assert.Equal(t, "indiamart", record.PhoneSource)
	})

	t.Run("non-empty incoming field replaces stored value", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Email: "old@acmetools.com", EmailSource: "facebook"},
		}, "first-run"))
		require.NoError(t, s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Email: "sales@acmetools.com", EmailSource: "website"},
		}, "second-run"))

		found, err := s.FindContactsByName(ctx, []string{"Acme Tools Pvt Ltd"})
		require.NoError(t, err)
		record := found["Acme Tools Pvt Ltd"]
		require.NotNil(t, record)
		assert.Equal(t, "sales@acmetools.com", record.Email)
		assert.Equal(t, "website", record.EmailSource)
	})

	t.Run("rejects record without company name", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		err := s.UpsertContacts(context.Background(), []*contactfind.ContactRecord{
			{Email: "x@y.in"},
		}, "run")
		require.Error(t, err)
		assert.Equal(t, contactfind.EINVALID, contactfind.ErrorCode(err))
	})
}

func TestContactService_FindContactsByName(t *testing.T) {
	t.Parallel()

	t.Run("unknown names are absent from the map", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.UpsertContacts(ctx, []*contactfind.ContactRecord{
			{CompanyName: "Acme Tools Pvt Ltd", Email: "sales@acmetools.com"},
		}, "run"))

		found, err := s.FindContactsByName(ctx, []string{"Acme Tools Pvt Ltd", "Never Seen Industries"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Contains(t, found, "Acme Tools Pvt Ltd")
		assert.NotContains(t, found, "Never Seen Industries")
	})

	t.Run("empty input returns empty map", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewContactService(mustOpenDB(t))
		found, err := s.FindContactsByName(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
