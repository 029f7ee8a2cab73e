package postgres_test

import (
	"context"
	"contactbook/contact"
	"contactbook/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func TestContactRepository_CreateContact(t *testing.T) {
	t.Run("successfully creates a contact", func(t *testing.T) {
		// Arrange
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		testContact := contact.Contact{Name: "John Doe", Phone: "(11) 1234-5678"}

		// Act
		created, err := repo.CreateContact(context.Background(), testContact)

		// Assert
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, testContact.Name, created.Name)
		assert.Equal(t, testContact.Phone, created.Phone)
		assertContactExists(t, db, testContact)
	})

	t.Run("creates multiple contacts with distinct ids", func(t *testing.T) {
		// Arrange
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		contacts := []contact.Contact{
			{Name: "Alice Smith", Phone: "(11) 1111-1111"},
			{Name: "Bob Johnson", Phone: "(11) 2222-2222"},
			{Name: "Charlie Brown", Phone: "(11) 3333-3333"},
		}

		// Act
		ids := map[int64]bool{}
		for _, c := range contacts {
			created, err := repo.CreateContact(context.Background(), c)
			require.NoError(t, err)
			ids[created.ID] = true
		}

		// Assert
		assert.Len(t, ids, len(contacts))
		for _, expected := range contacts {
			assertContactExists(t, db, expected)
		}
	})

	t.Run("rejects a duplicate phone", func(t *testing.T) {
		// Arrange
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		_, err := repo.CreateContact(context.Background(), contact.Contact{Name: "First", Phone: "(11) 5555-5555"})
		require.NoError(t, err)

		// Act
		_, err = repo.CreateContact(context.Background(), contact.Contact{Name: "Second", Phone: "(11) 5555-5555"})

		// Assert
		assert.Equal(t, contact.ErrPhoneAlreadyExists, err)
		assert.Equal(t, int64(1), countRows(t, db, "contacts"))
	})
}

func TestContactRepository_FindContacts(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewContactRepository(db)
	mustCreateContact(t, db, "Charlie", "(11) 3333-3333")
	mustCreateContact(t, db, "Alice", "(11) 1111-1111")
	mustCreateContact(t, db, "Bob", "(11) 2222-2222")

	tests := []struct {
		name     string
		page     contact.Page
		expected []string
	}{
		{
			name:     "default page is alphabetical",
			page:     contact.DefaultPage(),
			expected: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name:     "limit and offset select a window",
			page:     contact.Page{Limit: 2, Offset: 1},
			expected: []string{"Bob", "Charlie"},
		},
		{
			name:     "limit restricts the page size",
			page:     contact.Page{Limit: 1},
			expected: []string{"Alice"},
		},
		{
			name:     "offset past the end returns nothing",
			page:     contact.Page{Limit: 10, Offset: 10},
			expected: []string{},
		},
		{
			name:     "zero limit returns nothing",
			page:     contact.Page{Limit: 0},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts, err := repo.FindContacts(context.Background(), tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, contactNames(contacts))
		})
	}

	t.Run("fails with closed database connection", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		mustCloseDBConnection(db)

		_, err := repo.FindContacts(context.Background(), contact.DefaultPage())

		assert.Error(t, err)
	})
}

func TestContactRepository_GetContact(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewContactRepository(db)
	model := mustCreateContact(t, db, "Alice", "(11) 1111-1111")

	t.Run("returns the contact", func(t *testing.T) {
		got, err := repo.GetContact(context.Background(), int64(model.ID))

		require.NoError(t, err)
		assert.Equal(t, contact.Contact{ID: int64(model.ID), Name: "Alice", Phone: "(11) 1111-1111"}, got)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := repo.GetContact(context.Background(), 999)

		assert.Equal(t, contact.ErrContactNotFound, err)
	})
}

func TestContactRepository_UpdateContact(t *testing.T) {
	t.Run("updates only the provided field", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		model := mustCreateContact(t, db, "Alice", "(11) 1111-1111")

		got, err := repo.UpdateContact(context.Background(), int64(model.ID), contact.Patch{Name: strPtr("Alice Cooper")})

		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", got.Name)
		assert.Equal(t, "(11) 1111-1111", got.Phone)
	})

	t.Run("updates both fields", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		model := mustCreateContact(t, db, "Bob", "(11) 2222-2222")

		got, err := repo.UpdateContact(context.Background(), int64(model.ID), contact.Patch{
			Name:  strPtr("Robert"),
			Phone: strPtr("(21) 2222-2222"),
		})

		require.NoError(t, err)
		assert.Equal(t, contact.Contact{ID: int64(model.ID), Name: "Robert", Phone: "(21) 2222-2222"}, got)
	})

	t.Run("returns not found and leaves storage unchanged", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		model := mustCreateContact(t, db, "Carol", "(11) 3333-3333")

		_, err := repo.UpdateContact(context.Background(), int64(model.ID)+100, contact.Patch{Name: strPtr("Nobody")})

		assert.Equal(t, contact.ErrContactNotFound, err)
		assertContactExists(t, db, contact.Contact{Name: "Carol", Phone: "(11) 3333-3333"})
		assert.Equal(t, int64(1), countRows(t, db, "contacts"))
	})

	t.Run("rejects a phone owned by another contact", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		mustCreateContact(t, db, "Dave", "(11) 4444-4444")
		eve := mustCreateContact(t, db, "Eve", "(11) 5555-5555")

		_, err := repo.UpdateContact(context.Background(), int64(eve.ID), contact.Patch{Phone: strPtr("(11) 4444-4444")})

		assert.Equal(t, contact.ErrPhoneAlreadyExists, err)
		assertContactExists(t, db, contact.Contact{Name: "Eve", Phone: "(11) 5555-5555"})
	})
}

func TestContactRepository_DeleteContact(t *testing.T) {
	t.Run("deletes the contact and its memberships", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)
		c := mustCreateContact(t, db, "Alice", "(11) 1111-1111")
		g := mustCreateGroup(t, db, "Clients")
		mustLink(t, db, c, g)

		err := repo.DeleteContact(context.Background(), int64(c.ID))

		require.NoError(t, err)
		assert.Equal(t, int64(0), countRows(t, db, "contacts"))
		assert.Equal(t, int64(0), countRows(t, db, "contact_groups"))
		assert.Equal(t, int64(1), countRows(t, db, "groups"))
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		db := newTestDB(t)
		repo := postgres.NewContactRepository(db)

		err := repo.DeleteContact(context.Background(), 12)

		assert.Equal(t, contact.ErrContactNotFound, err)
	})
}

func contactNames(contacts []contact.Contact) []string {
	names := make([]string, len(contacts))
	for i, c := range contacts {
		names[i] = c.Name
	}
	return names
}

// assertContactExists verifies that a contact exists in the database with correct values
func assertContactExists(t testing.TB, db *gorm.DB, expected contact.Contact) {
	t.Helper()
	var model postgres.ContactModel
	result := db.Where("name = ? AND phone = ?", expected.Name, expected.Phone).First(&model)
	require.NoError(t, result.Error, "contact should exist in database")
	assert.Equal(t, expected.Name, model.Name)
	assert.Equal(t, expected.Phone, model.Phone)
	assert.NotZero(t, model.ID)
}
