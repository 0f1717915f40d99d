package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClientCreateDefaultsCountry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	client, err := repo.Create(model.ClientRequest{Name: "Acme"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, client.ID)
	assert.Equal(t, "Acme", client.Name)
	assert.Equal(t, "Slovenia", client.Country)
	assert.False(t, client.CreatedAt.IsZero())
	assert.Nil(t, client.Email)
}

func TestClientCreateKeepsExplicitCountry(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	client, err := repo.Create(model.ClientRequest{
		Name:    "Alpenheizung GmbH",
		Country: strPtr("Austria"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Austria", client.Country)
}

func TestClientListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	for i := 1; i <= 25; i++ {
		createTestClient(t, db, fmt.Sprintf("Client %02d", i))
	}

	clients, total, err := repo.List("", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, clients, 10)
	// Ordered by name, so page 2 starts at the 11th
	assert.Equal(t, "Client 11", clients[0].Name)
	assert.Equal(t, "Client 20", clients[9].Name)

	// Last page is short, total stays the same
	clients, total, err = repo.List("", 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, clients, 5)

	// A page past the end is empty
	clients, total, err = repo.List("", 9, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Empty(t, clients)
}

func TestClientListNormalizesBadPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	createTestClient(t, db, "Only One")

	clients, total, err := repo.List("", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, clients, 1)
}

func TestClientSearchIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	_, err := repo.Create(model.ClientRequest{
		Name:  "Hotel Lipa",
		Email: strPtr("info@hotel-lipa.si"),
		Phone: strPtr("+386 1 234 5678"),
	})
	require.NoError(t, err)
	_, err = repo.Create(model.ClientRequest{Name: "Mercator d.d."})
	require.NoError(t, err)

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"matches name substring", "lipa", 1},
		{"matches uppercase", "LIPA", 1},
		{"matches email", "hotel-lipa.si", 1},
		{"matches phone", "234 5678", 1},
		{"no match", "does-not-exist", 0},
		{"empty search returns all", "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clients, total, err := repo.List(tt.search, 1, 50)
			require.NoError(t, err)
			assert.Equal(t, int64(tt.want), total)
			assert.Len(t, clients, tt.want)
		})
	}
}

func TestClientUpdateReplacesAllFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	created, err := repo.Create(model.ClientRequest{
		Name:  "Acme",
		Email: strPtr("old@acme.si"),
		Notes: strPtr("keeps calling"),
	})
	require.NoError(t, err)

	// Omitted optional fields are cleared, country falls back to the default
	updated, err := repo.Update(created.ID, model.ClientRequest{Name: "Acme d.o.o."})
	require.NoError(t, err)

	assert.Equal(t, "Acme d.o.o.", updated.Name)
	assert.Nil(t, updated.Email)
	assert.Nil(t, updated.Notes)
	assert.Equal(t, "Slovenia", updated.Country)
}

func TestClientUpdateMissingReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	_, err := repo.Update(uuid.New(), model.ClientRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClientDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)

	client := createTestClient(t, db, "To Delete")
	require.NoError(t, repo.Delete(client.ID))

	_, err := repo.FindByID(client.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(client.ID), gorm.ErrRecordNotFound)
}
