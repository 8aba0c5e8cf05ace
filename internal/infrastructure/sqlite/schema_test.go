package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lockre/lockre-pos/internal/domain"
)

func TestMigrate_DesdeCero(t *testing.T) {
	schema, err := Migrate(0, CurrentVersion)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, schema.Version)
	assert.True(t, schema.Settings)

	names := make([]string, 0, len(schema.Collections))
	for _, col := range schema.Collections {
		names = append(names, col.Name)
	}
	assert.ElementsMatch(t, []string{
		CollectionUsers, CollectionProducts,
		CollectionSales, CollectionCustomers, CollectionInventory,
	}, names)
}

// TestMigrate_Incremental: de v1 a v2 sólo llegan las colecciones nuevas; las
// de v1 ya existen y no se vuelven a declarar.
func TestMigrate_Incremental(t *testing.T) {
	schema, err := Migrate(1, 2)
	require.NoError(t, err)

	names := make([]string, 0, len(schema.Collections))
	for _, col := range schema.Collections {
		names = append(names, col.Name)
	}
	assert.ElementsMatch(t, []string{CollectionSales, CollectionCustomers, CollectionInventory}, names)
	assert.True(t, schema.Settings)
}

func TestMigrate_SinCambios(t *testing.T) {
	schema, err := Migrate(CurrentVersion, CurrentVersion)
	require.NoError(t, err)
	assert.Empty(t, schema.Collections)
}

func TestMigrate_Downgrade(t *testing.T) {
	_, err := Migrate(2, 1)
	assert.ErrorIs(t, err, domain.ErrSchemaVersion)
}

func TestMigrate_VersionDesconocida(t *testing.T) {
	_, err := Migrate(0, CurrentVersion+1)
	assert.ErrorIs(t, err, domain.ErrSchemaVersion)
}
