package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Placeholders(t *testing.T) {
	pg, err := New(DriverPostgres)
	require.NoError(t, err)
	query, _, err := pg.Select("id").From("event_log").Where(squirrel.Eq{"provider_id": "p1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM event_log WHERE provider_id = $1", query)

	lite, err := New(DriverSQLite)
	require.NoError(t, err)
	query, _, err = lite.Select("id").From("event_log").Where(squirrel.Eq{"provider_id": "p1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM event_log WHERE provider_id = ?", query)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New("mysql")
	assert.Error(t, err)
	assert.Panics(t, func() { MustNew("mysql") })
}
