package dbtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/palantir/internal/database/dberr"
)

func TestOpen_SchemaAndConstraints(t *testing.T) {
	db := Open(t)

	require.NoError(t, db.Exec(`INSERT INTO teams (name) VALUES ('Core')`).Error)

	err := db.Exec(`INSERT INTO teams (name) VALUES ('Core')`).Error
	assert.True(t, dberr.IsUniqueViolation(err), "got %v", err)

	err = db.Exec(`INSERT INTO people (name, team_id) VALUES ('Ann', 999)`).Error
	assert.True(t, dberr.IsForeignKeyViolation(err), "got %v", err)

	err = db.Exec(`INSERT INTO people (name, seniority) VALUES ('Bob', 'Guru')`).Error
	assert.True(t, dberr.IsCheckViolation(err), "got %v", err)
}

func TestOpen_Isolated(t *testing.T) {
	first := Open(t)
	second := Open(t)

	require.NoError(t, first.Exec(`INSERT INTO roles (name) VALUES ('Dev')`).Error)

	var count int64
	require.NoError(t, second.Table("roles").Count(&count).Error)
	assert.Zero(t, count)
}
