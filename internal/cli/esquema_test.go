package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/udistrital/observatorio_mid/models"
)

func TestWriteTables(t *testing.T) {
	def := "0"
	tables := []models.TableDescriptor{{
		Name: "carreras",
		Columns: []models.ColumnDescriptor{
			{Name: "id", Type: "integer", IsIdentity: true},
			{Name: "empleabilidad", Type: "numeric", Nullable: true, Default: &def},
		},
	}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeTables(&buf, "json", tables))
		assert.Contains(t, buf.String(), `"name": "carreras"`)
		assert.Contains(t, buf.String(), `"isIdentity": true`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeTables(&buf, "yaml", tables))

		var back []models.TableDescriptor
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
		require.Len(t, back, 1)
		assert.Equal(t, "carreras", back[0].Name)
		require.NotNil(t, back[0].Columns[1].Default)
		assert.Equal(t, "0", *back[0].Columns[1].Default)
	})
}
