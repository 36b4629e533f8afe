package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestForeignKeysReferenceKnownTables(t *testing.T) {
	known := make(map[string]bool, len(TableNames))
	for _, name := range TableNames {
		known[name] = true
	}
	for _, fk := range ForeignKeys {
		assert.True(t, known[fk.From], "unknown table %s", fk.From)
		assert.True(t, known[fk.To], "unknown table %s", fk.To)
	}
}

func TestEntitiesCoverEveryTable(t *testing.T) {
	var names []string
	for _, entity := range All() {
		tabler, ok := entity.(schema.Tabler)
		if assert.True(t, ok, "%T has no TableName", entity) {
			names = append(names, tabler.TableName())
		}
	}
	assert.Equal(t, TableNames, names)
}
