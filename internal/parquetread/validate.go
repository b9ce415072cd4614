package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// requiredColumn holds the free-form date strings.
const requiredColumn = "input"

// optionalColumns are read when present; any other column is ignored.
var optionalColumns = []string{"source", "note"}

// ValidateSchema checks that the Parquet schema carries a string "input"
// column and that known optional columns, when present, are strings too.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = field
	}

	field, ok := columns[requiredColumn]
	if !ok {
		return fmt.Errorf("missing required column: %s", requiredColumn)
	}
	if !isString(field) {
		return fmt.Errorf("column %s must be a string, got %s", requiredColumn, field.Type())
	}

	for _, col := range optionalColumns {
		if f, ok := columns[col]; ok && !isString(f) {
			return fmt.Errorf("column %s must be a string, got %s", col, f.Type())
		}
	}
	return nil
}

func isString(f parquet.Field) bool {
	if !f.Leaf() {
		return false
	}
	return f.Type().Kind() == parquet.ByteArray
}
