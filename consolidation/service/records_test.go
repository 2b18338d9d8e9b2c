package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecords(t *testing.T) {
	values := [][]interface{}{
		{"Name", "Diagnosis", "", "Age"},
		{"Alice", "X", "ignored", float64(34)},
		{"Bob"},
		{},
	}

	got := Records(values)

	assert.Equal(t, []map[string]interface{}{
		{"Name": "Alice", "Diagnosis": "X", "Age": float64(34)},
		{"Name": "Bob", "Diagnosis": "", "Age": ""},
		{"Name": "", "Diagnosis": "", "Age": ""},
	}, got)
}

func TestRecordsEmpty(t *testing.T) {
	assert.Empty(t, Records(nil))
	assert.NotNil(t, Records(nil))
	assert.Empty(t, Records([][]interface{}{{"Name", "Age"}}))
}
