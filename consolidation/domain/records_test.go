package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDemographicTable(t *testing.T) {
	raw := RawTable{
		Header: Header{FieldName, FieldBirthDate, FieldSex, FieldCity, FieldProfession},
		Records: []Record{
			{"Bob", "15/03/1990", "M", "Recife", "Engineer"},
			{"Carol", "?", "F", "Olinda", "Teacher"},
		},
	}

	table := NewDemographicTable(raw, func(birthDate string) (int, bool) {
		if birthDate == "15/03/1990" {
			return 34, true
		}

		return 0, false
	})

	assert.Len(t, table.Records, 2)
	assert.Equal(t, "Recife", table.Records[0].City)
	if assert.NotNil(t, table.Records[0].Age) {
		assert.Equal(t, 34, *table.Records[0].Age)
	}
	assert.Nil(t, table.Records[1].Age)
	assert.Equal(t, []string{FieldName, FieldBirthDate, FieldSex, FieldCity, FieldProfession, FieldAge}, table.Columns())
}

func TestNewClinicalTable(t *testing.T) {
	raw := RawTable{
		Header:  Header{FieldName, FieldDiagnosis, FieldTreatmentPlan, FieldDemandAssessment, FieldClosingRecord},
		Records: []Record{{"Alice", "X", "Therapy", "High", "Closed"}},
	}

	table := NewClinicalTable(raw)

	assert.Equal(t, []ClinicalRecord{{
		Name:             "Alice",
		Diagnosis:        "X",
		TreatmentPlan:    "Therapy",
		DemandAssessment: "High",
		ClosingRecord:    "Closed",
	}}, table.Records)
	assert.Equal(t, ClinicalSchema.Canonical(), table.Columns())
}

func TestConsolidatedTableValues(t *testing.T) {
	age := 34

	table := ConsolidatedTable{Rows: []ConsolidatedRow{
		{Clinical: ClinicalRecord{Name: "Alice", Diagnosis: "X"}},
		{
			Clinical:    ClinicalRecord{Name: "Bob", Diagnosis: "Y"},
			Demographic: &DemographicRecord{Name: "Bob", BirthDate: "15/03/1990", Sex: "M", City: "Recife", Profession: "Engineer", Age: &age},
		},
		{
			Clinical:    ClinicalRecord{Name: "Carol"},
			Demographic: &DemographicRecord{Name: "Carol", BirthDate: "?"},
		},
	}}

	assert.Equal(t, [][]interface{}{
		{"Name", "Diagnosis", "TreatmentPlan", "DemandAssessment", "ClosingRecord", "BirthDate", "Sex", "City", "Profession", "Age"},
		{"Alice", "X", "", "", "", "", "", "", "", ""},
		{"Bob", "Y", "", "", "", "15/03/1990", "M", "Recife", "Engineer", 34},
		{"Carol", "", "", "", "", "?", "", "", "", ""},
	}, table.Values())
}
