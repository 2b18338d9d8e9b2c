package domain

// ConsolidatedRow is a clinical record with its matching demographic record,
// if any.
type ConsolidatedRow struct {
	Clinical    ClinicalRecord
	Demographic *DemographicRecord
}

// ConsolidatedTable is the published table: one row per clinical record and
// demographic match.
type ConsolidatedTable struct {
	Rows []ConsolidatedRow
}

// ConsolidatedColumns are the published columns: clinical fields first, then
// the demographic fields other than the join key.
var ConsolidatedColumns = []string{
	FieldName,
	FieldDiagnosis,
	FieldTreatmentPlan,
	FieldDemandAssessment,
	FieldClosingRecord,
	FieldBirthDate,
	FieldSex,
	FieldCity,
	FieldProfession,
	FieldAge,
}

// Len returns the number of data rows.
func (t ConsolidatedTable) Len() int {
	return len(t.Rows)
}

// Values renders the table as sheet values, header row included. Missing
// demographic data is rendered as empty cells.
func (t ConsolidatedTable) Values() [][]interface{} {
	values := make([][]interface{}, 0, len(t.Rows)+1)

	header := make([]interface{}, len(ConsolidatedColumns))
	for i, c := range ConsolidatedColumns {
		header[i] = c
	}

	values = append(values, header)

	for _, row := range t.Rows {
		c := row.Clinical
		out := []interface{}{c.Name, c.Diagnosis, c.TreatmentPlan, c.DemandAssessment, c.ClosingRecord}

		if d := row.Demographic; d != nil {
			var age interface{} = ""
			if d.Age != nil {
				age = *d.Age
			}

			out = append(out, d.BirthDate, d.Sex, d.City, d.Profession, age)
		} else {
			out = append(out, "", "", "", "", "")
		}

		values = append(values, out)
	}

	return values
}
