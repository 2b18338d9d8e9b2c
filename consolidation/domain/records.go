package domain

// DemographicRecord is one row of the demographic exports.
type DemographicRecord struct {
	Name       string
	BirthDate  string
	Sex        string
	City       string
	Profession string
	// Age is nil when BirthDate could not be parsed.
	Age *int
}

// ClinicalRecord is one row of the clinical record exports.
type ClinicalRecord struct {
	Name             string
	Diagnosis        string
	TreatmentPlan    string
	DemandAssessment string
	ClosingRecord    string
}

// DemographicTable is the concatenation of every demographic file.
type DemographicTable struct {
	Records []DemographicRecord
}

// ClinicalTable is the concatenation of every clinical record file.
type ClinicalTable struct {
	Records []ClinicalRecord
}

// AgeFunc derives an age from a birth date, ok is false when it cannot.
type AgeFunc func(birthDate string) (age int, ok bool)

// Columns returns the canonical columns of the table, Age included.
func (DemographicTable) Columns() []string {
	return append(DemographicSchema.Canonical(), FieldAge)
}

// Columns returns the canonical columns of the table.
func (ClinicalTable) Columns() []string {
	return ClinicalSchema.Canonical()
}

// NewDemographicTable builds the typed table from a canonical raw table and
// fills Age using age.
func NewDemographicTable(t RawTable, age AgeFunc) DemographicTable {
	idx := t.Header.Index()
	records := make([]DemographicRecord, 0, t.Len())

	for _, r := range t.Records {
		rec := DemographicRecord{
			Name:       r.Get(idx, FieldName),
			BirthDate:  r.Get(idx, FieldBirthDate),
			Sex:        r.Get(idx, FieldSex),
			City:       r.Get(idx, FieldCity),
			Profession: r.Get(idx, FieldProfession),
		}

		if age != nil {
			if years, ok := age(rec.BirthDate); ok {
				rec.Age = &years
			}
		}

		records = append(records, rec)
	}

	return DemographicTable{Records: records}
}

// NewClinicalTable builds the typed table from a canonical raw table.
func NewClinicalTable(t RawTable) ClinicalTable {
	idx := t.Header.Index()
	records := make([]ClinicalRecord, 0, t.Len())

	for _, r := range t.Records {
		records = append(records, ClinicalRecord{
			Name:             r.Get(idx, FieldName),
			Diagnosis:        r.Get(idx, FieldDiagnosis),
			TreatmentPlan:    r.Get(idx, FieldTreatmentPlan),
			DemandAssessment: r.Get(idx, FieldDemandAssessment),
			ClosingRecord:    r.Get(idx, FieldClosingRecord),
		})
	}

	return ClinicalTable{Records: records}
}
