package domain

// Domain identifies one of the two families of source spreadsheets.
type Domain string

const (
	DomainDemographic Domain = "demographic"
	DomainClinical    Domain = "clinical"
)

// Kind tells the reader how a source column must be rendered.
type Kind int

const (
	KindText Kind = iota
	// KindDate columns may hold spreadsheet date serials, which are rendered day-first.
	KindDate
)

// Column maps a column name found in the exports to its canonical field name.
type Column struct {
	Source    string
	Canonical string
	Kind      Kind
}

// Schema is the fixed, ordered set of columns recognized for a domain.
type Schema struct {
	Domain  Domain
	Columns []Column
}

// Canonical field names.
const (
	FieldName             = "Name"
	FieldBirthDate        = "BirthDate"
	FieldSex              = "Sex"
	FieldCity             = "City"
	FieldProfession       = "Profession"
	FieldAge              = "Age"
	FieldDiagnosis        = "Diagnosis"
	FieldTreatmentPlan    = "TreatmentPlan"
	FieldDemandAssessment = "DemandAssessment"
	FieldClosingRecord    = "ClosingRecord"
)

var (
	DemographicSchema = Schema{
		Domain: DomainDemographic,
		Columns: []Column{
			{Source: "Nome Completo", Canonical: FieldName},
			{Source: "Data de Nascimento", Canonical: FieldBirthDate, Kind: KindDate},
			{Source: "Sexo", Canonical: FieldSex},
			{Source: "Cidade", Canonical: FieldCity},
			{Source: "Profissão", Canonical: FieldProfession},
		},
	}

	ClinicalSchema = Schema{
		Domain: DomainClinical,
		Columns: []Column{
			{Source: "Nome do Paciente", Canonical: FieldName},
			{Source: "Diagnóstico", Canonical: FieldDiagnosis},
			{Source: "Plano de Tratamento", Canonical: FieldTreatmentPlan},
			{Source: "Avaliação da Demanda", Canonical: FieldDemandAssessment},
			{Source: "Registro de Encerramento", Canonical: FieldClosingRecord},
		},
	}
)

// Canonical returns the canonical column names in schema order.
func (s Schema) Canonical() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Canonical
	}

	return names
}

// Recognize returns, in schema order, the columns whose source name is
// present in the header.
func (s Schema) Recognize(h Header) []Column {
	idx := h.Index()

	var recognized []Column

	for _, c := range s.Columns {
		if _, ok := idx[c.Source]; ok {
			recognized = append(recognized, c)
		}
	}

	return recognized
}

// Normalize renames source column names to canonical names. Header cells the
// schema does not know are left untouched.
func (s Schema) Normalize(t RawTable) RawTable {
	rename := make(map[string]string, len(s.Columns))
	for _, c := range s.Columns {
		rename[c.Source] = c.Canonical
	}

	header := make(Header, len(t.Header))

	for i, name := range t.Header {
		if canonical, ok := rename[name]; ok {
			header[i] = canonical
		} else {
			header[i] = name
		}
	}

	return RawTable{
		Header:  header,
		Records: t.Records,
	}
}
