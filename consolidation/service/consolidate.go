package service

import (
	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

// Consolidate left joins the clinical records with the demographic records on
// Name. Every clinical record yields one row per demographic match, in
// demographic order, or a single row without demographic data.
func Consolidate(clinical domain.ClinicalTable, demographic domain.DemographicTable) domain.ConsolidatedTable {
	byName := make(map[string][]int, len(demographic.Records))
	for i, d := range demographic.Records {
		byName[d.Name] = append(byName[d.Name], i)
	}

	rows := make([]domain.ConsolidatedRow, 0, len(clinical.Records))

	for _, c := range clinical.Records {
		matches := byName[c.Name]
		if len(matches) == 0 {
			rows = append(rows, domain.ConsolidatedRow{Clinical: c})
			continue
		}

		for _, i := range matches {
			d := demographic.Records[i]
			rows = append(rows, domain.ConsolidatedRow{Clinical: c, Demographic: &d})
		}
	}

	return domain.ConsolidatedTable{Rows: rows}
}
