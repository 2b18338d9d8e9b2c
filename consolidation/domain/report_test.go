package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSourceReportAddFailure(t *testing.T) {
	r := SourceReport{Domain: DomainClinical, FilesListed: 2}

	r.AddFailure(RemoteFile{ID: "f1", Name: "a.xls"}, errors.New("corrupted"))
	r.AddFailure(RemoteFile{ID: "f2", Name: "b.xlsx"}, errors.New("zip: not a valid zip file"))

	assert.Equal(t, 2, r.FilesFailed)
	assert.Len(t, r.Failures.Errors, 2)
	assert.Contains(t, r.Failures.Error(), "a.xls (f1): corrupted")
	assert.Equal(t, "clinical: 2 files listed, 0 read, 0 skipped, 2 failed, 0 rows", r.String())
}

func TestRunReportString(t *testing.T) {
	started := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	r := &RunReport{
		RunID:            "run-1",
		StartedAt:        started,
		FinishedAt:       started.Add(1500 * time.Millisecond),
		ConsolidatedRows: 3,
		SpreadsheetURL:   "https://docs.google.com/spreadsheets/d/id/edit",
		Demographic:      SourceReport{Domain: DomainDemographic, FilesListed: 1, FilesRead: 1, Rows: 2},
		Clinical:         SourceReport{Domain: DomainClinical, FilesListed: 1, FilesRead: 1, Rows: 3},
	}

	assert.Equal(t,
		"consolidation run-1 completed in 1.5s: 3 rows published to https://docs.google.com/spreadsheets/d/id/edit\n"+
			"demographic: 1 files listed, 1 read, 0 skipped, 0 failed, 2 rows\n"+
			"clinical: 1 files listed, 1 read, 0 skipped, 0 failed, 3 rows",
		r.String())
}
