package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// SourceReport summarizes the ingestion of one domain folder.
type SourceReport struct {
	Domain       Domain
	FolderID     string
	FilesListed  int
	FilesRead    int
	FilesSkipped int
	FilesFailed  int
	Rows         int
	// Failures holds one error per file that could not be parsed.
	Failures *multierror.Error
}

// AddFailure records a file that contributed no rows because of err.
func (r *SourceReport) AddFailure(file RemoteFile, err error) {
	r.FilesFailed++
	r.Failures = multierror.Append(r.Failures, fmt.Errorf("%s (%s): %w", file.Name, file.ID, err))
}

func (r SourceReport) String() string {
	return fmt.Sprintf("%s: %d files listed, %d read, %d skipped, %d failed, %d rows",
		r.Domain, r.FilesListed, r.FilesRead, r.FilesSkipped, r.FilesFailed, r.Rows)
}

// RunReport is the outcome of one successful pipeline run.
type RunReport struct {
	RunID            string
	StartedAt        time.Time
	FinishedAt       time.Time
	Demographic      SourceReport
	Clinical         SourceReport
	ConsolidatedRows int
	SpreadsheetURL   string
}

// String returns the human readable summary sent back to the trigger caller.
func (r *RunReport) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "consolidation %s completed in %s: %d rows published to %s\n",
		r.RunID, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond), r.ConsolidatedRows, r.SpreadsheetURL)
	fmt.Fprintln(&b, r.Demographic.String())
	fmt.Fprint(&b, r.Clinical.String())

	return b.String()
}
