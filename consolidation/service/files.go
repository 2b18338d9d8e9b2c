package service

import (
	"context"
	"fmt"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
	"github.com/doitintl/hello/records-consolidation/consolidation/drive"
	"github.com/doitintl/hello/records-consolidation/consolidation/spreadsheet"
)

// readFile parses one downloaded file for the schema. ok is false when the
// header holds none of the schema columns, in which case the file is skipped.
func readFile(data []byte, schema domain.Schema) (table domain.RawTable, ok bool, err error) {
	header, err := spreadsheet.ReadHeader(data)
	if err != nil {
		return domain.RawTable{}, false, err
	}

	recognized := schema.Recognize(header)
	if len(recognized) == 0 {
		return domain.RawTable{}, false, nil
	}

	table, err = spreadsheet.Read(data, recognized)
	if err != nil {
		return domain.RawTable{}, false, err
	}

	return table, true, nil
}

// aggregate reads every spreadsheet of the folder and concatenates them into
// one table with the canonical columns of the schema. Files that cannot be
// parsed are recorded in the report and contribute no rows. Listing and
// download errors abort the run.
func (s *Service) aggregate(ctx context.Context, ws drive.Service, folderID string, schema domain.Schema) (domain.RawTable, domain.SourceReport, error) {
	l := s.loggerProvider(ctx)

	canonical := schema.Canonical()
	table := domain.RawTable{Header: canonical}
	report := domain.SourceReport{
		Domain:   schema.Domain,
		FolderID: folderID,
	}

	files, err := ws.ListFiles(ctx, folderID)
	if err != nil {
		return table, report, fmt.Errorf("failed to list %s folder %s: %w", schema.Domain, folderID, err)
	}

	report.FilesListed = len(files)
	l.Infof("%d files found in %s folder %s", len(files), schema.Domain, folderID)

	for _, file := range files {
		data, err := ws.DownloadFile(ctx, file)
		if err != nil {
			return table, report, fmt.Errorf("failed to download %s (%s): %w", file.Name, file.ID, err)
		}

		raw, ok, err := readFile(data, schema)

		switch {
		case err != nil:
			l.Warningf("failed to read %s: %s", file.Name, err)
			report.AddFailure(file, err)
		case !ok:
			l.Infof("skipping %s: none of the %s columns found", file.Name, schema.Domain)
			report.FilesSkipped++
		default:
			table.Append(schema.Normalize(raw).Conform(canonical))
			report.FilesRead++
		}
	}

	report.Rows = table.Len()

	return table, report, nil
}
