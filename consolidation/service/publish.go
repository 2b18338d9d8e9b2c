package service

import (
	"context"
	"fmt"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
	"github.com/doitintl/hello/records-consolidation/consolidation/drive"
)

// publish overwrites the target tab with the consolidated table.
func (s *Service) publish(ctx context.Context, ws drive.Service, table domain.ConsolidatedTable) (*drive.Sheet, error) {
	l := s.loggerProvider(ctx)

	sheet, err := ws.OpenSheet(ctx, s.cfg.TargetSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %q: %w", s.cfg.TargetSheetName, err)
	}

	if err := ws.WriteTable(ctx, sheet, table.Values()); err != nil {
		return nil, fmt.Errorf("failed to write spreadsheet %q: %w", s.cfg.TargetSheetName, err)
	}

	l.Infof("%d rows written to %s tab %q", table.Len(), sheet.SpreadsheetURL, sheet.Title)

	return sheet, nil
}

// PublishedRecords reads back the published tab, using the same spreadsheet
// resolution as the pipeline.
func (s *Service) PublishedRecords(ctx context.Context) ([]map[string]interface{}, error) {
	ws, err := s.workspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with google workspace: %w", err)
	}

	sheet, err := ws.OpenSheet(ctx, s.cfg.TargetSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %q: %w", s.cfg.TargetSheetName, err)
	}

	values, err := ws.ReadTable(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %q: %w", s.cfg.TargetSheetName, err)
	}

	return Records(values), nil
}

// Records maps every row after the first to an object keyed by the first
// row. Short rows are padded with empty strings and columns without a
// header are ignored.
func Records(values [][]interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, max(len(values)-1, 0))
	if len(values) == 0 {
		return records
	}

	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = fmt.Sprint(v)
	}

	for _, row := range values[1:] {
		record := make(map[string]interface{}, len(header))

		for i, key := range header {
			if key == "" {
				continue
			}

			if i < len(row) && row[i] != nil {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}

		records = append(records, record)
	}

	return records
}
