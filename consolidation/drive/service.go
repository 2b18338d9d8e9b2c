package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

const (
	sheetsMimeType string = "application/vnd.google-apps.spreadsheet"
	xlsxMimeType   string = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	spreadsheetNameMarker = ".xls"

	// fallbackSheetTitle is used only when the target spreadsheet has no tab at all.
	fallbackSheetTitle   string = "Consolidado"
	fallbackSheetRows    int64  = 1000
	fallbackSheetColumns int64  = 20

	valueInputRaw       = "RAW"
	valueRenderRaw      = "UNFORMATTED_VALUE"
	majorDimensionRows  = "ROWS"
	gridPropertiesField = "gridProperties.rowCount,gridProperties.columnCount"

	// Sheets allows 60 requests per minute per user; Drive calls share the same budget.
	requestsPerSecond = 1
	requestsBurst     = 10
)

type service struct {
	driveService  *drive.Service
	sheetsService *sheets.Service
	limiter       *rate.Limiter
}

// NewService authenticates with the service account credentials and returns
// a Service backed by the Drive and Sheets APIs.
func NewService(ctx context.Context, credentials []byte) (Service, error) {
	serviceConfig, err := google.JWTConfigFromJSON(credentials, drive.DriveScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}

	clientOpt := option.WithHTTPClient(serviceConfig.Client(ctx))

	driveService, err := drive.NewService(ctx, clientOpt)
	if err != nil {
		return nil, err
	}

	sheetsService, err := sheets.NewService(ctx, clientOpt)
	if err != nil {
		return nil, err
	}

	return &service{
		driveService,
		sheetsService,
		rate.NewLimiter(requestsPerSecond, requestsBurst),
	}, nil
}

// wait blocks until the next API call fits the quota.
func (s *service) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}

	return s.limiter.Wait(ctx)
}

// ListFiles returns the spreadsheets of a folder. Only the first page of the
// listing is read.
func (s *service) ListFiles(ctx context.Context, folderID string) ([]domain.RemoteFile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	q := fmt.Sprintf("'%s' in parents and (mimeType contains 'spreadsheet' or name contains '%s') and trashed = false", escapeQuery(folderID), spreadsheetNameMarker)

	fileList, err := s.driveService.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name, mimeType)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	files := make([]domain.RemoteFile, 0, len(fileList.Files))

	for _, f := range fileList.Files {
		if !IsSpreadsheet(f.MimeType, f.Name) {
			continue
		}

		files = append(files, domain.RemoteFile{
			ID:       f.Id,
			Name:     f.Name,
			MimeType: f.MimeType,
		})
	}

	return files, nil
}

// DownloadFile returns the file content. Native Google Sheets are exported as xlsx.
func (s *service) DownloadFile(ctx context.Context, file domain.RemoteFile) ([]byte, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var (
		body io.ReadCloser
		err  error
	)

	if file.MimeType == sheetsMimeType {
		resp, exportErr := s.driveService.Files.Export(file.ID, xlsxMimeType).Context(ctx).Download()
		if resp != nil {
			body = resp.Body
		}

		err = exportErr
	} else {
		resp, getErr := s.driveService.Files.Get(file.ID).SupportsAllDrives(true).Context(ctx).Download()
		if resp != nil {
			body = resp.Body
		}

		err = getErr
	}

	if err != nil {
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}

// OpenSheet resolves the spreadsheet by its exact title and returns its
// first tab. A tab is created only if the spreadsheet has none.
func (s *service) OpenSheet(ctx context.Context, name string) (*Sheet, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), sheetsMimeType)

	fileList, err := s.driveService.Files.List().
		Q(q).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	var spreadsheetID string

	for _, f := range fileList.Files {
		if f.Name == name {
			spreadsheetID = f.Id
			break
		}
	}

	if spreadsheetID == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrSheetNotFound, name)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	spreadsheet, err := s.sheetsService.Spreadsheets.Get(spreadsheetID).
		Fields("spreadsheetId", "spreadsheetUrl", "sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	if len(spreadsheet.Sheets) > 0 && spreadsheet.Sheets[0].Properties != nil {
		return newSheet(spreadsheet.SpreadsheetId, spreadsheet.SpreadsheetUrl, spreadsheet.Sheets[0].Properties), nil
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.sheetsService.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: fallbackSheetTitle,
					GridProperties: &sheets.GridProperties{
						RowCount:    fallbackSheetRows,
						ColumnCount: fallbackSheetColumns,
					},
				},
			}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil {
		return nil, fmt.Errorf("failed to add sheet %q to spreadsheet %s", fallbackSheetTitle, spreadsheetID)
	}

	return newSheet(spreadsheet.SpreadsheetId, spreadsheet.SpreadsheetUrl, resp.Replies[0].AddSheet.Properties), nil
}

// WriteTable clears the tab and writes values from A1, growing the grid
// when it is smaller than the table.
func (s *service) WriteTable(ctx context.Context, sheet *Sheet, values [][]interface{}) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	if _, err := s.sheetsService.Spreadsheets.Values.
		Clear(sheet.SpreadsheetID, quoteSheetTitle(sheet.Title), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("failed to clear sheet %q: %w", sheet.Title, err)
	}

	if len(values) == 0 {
		return nil
	}

	rows, columns := int64(len(values)), int64(0)
	for _, row := range values {
		if int64(len(row)) > columns {
			columns = int64(len(row))
		}
	}

	if rows > sheet.RowCount || columns > sheet.ColumnCount {
		if err := s.resize(ctx, sheet, max(rows, sheet.RowCount), max(columns, sheet.ColumnCount)); err != nil {
			return fmt.Errorf("failed to resize sheet %q: %w", sheet.Title, err)
		}
	}

	if err := s.wait(ctx); err != nil {
		return err
	}

	writeRange := quoteSheetTitle(sheet.Title) + "!A1"

	if _, err := s.sheetsService.Spreadsheets.Values.
		Update(sheet.SpreadsheetID, writeRange, &sheets.ValueRange{
			MajorDimension: majorDimensionRows,
			Range:          writeRange,
			Values:         values,
		}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("failed to write sheet %q: %w", sheet.Title, err)
	}

	return nil
}

// ReadTable returns every value of the tab, unformatted.
func (s *service) ReadTable(ctx context.Context, sheet *Sheet) ([][]interface{}, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.sheetsService.Spreadsheets.Values.
		Get(sheet.SpreadsheetID, quoteSheetTitle(sheet.Title)).
		ValueRenderOption(valueRenderRaw).
		MajorDimension(majorDimensionRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	return resp.Values, nil
}

func (s *service) resize(ctx context.Context, sheet *Sheet, rows, columns int64) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	_, err := s.sheetsService.Spreadsheets.BatchUpdate(sheet.SpreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: sheet.SheetID,
					GridProperties: &sheets.GridProperties{
						RowCount:    rows,
						ColumnCount: columns,
					},
					// the first tab usually has id 0, which is dropped unless forced
					ForceSendFields: []string{"SheetId"},
				},
				Fields: gridPropertiesField,
			}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return err
	}

	sheet.RowCount, sheet.ColumnCount = rows, columns

	return nil
}

func newSheet(spreadsheetID, url string, props *sheets.SheetProperties) *Sheet {
	sheet := &Sheet{
		SpreadsheetID:  spreadsheetID,
		SpreadsheetURL: url,
		SheetID:        props.SheetId,
		Title:          props.Title,
	}

	if props.GridProperties != nil {
		sheet.RowCount = props.GridProperties.RowCount
		sheet.ColumnCount = props.GridProperties.ColumnCount
	}

	return sheet
}

// IsSpreadsheet reports whether a Drive entry matches the listing query: a
// spreadsheet MIME type, or ".xls" anywhere in the name, case-insensitively.
// Entries that turn out not to be workbooks are rejected by format detection.
func IsSpreadsheet(mimeType, name string) bool {
	if strings.Contains(mimeType, "spreadsheet") || mimeType == "application/vnd.ms-excel" {
		return true
	}

	return strings.Contains(strings.ToLower(name), spreadsheetNameMarker)
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
