//go:generate mockery --output=./mocks --all
package drive

import (
	"context"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

// Service is the narrow Google Workspace capability the pipeline relies on.
type Service interface {
	ListFiles(ctx context.Context, folderID string) ([]domain.RemoteFile, error)
	DownloadFile(ctx context.Context, file domain.RemoteFile) ([]byte, error)
	OpenSheet(ctx context.Context, name string) (*Sheet, error)
	WriteTable(ctx context.Context, sheet *Sheet, values [][]interface{}) error
	ReadTable(ctx context.Context, sheet *Sheet) ([][]interface{}, error)
}

// Sheet is a resolved worksheet of a spreadsheet.
type Sheet struct {
	SpreadsheetID  string
	SpreadsheetURL string
	SheetID        int64
	Title          string
	RowCount       int64
	ColumnCount    int64
}
