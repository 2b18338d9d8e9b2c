//go:generate mockery --name Service --output ./mocks
package iface

import (
	"context"

	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
)

type Service interface {
	Run(ctx context.Context) (*domain.RunReport, error)
	PublishedRecords(ctx context.Context) ([]map[string]interface{}, error)
}
