package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/doitintl/hello/records-consolidation/config"
	"github.com/doitintl/hello/records-consolidation/consolidation/domain"
	"github.com/doitintl/hello/records-consolidation/framework/connection"
	"github.com/doitintl/hello/records-consolidation/logger"
)

const runKey = "consolidate"

type Service struct {
	loggerProvider logger.Provider
	workspace      connection.WorkspaceFromContextFun
	cfg            *config.Config
	ages           *AgeDeriver
	runs           singleflight.Group
	now            func() time.Time
}

func NewService(loggerProvider logger.Provider, conn *connection.Connection, cfg *config.Config) *Service {
	return NewServiceWithWorkspace(loggerProvider, conn.Workspace, cfg)
}

func NewServiceWithWorkspace(loggerProvider logger.Provider, workspace connection.WorkspaceFromContextFun, cfg *config.Config) *Service {
	return &Service{
		loggerProvider: loggerProvider,
		workspace:      workspace,
		cfg:            cfg,
		ages:           NewAgeDeriver(),
		now:            time.Now,
	}
}

// Run executes the pipeline once. Calls made while a run is in flight wait
// for it and share its outcome. A caller whose ctx is cancelled stops waiting
// with ctx.Err(), while the run itself goes on so the sheet is not left half
// written. HTTP callers pass the request context, see handlers.Consolidation.
func (s *Service) Run(ctx context.Context) (*domain.RunReport, error) {
	ch := s.runs.DoChan(runKey, func() (interface{}, error) {
		return s.run(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		if res.Shared {
			s.loggerProvider(ctx).Info("consolidation run shared with concurrent callers")
		}

		return res.Val.(*domain.RunReport), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Service) run(ctx context.Context) (*domain.RunReport, error) {
	l := s.loggerProvider(ctx)

	report := &domain.RunReport{
		RunID:     uuid.NewString(),
		StartedAt: s.now(),
	}

	l.SetRunID(report.RunID)
	l.Infof("consolidation %s started", report.RunID)

	ws, err := s.workspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate with google workspace: %w", err)
	}

	rawDemographic, demographicReport, err := s.aggregate(ctx, ws, s.cfg.DemographicFolderID, domain.DemographicSchema)
	report.Demographic = demographicReport

	if err != nil {
		return nil, err
	}

	demographic := domain.NewDemographicTable(rawDemographic, s.ages.Derive)

	rawClinical, clinicalReport, err := s.aggregate(ctx, ws, s.cfg.ClinicalFolderID, domain.ClinicalSchema)
	report.Clinical = clinicalReport

	if err != nil {
		return nil, err
	}

	clinical := domain.NewClinicalTable(rawClinical)

	consolidated := Consolidate(clinical, demographic)
	report.ConsolidatedRows = consolidated.Len()

	sheet, err := s.publish(ctx, ws, consolidated)
	if err != nil {
		return nil, err
	}

	report.SpreadsheetURL = sheet.SpreadsheetURL
	report.FinishedAt = s.now()

	if report.Demographic.Failures != nil {
		l.Warningf("demographic files not consolidated: %s", report.Demographic.Failures)
	}

	if report.Clinical.Failures != nil {
		l.Warningf("clinical files not consolidated: %s", report.Clinical.Failures)
	}

	l.Info(report.String())

	return report, nil
}
