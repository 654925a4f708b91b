package services

import (
	"context"
	"fmt"
	"time"

	"oilwell-reports/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DigestWindow is how far back each digest looks
const DigestWindow = 24 * time.Hour

// Digest summarises recent reporting activity
type Digest struct {
	Since time.Time
	Total int64
	Wells []*repositories.WellReportCount
}

// DigestService logs a periodic per-well summary of filed reports
type DigestService struct {
	reportRepo repositories.ReportRepository
	log        zerolog.Logger
	cron       *cron.Cron
	now        func() time.Time
}

// NewDigestService creates a new digest service
func NewDigestService(reportRepo repositories.ReportRepository, log zerolog.Logger) *DigestService {
	return &DigestService{
		reportRepo: reportRepo,
		log:        log,
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:        time.Now,
	}
}

// Start schedules the digest with a standard 5-field cron spec
func (s *DigestService) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			s.log.Error().Err(err).Msg("❌ Report digest failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("🚀 Report digest scheduled")
	return nil
}

// Stop waits for a running digest to finish
func (s *DigestService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("🛑 Report digest stopped")
}

// Run builds and logs the digest for the last DigestWindow
func (s *DigestService) Run(ctx context.Context) (*Digest, error) {
	since := s.now().Add(-DigestWindow)

	counts, err := s.reportRepo.CountByWellSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	digest := &Digest{Since: since, Wells: counts}
	for _, c := range counts {
		digest.Total += c.ReportCount
	}

	s.log.Info().
		Time("since", since).
		Int64("total", digest.Total).
		Array("wells", wellTallies(counts)).
		Msg("📊 Report digest")

	return digest, nil
}

// wellTallies logs per-well counts as an array; well names are not unique
// and must not become field keys
type wellTallies []*repositories.WellReportCount

func (t wellTallies) MarshalZerologArray(a *zerolog.Array) {
	for _, c := range t {
		a.Object(wellTally{c})
	}
}

type wellTally struct {
	*repositories.WellReportCount
}

func (t wellTally) MarshalZerologObject(e *zerolog.Event) {
	e.Uint("well_id", t.WellID)
	if t.WellName == "" {
		e.Bool("deleted", true)
	} else {
		e.Str("well_name", t.WellName)
	}
	e.Int64("reports", t.ReportCount)
}
