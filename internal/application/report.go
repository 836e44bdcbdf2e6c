package application

import (
	"fmt"
	"sort"
	"time"

	"github.com/kaiwenliu/careconnect-go/internal/domain/report"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
)

// ReportService groups request creations and service completions into
// calendar buckets for the platform manager's reports.
type ReportService struct {
	Repos *repository.Repos
}

func NewReportService(repos *repository.Repos) *ReportService {
	return &ReportService{
		Repos: repos,
	}
}

// Generate builds the created/completed counts for the scope. Unknown
// scopes fall back to daily.
func (s *ReportService) Generate(scope report.Scope) (*report.Report, error) {
	switch scope {
	case report.ScopeDaily, report.ScopeWeekly, report.ScopeMonthly:
	default:
		scope = report.ScopeDaily
	}

	created, err := s.Repos.Request.ListCreationTimes()
	if err != nil {
		return nil, err
	}
	completed, err := s.Repos.History.ListCompletionTimes()
	if err != nil {
		return nil, err
	}

	return &report.Report{
		Scope:     scope,
		Requests:  bucketize(created, scope),
		Completed: bucketize(completed, scope),
	}, nil
}

// BucketKey formats a timestamp into its bucket: "2006-01-02" daily,
// ISO "2006-W01" weekly, "2006-01" monthly. Keys sort chronologically.
func BucketKey(t time.Time, scope report.Scope) string {
	t = t.UTC()
	switch scope {
	case report.ScopeWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case report.ScopeMonthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

func bucketize(times []time.Time, scope report.Scope) []report.Bucket {
	counts := make(map[string]int)
	for _, t := range times {
		counts[BucketKey(t, scope)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]report.Bucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, report.Bucket{Key: k, Count: counts[k]})
	}
	return buckets
}
