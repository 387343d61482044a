// Package analytics serves the teacher's class analytics report and its JSON export.
package analytics

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
)

const exportKind = "analytics"

type Service struct {
	data Data
	now  func() time.Time
}

// NewService serves data for every time range; now defaults to time.Now.
func NewService(data Data, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{data: data, now: now}
}

// Report returns the analytics for timeRange; an empty range means DefaultTimeRange.
func (svc *Service) Report(timeRange string) (Report, error) {
	tr, err := parseTimeRange(timeRange)
	if err != nil {
		return Report{}, err
	}
	return Report{TimeRange: tr, Data: svc.data}, nil
}

// Export renders the report as an `analytics-{range}-{date}.json` file.
func (svc *Service) Export(timeRange string) (filename string, content []byte, err error) {
	tr, err := parseTimeRange(timeRange)
	if err != nil {
		return "", nil, err
	}
	now := svc.now()
	payload := ExportPayload{
		Timestamp: now.UTC().Format(time.RFC3339),
		TimeRange: tr,
		Data:      svc.data,
	}
	return core.Export(exportKind, tr, payload, now)
}

func parseTimeRange(id string) (string, error) {
	id = core.CleanString(id, true)
	if id == "" {
		return DefaultTimeRange, nil
	}
	for _, tr := range TimeRanges {
		if tr.ID == id {
			return id, nil
		}
	}
	return "", core.NewValidationError(
		errors.Errorf("unknown time range %q", id),
		core.FieldError{Field: "range", Error: "must be one of week, month, quarter or year"},
	)
}
