package billing

import "time"

// VendorFailure records one vendor whose charge could not be generated
// during a run. The run keeps going; the failure only lands here and in
// the log.
type VendorFailure struct {
	VendorCode string `json:"vendor_code"`
	Reason     string `json:"reason"`
}

// RunReport is the per-run summary of a scheduled billing job. Skips are
// normal (already charged this period, nothing to bill); failures are
// operational and expected to be picked up by the next run, since the
// idempotency checks are period-based, not run-based.
type RunReport struct {
	Job        string          `json:"job"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Created    int             `json:"created"`
	Skipped    int             `json:"skipped"`
	Failed     int             `json:"failed"`
	Failures   []VendorFailure `json:"failures,omitempty"`
}

func newRunReport(job string, startedAt time.Time) *RunReport {
	return &RunReport{Job: job, StartedAt: startedAt}
}

func (r *RunReport) fail(vendorCode string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, VendorFailure{VendorCode: vendorCode, Reason: err.Error()})
}
