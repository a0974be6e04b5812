// Package scheduler hosts the cron triggers for the recurring billing
// jobs. A single cron instance runs in the server process; the jobs
// themselves are idempotent per billing period, so a missed or repeated
// tick never produces duplicate charges.
package scheduler

import (
	"context"
	"log"
	"time"

	"simpasar/internal/services/billing"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron    *cron.Cron
	billing *billing.Service
}

func New(billingSvc *billing.Service, loc *time.Location) *Scheduler {
	if billingSvc == nil {
		panic("billing service is required")
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		billing: billingSvc,
	}
}

// Start registers both jobs and starts the cron loop in its own
// goroutine. Job errors are operational: they are logged and left for the
// next tick to catch up on.
func (s *Scheduler) Start(dailySpec, annualSpec string) error {
	if _, err := s.cron.AddFunc(dailySpec, s.runDailyDues); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(annualSpec, s.runAnnualInvoices); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[SCHEDULER] started (dues %q, invoices %q)", dailySpec, annualSpec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("[SCHEDULER] stopped")
}

func (s *Scheduler) runDailyDues() {
	report, err := s.billing.GenerateDailyDues(context.Background(), time.Now())
	if err != nil {
		log.Printf("[SCHEDULER] daily dues run failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] daily dues: created=%d skipped=%d failed=%d",
		report.Created, report.Skipped, report.Failed)
}

func (s *Scheduler) runAnnualInvoices() {
	report, err := s.billing.GenerateAnnualInvoices(context.Background(), time.Now())
	if err != nil {
		log.Printf("[SCHEDULER] annual invoice run failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] annual invoices: created=%d skipped=%d failed=%d",
		report.Created, report.Skipped, report.Failed)
}
