package services

import (
	"context"
	"fmt"
	"log/slog"

	"nathanbeddoewebdev/porkbun-ddns/internal/dns/domain"
)

// Outcome is the terminal classification of one target within a pass.
type Outcome int

const (
	OutcomeChanged Outcome = iota
	OutcomeSkipped
	OutcomeErrored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChanged:
		return "Changed"
	case OutcomeSkipped:
		return "Skipped"
	case OutcomeErrored:
		return "Errored"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// TargetResult records what happened to one target name.
type TargetResult struct {
	Name     string
	Outcome  Outcome
	RecordID string

	// Err is set when Outcome is OutcomeErrored. A missing record is
	// reported as domain.ErrRecordMissing.
	Err error
}

// DomainReport tallies the outcomes for one configured domain.
type DomainReport struct {
	Domain  string
	Targets []TargetResult

	Changed int
	Skipped int
	Errored int

	// Err is set when the records could not be retrieved. No targets are
	// processed in that case.
	Err error
}

// Failed reports whether the domain was abandoned before any target.
func (r DomainReport) Failed() bool {
	return r.Err != nil
}

func (r *DomainReport) add(result TargetResult) {
	r.Targets = append(r.Targets, result)
	switch result.Outcome {
	case OutcomeChanged:
		r.Changed++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeErrored:
		r.Errored++
	}
}

// Summary is the result of one pass.
type Summary struct {
	IP      string
	Domains []DomainReport
}

// Totals sums the outcome counts across every domain.
func (s *Summary) Totals() (changed, skipped, errored int) {
	for _, d := range s.Domains {
		changed += d.Changed
		skipped += d.Skipped
		errored += d.Errored
	}
	return changed, skipped, errored
}

// FailedDomains returns the number of domains whose records could not be
// retrieved.
func (s *Summary) FailedDomains() int {
	n := 0
	for _, d := range s.Domains {
		if d.Failed() {
			n++
		}
	}
	return n
}

// Run performs one reconciliation pass over specs in order.
//
// The only returned error is ErrPingFailed; retrieve and edit failures are
// contained to their domain or target and reported in the Summary and on
// the output writer.
func (s *Service) Run(ctx context.Context, specs []domain.DomainSpec) (*Summary, error) {
	ip, err := s.ObserveIP(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("observed public address", slog.String("ip", ip))

	summary := &Summary{IP: ip, Domains: make([]DomainReport, 0, len(specs))}
	for _, spec := range specs {
		summary.Domains = append(summary.Domains, s.ReconcileDomain(ctx, ip, spec))
	}
	return summary, nil
}

// ReconcileDomain brings every target of spec in line with ip.
func (s *Service) ReconcileDomain(ctx context.Context, ip string, spec domain.DomainSpec) DomainReport {
	report := DomainReport{Domain: spec.Name}
	s.verbosef("Now updating domain: %q", spec.Name)

	records, err := s.provider.ListRecords(ctx, spec.Name)
	if err != nil {
		report.Err = err
		s.printf("Failed to update domain %q: %s", spec.Name, domain.Message(err))
		return report
	}

	candidates := selectRecords(spec, records)
	for _, target := range spec.Targets() {
		report.add(s.reconcileTarget(ctx, ip, spec.Name, target, candidates))
	}

	s.printf("Updated domain records for %q: %d Changed, %d Skipped, %d Errored",
		spec.Name, report.Changed, report.Skipped, report.Errored)
	return report
}

func (s *Service) reconcileTarget(ctx context.Context, ip, apex, target string, candidates []domain.Record) TargetResult {
	record, ok := findRecord(candidates, target)
	if !ok {
		s.verbosef("Record %q does not exist", target)
		return TargetResult{Name: target, Outcome: OutcomeErrored, Err: domain.ErrRecordMissing}
	}

	result := TargetResult{Name: target, RecordID: record.ID}
	if record.Content == ip {
		s.verbosef("Record %q skipped", target)
		result.Outcome = OutcomeSkipped
		return result
	}

	ttl := record.TTL
	if !record.HasTTL() {
		ttl = domain.DefaultTTL
	}
	err := s.provider.EditRecord(ctx, apex, record.ID, domain.EditRecordOpts{Content: ip, TTL: ttl})
	if err != nil {
		s.verbosef("Record %q failed to update: %s", target, domain.Message(err))
		s.logger.Debug("edit failed", slog.String("name", target), slog.String("id", record.ID), slog.Any("error", err))
		result.Outcome = OutcomeErrored
		result.Err = err
		return result
	}

	s.verbosef("Record %q successfully updated", target)
	s.logger.Debug("record updated",
		slog.String("name", target),
		slog.String("id", record.ID),
		slog.String("from", record.Content),
		slog.String("to", ip),
	)
	result.Outcome = OutcomeChanged
	return result
}

// selectRecords keeps the A records that belong to the zone of spec, in
// registrar order. Names and types are compared as sent by the registrar.
func selectRecords(spec domain.DomainSpec, records []domain.Record) []domain.Record {
	selected := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if r.Type == domain.RecordTypeA && spec.InZone(r.Name) {
			selected = append(selected, r)
		}
	}
	return selected
}

// findRecord returns the first record named name.
func findRecord(records []domain.Record, name string) (domain.Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return domain.Record{}, false
}
