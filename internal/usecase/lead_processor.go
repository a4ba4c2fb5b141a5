package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leadfilter-service/internal/domain/entity"
	"leadfilter-service/internal/domain/repository"
	"leadfilter-service/pkg/logger"
	"leadfilter-service/pkg/metrics"

	"github.com/google/uuid"
)

// FieldSelector extracts the dedup key from a lead.
type FieldSelector func(*entity.Lead) string

// SelectID keys a lead by its _id field.
func SelectID(l *entity.Lead) string { return l.ID }

// SelectEmail keys a lead by its email field.
func SelectEmail(l *entity.Lead) string { return l.Email }

// DedupResult maps a dedup key to the surviving lead for that key.
// It remembers the order keys were first seen so survivors come back
// out in a stable order.
type DedupResult struct {
	keys  []string
	byKey map[string]keptLead
}

type keptLead struct {
	lead *entity.Lead
	at   time.Time
}

func newDedupResult() *DedupResult {
	return &DedupResult{byKey: make(map[string]keptLead)}
}

func (r *DedupResult) get(key string) (keptLead, bool) {
	kept, ok := r.byKey[key]
	return kept, ok
}

func (r *DedupResult) insert(key string, lead *entity.Lead, at time.Time) {
	r.keys = append(r.keys, key)
	r.byKey[key] = keptLead{lead: lead, at: at}
}

func (r *DedupResult) replace(key string, lead *entity.Lead, at time.Time) {
	r.byKey[key] = keptLead{lead: lead, at: at}
}

// Get returns the surviving lead for key, if any.
func (r *DedupResult) Get(key string) (*entity.Lead, bool) {
	kept, ok := r.byKey[key]
	if !ok {
		return nil, false
	}
	return kept.lead, true
}

// Len returns the number of distinct keys.
func (r *DedupResult) Len() int {
	return len(r.keys)
}

// Leads returns the surviving leads in first-seen key order.
func (r *DedupResult) Leads() []*entity.Lead {
	leads := make([]*entity.Lead, 0, len(r.keys))
	for _, key := range r.keys {
		leads = append(leads, r.byKey[key].lead)
	}
	return leads
}

// LeadProcessor handles lead deduplication logic
type LeadProcessor struct {
	leadRepo repository.LeadRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewLeadProcessor creates a new lead processor
func NewLeadProcessor(leadRepo repository.LeadRepository, m *metrics.Metrics, logger logger.Logger) *LeadProcessor {
	return &LeadProcessor{
		leadRepo: leadRepo,
		metrics:  m,
		logger:   logger,
	}
}

// FilterBy keeps, for every distinct value of the selected field, the lead
// with the latest entryDate. Single forward pass over the input; a candidate
// only displaces the kept lead when its timestamp is strictly later, so on
// equal timestamps the earlier lead wins. Fails with a ParseError when any
// lead's entryDate does not parse, discarding the partial result.
func (p *LeadProcessor) FilterBy(leads []*entity.Lead, selector FieldSelector) (*DedupResult, error) {
	result := newDedupResult()

	for _, lead := range leads {
		entryTime, err := lead.EntryTime()
		if err != nil {
			return nil, err
		}

		key := selector(lead)
		existing, ok := result.get(key)
		if !ok {
			result.insert(key, lead, entryTime)
			p.logger.Debug("Keeping first lead seen for key", "key", key, "entryDate", lead.EntryDate)
			continue
		}

		if entryTime.After(existing.at) {
			p.logChanges(key, existing.lead, lead)
			result.replace(key, lead, entryTime)
		} else {
			p.logger.Info("No update for key: existing record is newer or the same", "key", key)
		}
	}

	return result, nil
}

// logChanges reports a replacement, listing every field that differs
// between the displaced lead and its replacement.
func (p *LeadProcessor) logChanges(key string, prev, next *entity.Lead) {
	p.logger.Info("Updating record for key",
		"key", key,
		"existing", prev.String(),
		"new", next.String(),
		"fieldChanges", strings.Join(diffLeads(prev, next), "; "),
	)
}

func diffLeads(prev, next *entity.Lead) []string {
	var changes []string
	diff := func(field, from, to string) {
		if from != to {
			changes = append(changes, fmt.Sprintf("%s: %q -> %q", field, from, to))
		}
	}

	diff("_id", prev.ID, next.ID)
	diff("email", prev.Email, next.Email)
	diff("firstName", prev.FirstName, next.FirstName)
	diff("lastName", prev.LastName, next.LastName)
	diff("address", prev.Address, next.Address)
	diff("entryDate", prev.EntryDate, next.EntryDate)

	return changes
}

// FilterByIDAndEmail filters leads first by unique _id, then filters the
// surviving leads by unique email. The email pass runs over the id-pass
// survivors, so an id-level winner can still be dropped when another id's
// winner shares its email with a later entryDate. Survivors come back in
// the order their key was first encountered.
func (p *LeadProcessor) FilterByIDAndEmail(leads []*entity.Lead) ([]*entity.Lead, error) {
	filteredByID, err := p.FilterBy(leads, SelectID)
	if err != nil {
		return nil, err
	}

	filteredByEmail, err := p.FilterBy(filteredByID.Leads(), SelectEmail)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Filtering complete", "uniqueLeads", filteredByEmail.Len())

	return filteredByEmail.Leads(), nil
}

// ProcessLeads reads the lead document at inputPath, deduplicates it by _id
// and email, and writes the survivors to outputPath. Any failure aborts the
// whole run; nothing is written on error.
func (p *LeadProcessor) ProcessLeads(ctx context.Context, inputPath, outputPath string) error {
	log := p.logger.With("runId", uuid.NewString(), "input", inputPath, "output", outputPath)
	log.Info("Starting lead processing")

	start := time.Now()

	leads, err := p.leadRepo.Load(ctx, inputPath)
	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("load").Inc()
		log.Error("Failed to load leads", "error", err)
		return err
	}

	filtered, err := p.FilterByIDAndEmail(leads)
	if err != nil {
		p.metrics.ErrorsCount.WithLabelValues("filter").Inc()
		log.Error("Failed to filter leads", "error", err)
		return err
	}

	if err := p.leadRepo.Store(ctx, outputPath, filtered); err != nil {
		p.metrics.ErrorsCount.WithLabelValues("store").Inc()
		log.Error("Failed to write filtered leads", "error", err)
		return err
	}

	p.metrics.LeadsProcessed.Add(float64(len(leads)))
	p.metrics.DuplicatesRemoved.Add(float64(len(leads) - len(filtered)))
	p.metrics.ProcessingTime.Observe(time.Since(start).Seconds())

	log.Info("Filtered leads have been written", "leadsIn", len(leads), "leadsOut", len(filtered))

	return nil
}
