package crawl

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/contactfind/contactfind"
)

// Aggregator merges candidate contact values into per-company records with a
// first-valid-wins policy, and flushes completed records to the output sink
// at most once. All mutation goes through a per-company lock so unrelated
// companies never serialize on each other.
type Aggregator struct {
	mu     sync.Mutex
	states map[string]*companyState

	sink   contactfind.ResultSink
	logger *slog.Logger
	now    func() time.Time
}

// companyState guards one company's record. The state lock is held for field
// mutation and flushing, never across I/O other than the sink append.
type companyState struct {
	mu     sync.Mutex
	record *contactfind.ContactRecord
}

// NewAggregator creates an Aggregator writing flushed records to sink.
// A nil sink is valid: records are still aggregated, just never emitted.
func NewAggregator(sink contactfind.ResultSink, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		states: make(map[string]*companyState),
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// state returns the company's state, creating the record lazily on first use.
func (a *Aggregator) state(companyName string) *companyState {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, ok := a.states[companyName]
	if !ok {
		st = &companyState{record: &contactfind.ContactRecord{CompanyName: companyName}}
		a.states[companyName] = st
	}
	return st
}

// RecordCandidate offers a value for one field of a company's record. The
// value is set only if it passes validation and the field is still empty;
// otherwise the call is a no-op. Returns true if the record changed.
func (a *Aggregator) RecordCandidate(companyName string, field contactfind.FieldKind, value, sourceLabel string) bool {
	if value == "" {
		return false
	}

	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()

	switch field {
	case contactfind.FieldEmail:
		if st.record.Email != "" || !contactfind.ValidEmail(value) {
			return false
		}
		st.record.Email = value
		st.record.EmailSource = sourceLabel
	case contactfind.FieldPhone:
		cleaned := contactfind.CleanPhone(value)
		if st.record.Phone != "" || !contactfind.ValidPhone(cleaned) {
			return false
		}
		st.record.Phone = cleaned
		st.record.PhoneSource = sourceLabel
	default:
		return false
	}

	a.logger.Debug("candidate accepted",
		"company", companyName,
		"field", string(field),
		"source", sourceLabel)
	return true
}

// SetWebsite records the company's website URL if none is known yet.
func (a *Aggregator) SetWebsite(companyName, website string) {
	if website == "" {
		return
	}
	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.record.Website == "" {
		st.record.Website = website
	}
}

// Website returns the currently known website for the company, or "".
func (a *Aggregator) Website(companyName string) string {
	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.record.Website
}

// IsComplete reports whether both email and phone are populated for the
// company. Strategies poll this to stop scheduling further fetches.
func (a *Aggregator) IsComplete(companyName string) bool {
	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.record.Complete()
}

// Flush appends the company's record to the sink if it holds at least one
// non-empty field and has not been emitted yet. Safe to call repeatedly;
// at most one row is ever written per company.
func (a *Aggregator) Flush(companyName string) error {
	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()

	r := st.record
	if r.Saved || (r.Email == "" && r.Phone == "" && r.Website == "") {
		return nil
	}
	r.ResolvedAt = a.now()
	if a.sink != nil {
		if err := a.sink.Write(r); err != nil {
			return err
		}
	}
	r.Saved = true
	return nil
}

// Record returns a copy of the company's current record.
func (a *Aggregator) Record(companyName string) contactfind.ContactRecord {
	st := a.state(companyName)
	st.mu.Lock()
	defer st.mu.Unlock()
	return *st.record
}

// Records returns copies of all records, sorted by company name.
func (a *Aggregator) Records() []*contactfind.ContactRecord {
	a.mu.Lock()
	states := make(map[string]*companyState, len(a.states))
	for name, st := range a.states {
		states[name] = st
	}
	a.mu.Unlock()

	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]*contactfind.ContactRecord, 0, len(names))
	for _, name := range names {
		st := states[name]
		st.mu.Lock()
		r := *st.record
		st.mu.Unlock()
		records = append(records, &r)
	}
	return records
}
