package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/contactfind/contactfind"
	"golang.org/x/sync/errgroup"
)

// Resolver coordinates contact resolution for a batch of company names:
// known-contact lookup, places pre-fill, the source strategies in priority
// order, and final persistence. Companies resolve concurrently; per-company
// failures never abort the batch.
type Resolver struct {
	Fetcher   contactfind.Fetcher
	Parser    contactfind.PageParser
	Extractor contactfind.TextExtractor
	Converter contactfind.Converter
	AI        contactfind.ContactExtractor
	Places    contactfind.PlacesService
	Contacts  contactfind.ContactService
	Sink      contactfind.ResultSink
	Limiter   contactfind.DomainLimiter
	Sitemaps  contactfind.SitemapService
	Logger    *slog.Logger

	// Concurrency bounds how many companies resolve at once. Zero means 5.
	Concurrency int

	// MaxPages bounds fetches per strategy run per company.
	MaxPages int

	// RetryDelays overrides the fetch retry backoff, mainly for tests.
	RetryDelays []time.Duration

	// ExtractedBy attributes persisted records, e.g. a user identifier.
	ExtractedBy string
}

// Resolve resolves contact details for the given company names and returns
// one record per distinct name, in input order. The returned records are
// best-effort: fields that could not be resolved are empty strings. A
// persistence failure is logged as a batch-level warning and the in-memory
// results are still returned.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]*contactfind.ContactRecord, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	agg := NewAggregator(r.Sink, logger)
	env := &Env{
		Fetcher:     r.Fetcher,
		Parser:      r.Parser,
		Extractor:   r.Extractor,
		Converter:   r.Converter,
		AI:          r.AI,
		Aggregator:  agg,
		Limiter:     r.Limiter,
		Sitemaps:    r.Sitemaps,
		Logger:      logger,
		MaxPages:    r.MaxPages,
		RetryDelays: r.RetryDelays,
	}

	var distinct []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		distinct = append(distinct, name)
	}

	known := make(map[string]*contactfind.ContactRecord)
	if r.Contacts != nil {
		m, err := r.Contacts.FindContactsByName(ctx, distinct)
		if err != nil {
			logger.Warn("known-contact lookup failed", "error", err)
		} else {
			known = m
		}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, name := range distinct {
		name := name
		g.Go(func() error {
			r.resolveCompany(gctx, env, name, known[name])
			return nil
		})
	}
	// Workers never return errors; resolution failures stay per-company.
	_ = g.Wait()

	records := make([]*contactfind.ContactRecord, 0, len(distinct))
	for _, name := range distinct {
		rec := agg.Record(name)
		records = append(records, &rec)
	}

	if r.Contacts != nil {
		if err := r.Contacts.UpsertContacts(ctx, records, r.ExtractedBy); err != nil {
			logger.Warn("persisting contact records failed", "error", err)
		}
	}

	return records, ctx.Err()
}

// resolveCompany runs the full resolution pipeline for one company. The
// record is flushed unconditionally at the end, so any evidence found is
// emitted exactly once even when every strategy came up short.
func (r *Resolver) resolveCompany(ctx context.Context, env *Env, name string, known *contactfind.ContactRecord) {
	logger := env.Logger
	agg := env.Aggregator

	defer func() {
		if err := agg.Flush(name); err != nil {
			logger.Warn("flush failed", "company", name, "error", err)
		}
	}()

	query, err := contactfind.NewCompanyQuery(name)
	if err != nil {
		logger.Warn("skipping company", "name", name, "error", err)
		return
	}

	if known != nil {
		agg.SetWebsite(name, known.Website)
		agg.RecordCandidate(name, contactfind.FieldEmail, known.Email, "known")
		agg.RecordCandidate(name, contactfind.FieldPhone, known.Phone, "known")
		if agg.IsComplete(name) {
			logger.Debug("skipping known company", "company", name)
			return
		}
	}

	if r.Places != nil {
		info, err := r.Places.LookupPlace(ctx, name)
		if err != nil {
			logger.Debug("places lookup failed", "company", name, "error", err)
		} else if info != nil {
			agg.SetWebsite(name, info.Website)
			// Directory phones arrive in arbitrary formats, often the
			// national form without a "+"; repair before validation.
			agg.RecordCandidate(name, contactfind.FieldPhone, contactfind.RepairPhone(info.Phone), "places")
		}
	}

	strategies := []Strategy{
		&LinkedInStrategy{Env: env},
		&WebsiteStrategy{Env: env},
		&IndiaMartStrategy{Env: env},
		&FacebookStrategy{Env: env},
	}

	for _, s := range strategies {
		if agg.IsComplete(name) {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if err := s.Resolve(ctx, query); err != nil {
			switch contactfind.ErrorCode(err) {
			case contactfind.EFORBIDDEN:
				logger.Info("strategy blocked by login wall", "strategy", s.Name(), "company", name)
			default:
				logger.Debug("strategy exhausted", "strategy", s.Name(), "company", name, "error", err)
			}
		}
	}
}
