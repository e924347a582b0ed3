package scrape

import (
	"context"
	"log"
	"time"

	"jobwatch/internal/config"
	"jobwatch/internal/domain"
	"jobwatch/internal/filter"
	"jobwatch/internal/store"
)

// Source is the scraped site seen through three fetch operations. The runner
// and the filters never touch markup; selectors stay behind this interface.
type Source interface {
	ResolveCompanyID(ctx context.Context, name string) (string, error)
	FetchListingPage(ctx context.Context, companyID string, offset int) ([]domain.JobSummary, error)
	FetchDetail(ctx context.Context, link string) (domain.JobDetail, error)
	Offsets() []int
}

type Notifier interface {
	NotifyJob(j domain.JobSummary)
}

type Runner struct {
	cfg   config.Config
	src   Source
	st    *store.Store
	notif Notifier
	now   func() time.Time
}

func NewRunner(cfg config.Config, src Source, st *store.Store, notif Notifier) *Runner {
	return &Runner{cfg: cfg, src: src, st: st, notif: notif, now: time.Now}
}

// RunOnce walks the configured companies sequentially and persists the
// seen-jobs map at the end. Failures are per-company at worst; the pass
// always completes.
func (r *Runner) RunOnce(ctx context.Context) {
	for _, company := range r.cfg.Companies {
		r.runCompany(ctx, company)
	}
	if err := r.st.SaveSeen(); err != nil {
		log.Printf("[run] saving seen jobs: %v", err)
	}
}

func (r *Runner) runCompany(ctx context.Context, company string) {
	id, ok := r.st.CompanyID(company)
	if !ok {
		resolved, err := r.src.ResolveCompanyID(ctx, company)
		if err != nil {
			log.Printf("[run] skipping %s: %v", company, err)
			return
		}
		if err := r.st.PutCompanyID(company, resolved); err != nil {
			log.Printf("[run] persisting id for %s: %v", company, err)
		}
		id = resolved
	}

	var matches, rejects []domain.Decision

pages:
	for _, offset := range r.src.Offsets() {
		sums, err := r.src.FetchListingPage(ctx, id, offset)
		if err != nil {
			// don't fail the whole run because one page is down
			log.Printf("[run] %s: %v", company, err)
			break
		}
		if len(sums) == 0 {
			break // listing exhausted
		}

		for _, j := range sums {
			dec, seen := r.processCard(ctx, company, j)
			if seen {
				continue
			}
			if dec.Accepted {
				matches = append(matches, dec)
				continue
			}
			rejects = append(rejects, dec)
			if dec.Reason == domain.RejectStale {
				// cards come newest-first; the rest of the listing is older
				break pages
			}
		}
	}

	log.Printf("[run] %s: %d matched, %d rejected", company, len(matches), len(rejects))
	for _, d := range matches {
		log.Printf("[run]   match: %s (%s) %s", d.Job.Title, d.Job.PostedText, d.Job.Link)
	}
	for _, d := range rejects {
		log.Printf("[run]   reject (%s): %s at %s — %s", d.Reason, d.Job.Title, d.Job.CompanyName, d.Job.Link)
	}
}

// processCard runs one card through recency, dedup, detail fetch and the
// classifier. The seen return means the link was already notified on an
// earlier run; it produces no decision and no detail fetch.
func (r *Runner) processCard(ctx context.Context, company string, j domain.JobSummary) (dec domain.Decision, seen bool) {
	if !filter.WithinWindow(j.PostedText, r.cfg.Scrape.RecencyMaxHours) {
		return domain.Reject(j, domain.RejectStale, "outside recency window"), false
	}

	if r.st.HasSeen(company, j.Link) {
		return domain.Decision{}, true
	}

	detail, err := r.src.FetchDetail(ctx, j.Link)
	if err != nil {
		log.Printf("[run] detail fetch %s: %v", j.Link, err)
		return domain.Reject(j, domain.RejectFilter, "detail fetch failed"), false
	}

	dec = filter.Classify(r.cfg, j, detail)
	if dec.Accepted {
		r.st.MarkSeen(company, j.Link, r.now())
		r.notif.NotifyJob(j)
	}
	return dec, false
}
