package linkedin

import (
	"context"
	"net/http"
	"time"

	"jobwatch/internal/scrape/util"
)

const defaultBaseURL = "https://www.linkedin.com"

// Site markup is a compatibility dependency: these selectors track the public
// listing pages and live only in this package.
const (
	cardSel     = ".base-card"
	titleSel    = ".base-search-card__title"
	subtitleSel = ".base-search-card__subtitle"
	linkSel     = "a[href]"
	postedSel   = "time"
	descSel     = "div[class*='description__text']"
)

type Config struct {
	BaseURL       string // override for tests; defaults to the live site
	Region        string
	WindowSeconds int // server-side "posted within" filter (f_TPR)
	MaxPages      int
	PageSize      int
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 10 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "linkedin" }

// Offsets returns the page offsets one company scan walks, e.g. 0,25,...,225.
func (s *Scraper) Offsets() []int {
	out := make([]int, 0, s.cfg.MaxPages)
	for i := 0; i < s.cfg.MaxPages; i++ {
		out = append(out, i*s.cfg.PageSize)
	}
	return out
}

func (s *Scraper) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	return req, nil
}
