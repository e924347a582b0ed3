package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"jobwatch/internal/domain"
	"jobwatch/internal/scrape/util"
)

// PageError marks a listing-page fetch or parse failure. The orchestrator
// abandons the company's remaining pages on it and moves on.
type PageError struct {
	Offset int
	Err    error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("listing page offset=%d: %v", e.Offset, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// FetchListingPage pulls one search results page for a company and returns
// the job summaries on it. An empty slice with nil error means the listing is
// exhausted. Cards missing a required field are skipped, not fatal; a half
// rendered card should not sink the page.
func (s *Scraper) FetchListingPage(ctx context.Context, companyID string, offset int) ([]domain.JobSummary, error) {
	pageURL := fmt.Sprintf("%s/jobs/search/?f_C=%s&f_TPR=r%d&location=%s&start=%d",
		s.cfg.BaseURL, url.QueryEscape(companyID), s.cfg.WindowSeconds,
		url.QueryEscape(s.cfg.Region), offset)

	req, err := s.newRequest(ctx, pageURL)
	if err != nil {
		return nil, &PageError{Offset: offset, Err: err}
	}

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, pageURL); err != nil {
			return nil, &PageError{Offset: offset, Err: err}
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, &PageError{Offset: offset, Err: fmt.Errorf("search get: %w", err)}
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, &PageError{Offset: offset, Err: fmt.Errorf("search status %d", res.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &PageError{Offset: offset, Err: fmt.Errorf("search parse: %w", err)}
	}

	var out []domain.JobSummary
	doc.Find(cardSel).Each(func(_ int, card *goquery.Selection) {
		sum, ok := summaryFromCard(card)
		if !ok {
			log.Printf("[linkedin] skipping malformed card offset=%d", offset)
			return
		}
		out = append(out, sum)
	})
	return out, nil
}

func summaryFromCard(card *goquery.Selection) (domain.JobSummary, bool) {
	title := util.CleanText(card.Find(titleSel).First().Text())
	company := util.CleanText(card.Find(subtitleSel).First().Text())
	posted := util.CleanText(card.Find(postedSel).First().Text())

	href, _ := card.Find(linkSel).First().Attr("href")
	link := util.CanonicalLink(href)

	if title == "" || company == "" || link == "" || posted == "" {
		return domain.JobSummary{}, false
	}
	return domain.JobSummary{
		Title:       title,
		CompanyName: company,
		Link:        link,
		PostedText:  posted,
	}, true
}
