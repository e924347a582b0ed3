package linkedin

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobwatch/internal/domain"
)

// FetchDetail retrieves a job page and extracts the two text blocks the
// classifier reads: the lowercased description and the "qualification text",
// the list items that mention years of experience. Scoping the experience
// search to those items keeps unrelated numbers elsewhere on the page from
// matching.
func (s *Scraper) FetchDetail(ctx context.Context, link string) (domain.JobDetail, error) {
	var d domain.JobDetail

	req, err := s.newRequest(ctx, link)
	if err != nil {
		return d, err
	}

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, link); err != nil {
			return d, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return d, fmt.Errorf("detail get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return d, fmt.Errorf("detail status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return d, fmt.Errorf("detail parse: %w", err)
	}

	if sel := doc.Find(descSel).First(); sel.Length() > 0 {
		d.Description = strings.ToLower(sel.Text())
	}

	var quals []string
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := li.Text()
		if strings.Contains(strings.ToLower(text), "year") {
			quals = append(quals, strings.ToLower(text))
		}
	})
	d.QualText = strings.Join(quals, "\n")

	return d, nil
}
