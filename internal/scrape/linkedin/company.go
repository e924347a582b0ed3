package linkedin

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrUnresolved means the profile page had no organization marker. The caller
// skips the company for this run; it is not a fatal condition.
var ErrUnresolved = errors.New("company id not resolved")

var orgURNRe = regexp.MustCompile(`data-semaphore-content-urn="urn:li:organization:(\d+)"`)

// profileScanLines bounds how much of the profile markup we scan for the
// organization marker; it sits near the top of the document.
const profileScanLines = 500

// ResolveCompanyID fetches a company profile page and pulls the site-internal
// numeric identifier out of the embedded organization URN.
func (s *Scraper) ResolveCompanyID(ctx context.Context, name string) (string, error) {
	profileURL := s.cfg.BaseURL + "/company/" + url.PathEscape(strings.ToLower(name))

	req, err := s.newRequest(ctx, profileURL)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, profileURL); err != nil {
			return "", err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("profile get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("profile status %d", res.StatusCode)
	}

	sc := bufio.NewScanner(res.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 0; i < profileScanLines && sc.Scan(); i++ {
		if m := orgURNRe.FindStringSubmatch(sc.Text()); m != nil {
			return m[1], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("profile read: %w", err)
	}
	return "", ErrUnresolved
}
