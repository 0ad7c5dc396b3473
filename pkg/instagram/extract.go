package instagram

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	errs "instaosint/pkg/errors"
)

// sharedDataPattern captures the JSON object assigned to
// window._sharedData inside a script tag. Non-greedy up to the first
// closing brace-semicolon, matching how the page serializes the blob.
var sharedDataPattern = regexp.MustCompile(`(?s)window\._sharedData\s*=\s*(\{.+?\});`)

// ExtractSharedData locates the embedded shared-data blob in an HTML
// document and parses it. A missing marker and a malformed blob are the
// same parsing-failure outcome to the caller; scraping embedded
// application state gives no way to tell them apart reliably.
func ExtractSharedData(body io.Reader) (*SharedData, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeParsing, 0, "failed to parse HTML document: %v", err)
	}

	var raw string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, "window._sharedData") {
			return true
		}
		if m := sharedDataPattern.FindStringSubmatch(text); m != nil {
			raw = m[1]
			return false
		}
		return true
	})

	if raw == "" {
		return nil, errs.New(errs.ErrorTypeParsing, 0, "shared data marker not found in page")
	}

	var blob SharedData
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return nil, errs.New(errs.ErrorTypeParsing, 0, "failed to parse shared data blob: %v", err)
	}

	return &blob, nil
}
