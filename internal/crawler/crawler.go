package crawler

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"seoprofil-backend/pkg/config"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ContactInfo holds the first phone/email/address found on a page.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Result is the outcome of crawling a single page. A failed fetch is
// reported through Success/Error, never as an error return.
type Result struct {
	URL             string            `json:"url"`
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	Content         string            `json:"content"`
	ContactInfo     ContactInfo       `json:"contact_info"`
	OpeningHours    map[string]string `json:"opening_hours"`
	Success         bool              `json:"success"`
	Error           string            `json:"error,omitempty"`
}

// Service fetches and analyzes websites.
type Service struct {
	client        *http.Client
	contentMaxLen int
	logger        *zap.Logger
}

func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	transport := &http.Transport{}
	if cfg.CrawlInsecureTLS {
		// Opt-in only: skipping verification silently downgrades transport
		// security and must never be the default.
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Service{
		client: &http.Client{
			Timeout:   cfg.CrawlTimeout,
			Transport: transport,
		},
		contentMaxLen: cfg.CrawlContentMaxLen,
		logger:        logger,
	}
}

// NormalizeURL prefixes https:// when the input has no scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// Crawl fetches the page and runs content and fact extraction over it.
func (s *Service) Crawl(ctx context.Context, rawURL string) *Result {
	url := NormalizeURL(rawURL)
	result := &Result{URL: url, OpeningHours: map[string]string{}}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		result.Error = fmt.Sprintf("invalid URL: %v", err)
		return result
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("failed to fetch website", zap.String("url", url), zap.Error(err))
		result.Error = fmt.Sprintf("Fehler beim Abrufen der Website: %v", err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("website returned bad status", zap.String("url", url), zap.Int("status", resp.StatusCode))
		result.Error = fmt.Sprintf("Website antwortete mit Status %d", resp.StatusCode)
		return result
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("Fehler beim Parsen der Website: %v", err)
		return result
	}

	// Strip script/style only. Footer and nav are kept on purpose: the
	// opening-hours extractor relies on footer text.
	doc.Find("script, style").Each(func(i int, sel *goquery.Selection) {
		sel.Remove()
	})

	result.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		result.MetaDescription = strings.TrimSpace(desc)
	}

	result.Content = ExtractMainContent(doc, s.contentMaxLen)

	// Facts are extracted from the full page text, not the trimmed content.
	fullText := doc.Find("body").Text()
	result.ContactInfo = ExtractContactInfo(fullText)
	result.OpeningHours = ExtractOpeningHours(fullText, footerText(doc))

	result.Success = true
	return result
}

// footerText collects text from footer and contact-class elements, the
// usual home of opening hours on German business sites.
func footerText(doc *goquery.Document) string {
	var parts []string
	doc.Find("footer, .footer, #footer, .contact, #contact, .kontakt, #kontakt").Each(func(i int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, "\n")
}
