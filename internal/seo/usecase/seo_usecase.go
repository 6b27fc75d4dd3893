package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	authdomain "seoprofil-backend/internal/auth/domain"
	"seoprofil-backend/internal/crawler"
	seodomain "seoprofil-backend/internal/seo/domain"
	"seoprofil-backend/internal/seo/dto"
	"seoprofil-backend/internal/seo/repository"
	"seoprofil-backend/pkg/ai"
	"seoprofil-backend/pkg/fuzzy"
	"seoprofil-backend/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrResultNotFound = errors.New("result not found")
	ErrAccessDenied   = errors.New("access denied")
	ErrCrawlFailed    = errors.New("crawl failed")
)

const (
	autocompleteLimit = 10
	// Maximum edit distance per domain label for a fuzzy autocomplete hit.
	autocompleteFuzz = 2
)

// Crawler abstracts the website crawler so analyses can be tested without
// fetching real sites.
type Crawler interface {
	Crawl(ctx context.Context, rawURL string) *crawler.Result
}

type seoUsecase struct {
	repo         repository.SEOResultRepository
	crawler      Crawler
	copyService  ai.CopyService
	metrics      *metrics.Metrics
	logger       *zap.Logger
	includeCrawl bool
}

func NewSEOUsecase(
	repo repository.SEOResultRepository,
	crawlerSvc Crawler,
	copyService ai.CopyService,
	m *metrics.Metrics,
	logger *zap.Logger,
	includeCrawl bool,
) SEOUsecase {
	return &seoUsecase{
		repo:         repo,
		crawler:      crawlerSvc,
		copyService:  copyService,
		metrics:      m,
		logger:       logger,
		includeCrawl: includeCrawl,
	}
}

// NormalizeDomain reduces any domain or URL input to the lowercased host,
// the canonical key results are stored under.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return strings.ToLower(parsed.Host)
}

// Analyze runs the full pipeline for a domain: crawl, prompt, model call,
// parse, persist. A domain that was already analyzed returns the stored
// record with existed=true and triggers no new fetch or model call.
func (u *seoUsecase) Analyze(ctx context.Context, user *authdomain.User, domain string) (*seodomain.SEOResult, bool, error) {
	normalized := NormalizeDomain(domain)

	existing, err := u.repo.FindByDomain(normalized)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		u.metrics.IncAnalyses("duplicate")
		return existing, true, nil
	}

	// An unreachable site aborts the analysis. Persisting a crawl-less
	// record here would let the duplicate check cache a typo forever.
	var crawlData *crawler.Result
	if u.includeCrawl {
		crawlData = u.crawler.Crawl(ctx, normalized)
		if !crawlData.Success {
			u.logger.Warn("crawl failed",
				zap.String("domain", normalized), zap.String("error", crawlData.Error))
			u.metrics.IncCrawlErrors("fetch")
			u.metrics.IncAnalyses("error")
			return nil, false, fmt.Errorf("%w: %s", ErrCrawlFailed, crawlData.Error)
		}
	}

	prompt := BuildPrompt(normalized, crawlData)

	rawResponse, err := u.copyService.GenerateCopy(ctx, systemPrompt, prompt)
	if err != nil {
		u.metrics.IncAnalyses("error")
		return nil, false, fmt.Errorf("analysis failed: %w", err)
	}

	parsed := ParseResponse(rawResponse)

	result := &seodomain.SEOResult{
		Domain:           normalized,
		ShortDescription: parsed.ShortDescription,
		LongDescription:  parsed.LongDescription,
		Keywords:         parsed.Keywords,
		OpeningHours:     parsed.OpeningHours,
		CompanyInfo:      parsed.CompanyInfo,
		RawResponse:      rawResponse,
		UserID:           user.ID,
	}

	if err := u.repo.Create(result); err != nil {
		// Another request finished analyzing the same domain first. The
		// unique index catches the race the pre-check cannot.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := u.repo.FindByDomain(normalized)
			if findErr == nil && winner != nil {
				u.metrics.IncAnalyses("duplicate")
				return winner, true, nil
			}
		}
		u.metrics.IncAnalyses("error")
		return nil, false, err
	}

	u.metrics.IncAnalyses("success")
	u.logger.Info("domain analyzed", zap.String("domain", normalized), zap.String("user_id", user.ID))
	return result, false, nil
}

func (u *seoUsecase) ListResults(user *authdomain.User, search string, page, perPage int) (*dto.ResultListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	filter := repository.ListFilter{
		Search:  strings.TrimSpace(search),
		Page:    page,
		PerPage: perPage,
	}
	if !user.IsAdmin() {
		filter.UserID = user.ID
	}

	results, total, err := u.repo.List(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SEOResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, dto.ToSEOResultResponse(r))
	}

	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}

	return &dto.ResultListResponse{
		Results:     responses,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     perPage,
	}, nil
}

func (u *seoUsecase) GetResult(user *authdomain.User, id string) (*seodomain.SEOResult, error) {
	result, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	if !user.IsAdmin() && result.UserID != user.ID {
		return nil, ErrAccessDenied
	}
	return result, nil
}

func (u *seoUsecase) DeleteResult(id string) error {
	result, err := u.repo.FindByID(id)
	if err != nil {
		return err
	}
	if result == nil {
		return ErrResultNotFound
	}
	return u.repo.Delete(id)
}

// AutocompleteDomains suggests analyzed domains matching the query, best
// matches first. Non-admins only see their own domains.
func (u *seoUsecase) AutocompleteDomains(user *authdomain.User, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	userID := ""
	if !user.IsAdmin() {
		userID = user.ID
	}

	domains, err := u.repo.DistinctDomains(userID, 200)
	if err != nil {
		return nil, err
	}

	type scored struct {
		domain string
		score  float64
	}
	var matches []scored
	for _, d := range domains {
		if !fuzzy.MatchDomain(query, d, autocompleteFuzz) {
			continue
		}
		matches = append(matches, scored{domain: d, score: fuzzy.DomainScore(query, d)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	suggestions := make([]string, 0, autocompleteLimit)
	for _, m := range matches {
		if len(suggestions) == autocompleteLimit {
			break
		}
		suggestions = append(suggestions, m.domain)
	}
	return suggestions, nil
}
