package usecase

import (
	"context"
	"testing"

	authdomain "seoprofil-backend/internal/auth/domain"
	"seoprofil-backend/internal/crawler"
	seodomain "seoprofil-backend/internal/seo/domain"
	"seoprofil-backend/internal/seo/repository"
	"seoprofil-backend/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubRepo struct {
	byDomain  map[string]*seodomain.SEOResult
	created   []*seodomain.SEOResult
	createErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{byDomain: map[string]*seodomain.SEOResult{}}
}

func (s *stubRepo) Create(result *seodomain.SEOResult) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, result)
	s.byDomain[result.Domain] = result
	return nil
}

func (s *stubRepo) FindByDomain(domain string) (*seodomain.SEOResult, error) {
	return s.byDomain[domain], nil
}

func (s *stubRepo) FindByID(id string) (*seodomain.SEOResult, error) {
	for _, r := range s.byDomain {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) List(filter repository.ListFilter) ([]*seodomain.SEOResult, int64, error) {
	var out []*seodomain.SEOResult
	for _, r := range s.byDomain {
		if filter.UserID == "" || r.UserID == filter.UserID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (s *stubRepo) Delete(id string) error {
	for d, r := range s.byDomain {
		if r.ID == id {
			delete(s.byDomain, d)
		}
	}
	return nil
}

func (s *stubRepo) DistinctDomains(userID string, limit int) ([]string, error) {
	var out []string
	for d, r := range s.byDomain {
		if userID == "" || r.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubCrawler struct {
	result *crawler.Result
	calls  int
}

func (s *stubCrawler) Crawl(ctx context.Context, rawURL string) *crawler.Result {
	s.calls++
	return s.result
}

type stubCopyService struct {
	response string
	err      error
	calls    int
}

func (s *stubCopyService) GenerateCopy(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

func newTestUsecase(repo *stubRepo, crawlerSvc *stubCrawler, copySvc *stubCopyService) SEOUsecase {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewSEOUsecase(repo, crawlerSvc, copySvc, m, zap.NewNop(), true)
}

func testUser() *authdomain.User {
	return &authdomain.User{ID: "u1", Username: "tester", Role: authdomain.RoleUser}
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "example.de", NormalizeDomain("Example.DE"))
	assert.Equal(t, "example.de", NormalizeDomain("https://Example.de/kontakt"))
	assert.Equal(t, "www.example.de", NormalizeDomain("http://WWW.Example.de"))
	assert.Equal(t, "example.de", NormalizeDomain("  example.de  "))
}

func TestAnalyzeCreatesResult(t *testing.T) {
	repo := newStubRepo()
	crawlerSvc := &stubCrawler{result: &crawler.Result{
		Title:   "Muster GmbH",
		Content: "Willkommen",
		Success: true,
	}}
	copySvc := &stubCopyService{response: plainCompletion}
	uc := newTestUsecase(repo, crawlerSvc, copySvc)

	result, existed, err := uc.Analyze(context.Background(), testUser(), "https://Example.de/start")

	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, "example.de", result.Domain)
	assert.Equal(t, "Ihr Friseur in Berlin Mitte mit modernen Schnitten.", result.ShortDescription)
	assert.Equal(t, plainCompletion, result.RawResponse)
	assert.Equal(t, "u1", result.UserID)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, 1, crawlerSvc.calls)
	assert.Equal(t, 1, copySvc.calls)
}

func TestAnalyzeExistingDomainSkipsCrawlAndModel(t *testing.T) {
	repo := newStubRepo()
	repo.byDomain["example.de"] = &seodomain.SEOResult{ID: "r1", Domain: "example.de", UserID: "u1"}
	crawlerSvc := &stubCrawler{}
	copySvc := &stubCopyService{}
	uc := newTestUsecase(repo, crawlerSvc, copySvc)

	result, existed, err := uc.Analyze(context.Background(), testUser(), "example.de")

	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "r1", result.ID)
	assert.Zero(t, crawlerSvc.calls)
	assert.Zero(t, copySvc.calls)
}

func TestAnalyzeCrawlFailureAbortsWithoutPersisting(t *testing.T) {
	repo := newStubRepo()
	crawlerSvc := &stubCrawler{result: &crawler.Result{Success: false, Error: "Fehler beim Abrufen der Website: Timeout"}}
	copySvc := &stubCopyService{response: plainCompletion}
	uc := newTestUsecase(repo, crawlerSvc, copySvc)

	_, _, err := uc.Analyze(context.Background(), testUser(), "tippfehler-domain.de")

	require.ErrorIs(t, err, ErrCrawlFailed)
	assert.Contains(t, err.Error(), "Fehler beim Abrufen der Website")
	assert.Zero(t, copySvc.calls)
	assert.Empty(t, repo.created)

	// Nothing was cached, so the analysis succeeds once the site is back.
	crawlerSvc.result = &crawler.Result{Success: true}
	result, existed, err := uc.Analyze(context.Background(), testUser(), "tippfehler-domain.de")
	require.NoError(t, err)
	assert.False(t, existed)
	assert.Equal(t, "tippfehler-domain.de", result.Domain)
}

func TestAnalyzeModelErrorAborts(t *testing.T) {
	repo := newStubRepo()
	crawlerSvc := &stubCrawler{result: &crawler.Result{Success: true}}
	copySvc := &stubCopyService{err: assert.AnError}
	uc := newTestUsecase(repo, crawlerSvc, copySvc)

	_, _, err := uc.Analyze(context.Background(), testUser(), "example.de")

	require.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestAnalyzeDuplicateKeyRaceReturnsWinner(t *testing.T) {
	// The winning row lands in storage between the pre-check and the insert.
	winner := &seodomain.SEOResult{ID: "winner", Domain: "example.de", UserID: "u2"}
	repo := &racingRepo{stubRepo: newStubRepo(), winner: winner}
	crawlerSvc := &stubCrawler{result: &crawler.Result{Success: true}}
	copySvc := &stubCopyService{response: plainCompletion}
	uc := newTestUsecase2(repo, crawlerSvc, copySvc)

	result, existed, err := uc.Analyze(context.Background(), testUser(), "example.de")

	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "winner", result.ID)
}

// racingRepo reports no result on the pre-check, fails the insert with a
// duplicate-key error, then serves the winning row on the re-read.
type racingRepo struct {
	*stubRepo
	winner    *seodomain.SEOResult
	findCalls int
}

func (r *racingRepo) FindByDomain(domain string) (*seodomain.SEOResult, error) {
	r.findCalls++
	if r.findCalls == 1 {
		return nil, nil
	}
	return r.winner, nil
}

func (r *racingRepo) Create(result *seodomain.SEOResult) error {
	return gorm.ErrDuplicatedKey
}

func newTestUsecase2(repo repository.SEOResultRepository, crawlerSvc *stubCrawler, copySvc *stubCopyService) SEOUsecase {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewSEOUsecase(repo, crawlerSvc, copySvc, m, zap.NewNop(), true)
}

func TestGetResultEnforcesOwnership(t *testing.T) {
	repo := newStubRepo()
	repo.byDomain["example.de"] = &seodomain.SEOResult{ID: "r1", Domain: "example.de", UserID: "owner"}
	uc := newTestUsecase(repo, &stubCrawler{}, &stubCopyService{})

	_, err := uc.GetResult(testUser(), "r1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	admin := &authdomain.User{ID: "a1", Role: authdomain.RoleAdmin}
	result, err := uc.GetResult(admin, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)

	owner := &authdomain.User{ID: "owner", Role: authdomain.RoleUser}
	result, err = uc.GetResult(owner, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", result.ID)
}

func TestGetResultNotFound(t *testing.T) {
	uc := newTestUsecase(newStubRepo(), &stubCrawler{}, &stubCopyService{})

	_, err := uc.GetResult(testUser(), "missing")
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestAutocompleteDomainsRanksPrefixFirst(t *testing.T) {
	repo := newStubRepo()
	for _, d := range []string{"example.de", "mein-example.de", "other.com"} {
		repo.byDomain[d] = &seodomain.SEOResult{ID: d, Domain: d, UserID: "u1"}
	}
	uc := newTestUsecase(repo, &stubCrawler{}, &stubCopyService{})

	suggestions, err := uc.AutocompleteDomains(testUser(), "exam")

	require.NoError(t, err)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "example.de", suggestions[0])
	assert.Contains(t, suggestions, "mein-example.de")
	assert.NotContains(t, suggestions, "other.com")
}

func TestAutocompleteToleratesTypos(t *testing.T) {
	repo := newStubRepo()
	for _, d := range []string{"example.de", "other.com"} {
		repo.byDomain[d] = &seodomain.SEOResult{ID: d, Domain: d, UserID: "u1"}
	}
	uc := newTestUsecase(repo, &stubCrawler{}, &stubCopyService{})

	// Transposed letters still land within the per-label edit distance.
	suggestions, err := uc.AutocompleteDomains(testUser(), "exmaple")

	require.NoError(t, err)
	assert.Equal(t, []string{"example.de"}, suggestions)
}

func TestAutocompleteEmptyQueryReturnsNothing(t *testing.T) {
	uc := newTestUsecase(newStubRepo(), &stubCrawler{}, &stubCopyService{})

	suggestions, err := uc.AutocompleteDomains(testUser(), "   ")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
