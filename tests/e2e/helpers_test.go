//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/catalogstore"
	sessionrepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/session"
	staterepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/state"
	tagrepo "github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/tag"
	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/leettrack-dev/leettrack-backend/internal/auth"
	"github.com/leettrack-dev/leettrack-backend/internal/catalog"
	"github.com/leettrack-dev/leettrack-backend/internal/config"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
	authsvc "github.com/leettrack-dev/leettrack-backend/internal/service/auth"
	tagsvc "github.com/leettrack-dev/leettrack-backend/internal/service/tag"
	"github.com/leettrack-dev/leettrack-backend/internal/service/tracker"
	"github.com/leettrack-dev/leettrack-backend/internal/transport/middleware"
	"github.com/leettrack-dev/leettrack-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	tokens  *authpkg.TokenManager
	catalog *testCatalog
}

// testCatalog records what newTestServer seeded so tests can refer to it.
type testCatalog struct {
	Questions []domain.Question
	Alpha     domain.List
	Beta      domain.List
	InterID   string
}

// newTestServer seeds a small catalog and starts the full HTTP stack
// against the shared test database. The catalog is loaded once at server
// construction, exactly like production startup.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	questions := testhelper.SeedQuestions(t, pool, 5)
	nums := make([]int, 0, len(questions))
	for _, q := range questions {
		nums = append(nums, q.Number)
	}

	suffix := fmt.Sprintf("%d", testhelper.NextListPosition())
	alphaName := "alpha-" + suffix
	betaName := "beta-" + suffix
	alpha := testhelper.SeedList(t, pool, alphaName, []int{nums[0], nums[1], nums[2], nums[4]})
	beta := testhelper.SeedList(t, pool, betaName, []int{nums[1], nums[2], nums[3]})

	loaded, lists, err := catalogstore.New(pool).Load(context.Background())
	require.NoError(t, err)

	interID := "ab-" + suffix
	cat, err := catalog.New(loaded, lists, []domain.Intersection{{
		ID:          interID,
		DisplayName: "Alpha ∩ Beta",
		List1:       alphaName,
		List2:       betaName,
	}})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx := postgres.NewTxManager(pool)
	states := staterepo.New(pool)
	tags := tagrepo.New(pool)
	sessions := sessionrepo.New(pool)

	tokens := authpkg.NewTokenManager("e2e-test-secret", "leettrack-e2e", time.Hour)

	trackerSvc := tracker.NewService(logger, cat, states, tags, tx)
	tagSvc := tagsvc.NewService(logger, tags)
	authSvc := authsvc.NewService(logger, sessions, tokens)

	router := rest.NewRouter(
		rest.NewTrackerHandler(trackerSvc, logger),
		rest.NewTagHandler(tagSvc, logger),
		rest.NewAuthHandler(authSvc, logger),
		rest.NewHealthHandler(pool, "e2e"),
		middleware.Auth(authSvc),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*"}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		tokens: tokens,
		catalog: &testCatalog{
			Questions: questions,
			Alpha:     alpha,
			Beta:      beta,
			InterID:   interID,
		},
	}
}

// login seeds a session and returns a valid token for it.
func (s *testServer) login(t *testing.T) (domain.Session, string) {
	t.Helper()

	sess := testhelper.SeedSession(t, s.Pool)
	token, err := s.tokens.Generate(sess.ID)
	require.NoError(t, err)
	return sess, token
}

// do performs an HTTP request with an optional bearer token and optional
// JSON body, decoding the JSON response into out when out is non-nil.
func (s *testServer) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
