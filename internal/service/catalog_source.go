package service

import (
	"context"
	"fmt"

	"github.com/lshigami/mockprep/internal/auth"
	"github.com/lshigami/mockprep/internal/catalog"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// TokenAuthenticator resolves a bearer token to its claims.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

type repositoryCatalogSource struct {
	testRepo repository.TestRepository
	authn    TokenAuthenticator
}

// NewCatalogSource serves the catalog from the test repository. Every fetch
// re-checks the caller's token.
func NewCatalogSource(testRepo repository.TestRepository, authn TokenAuthenticator) catalog.Source {
	return &repositoryCatalogSource{testRepo: testRepo, authn: authn}
}

func (s *repositoryCatalogSource) FetchAllMockTests(ctx context.Context, token string) ([]domain.Test, error) {
	if _, err := s.authn.Authenticate(ctx, token); err != nil {
		return nil, err
	}

	tests, err := s.testRepo.FindAllWithQuestions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tests for catalog")
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	out := make([]domain.Test, 0, len(tests))
	for i := range tests {
		t, err := toDomainTest(&tests[i])
		if err != nil {
			log.Warn().Err(err).Uint("testID", tests[i].ID).Msg("Skipping test with unreadable questions")
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
