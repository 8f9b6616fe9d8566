package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmarek/space-voyages/backend/internal/domain"
	"github.com/jmarek/space-voyages/backend/internal/repo"
)

// TextGenerator defines the single operation the AI-backed services need from
// the external text-generation API. Defining the interface here (in the
// consumer package) lets tests inject a canned generator and keeps the
// services vendor-agnostic; internal/ai provides the real implementation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt domain.Prompt) (string, error)
}

// recommendPersona is the fixed system instruction for recommendation requests.
const recommendPersona = "You are a space travel recommendation assistant. " +
	"Provide personalized suggestions based on user preferences. " +
	"Keep responses concise, enthusiastic, and futuristic in tone."

// EmptyCatalogMessage is returned verbatim when no packages exist, without
// ever calling the external API.
const EmptyCatalogMessage = "I'm sorry, but there are no travel packages " +
	"available at the moment. Please check back later!"

// RecommendService composes a natural-language prompt from the user's stated
// preference and the current catalog, forwards it to the text-generation API,
// and returns the generated recommendation verbatim.
type RecommendService struct {
	repo repo.PackageRepo
	gen  TextGenerator
	log  *slog.Logger
}

// NewRecommendService constructs a RecommendService.
func NewRecommendService(r repo.PackageRepo, gen TextGenerator, log *slog.Logger) *RecommendService {
	return &RecommendService{repo: r, gen: gen, log: log}
}

// Recommend returns a personalized package suggestion for the given preference.
// The preference is required. An empty catalog short-circuits with the fixed
// friendly message; any store or API failure surfaces as domain.ErrUpstream
// with detail logged server-side only.
func (s *RecommendService) Recommend(ctx context.Context, preference string) (string, error) {
	if strings.TrimSpace(preference) == "" {
		return "", fmt.Errorf("service.RecommendService.Recommend: %w: preference is required", domain.ErrValidation)
	}

	pkgs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("recommendation: catalog fetch failed", "error", err)
		return "", fmt.Errorf("service.RecommendService.Recommend: %w: %w", domain.ErrUpstream, err)
	}
	if len(pkgs) == 0 {
		return EmptyCatalogMessage, nil
	}

	reply, err := s.gen.Generate(ctx, domain.Prompt{
		System: recommendPersona,
		Messages: []domain.PromptMessage{{
			Role: domain.RoleUser,
			Content: fmt.Sprintf(
				"I prefer %s. Given these space trip options: %s, suggest one package and explain why it fits my interests.",
				preference, catalogDescriptor(pkgs)),
		}},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error("recommendation: text generation failed", "error", err)
		return "", fmt.Errorf("service.RecommendService.Recommend: %w: %w", domain.ErrUpstream, err)
	}
	return reply, nil
}

// catalogDescriptor renders the catalog as a compact single-line list for
// prompt embedding: one "{name} to {destination} ({n} days, amenities: ...)"
// entry per package, joined by "; ".
func catalogDescriptor(pkgs []domain.Package) string {
	entries := make([]string, len(pkgs))
	for i, p := range pkgs {
		entries[i] = fmt.Sprintf("%s to %s (%d days, amenities: %s)",
			p.Name, p.Destination, p.Duration, strings.Join(p.Amenities, ", "))
	}
	return strings.Join(entries, "; ")
}
