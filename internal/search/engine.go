package search

import (
	"context"

	"sitesearch/internal/domain"
)

// Engine is a search backend the view can run queries against.
type Engine interface {
	// Name returns the identifier used in logs.
	Name() string
	// Search returns the ordered results for query. Blank queries return no results.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// TemplateEngine answers every query by expanding the fixed templates for one site.
type TemplateEngine struct {
	site string
}

// NewTemplateEngine creates a template engine bound to site.
// An empty site falls back to DefaultSite.
func NewTemplateEngine(site string) *TemplateEngine {
	if site == "" {
		site = DefaultSite
	}
	return &TemplateEngine{site: site}
}

// Name returns the engine name
func (e *TemplateEngine) Name() string {
	return "template"
}

// Site returns the site context the engine builds URLs for
func (e *TemplateEngine) Site() string {
	return e.site
}

// Search expands query. It only fails when ctx is already done.
func (e *TemplateEngine) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Expand(query, e.site), nil
}
