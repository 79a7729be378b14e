package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"reelimages/internal/stock"
)

// Pipeline runs the term-to-image acquisition sequence: extract terms,
// search both providers per term, interleave, dedupe, cap, download.
// Fully sequential; every network call is bounded only by its client's
// per-request timeout.
type Pipeline struct {
	service *Service
}

type FetchResult struct {
	Terms      []string
	OutputDir  string
	Downloaded int
	Total      int
}

func NewPipeline(service *Service) *Pipeline {
	return &Pipeline{service: service}
}

// Fetch runs the full pipeline for one script. Empty script, no extracted
// terms, and an empty final selection are terminal failures; individual
// provider searches and downloads failing are not.
func (p *Pipeline) Fetch(ctx context.Context, scriptText string) (*FetchResult, error) {
	scriptText = strings.TrimSpace(scriptText)
	if scriptText == "" {
		return nil, errors.New("empty script")
	}

	cfg := p.service.Config()

	slog.Info("Extracting search terms...", "script_chars", len(scriptText))
	terms, err := p.service.LLM().ExtractSearchTerms(ctx, scriptText)
	if err != nil {
		return nil, fmt.Errorf("extract search terms: %w", err)
	}
	if len(terms) == 0 {
		return nil, errors.New("no search terms extracted")
	}
	slog.Info("Search terms", "terms", strings.Join(terms, ", "))

	candidates := p.collectCandidates(ctx, terms)

	selection := stock.Select(candidates, cfg.Images.MaxTotal)
	if len(selection) == 0 {
		return nil, errors.New("no images found")
	}
	slog.Info("Selected images", "unique", len(selection), "candidates", len(candidates))

	run := newSession(cfg.Images.BaseDir)
	if err := run.finalize(terms[0]); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	slog.Info("Downloading images...", "dir", run.dir)
	downloaded := p.downloadAll(ctx, selection, run.dir)

	return &FetchResult{
		Terms:      terms,
		OutputDir:  run.dir,
		Downloaded: downloaded,
		Total:      len(selection),
	}, nil
}

// collectCandidates searches every provider for every term in order and
// interleaves each term's provider lists before appending, so the
// candidate sequence alternates sources within a term and earlier terms
// come first.
func (p *Pipeline) collectCandidates(ctx context.Context, terms []string) []stock.Image {
	cfg := p.service.Config()
	perTerm := stock.PerTermCount(cfg.Images.MaxTotal, cfg.Images.MinPerTerm, len(terms))

	var candidates []stock.Image
	for _, term := range terms {
		slog.Info("Searching", "term", term, "per_provider", perTerm)

		lists := make([][]stock.Image, 0, len(p.service.Searchers()))
		for _, searcher := range p.service.Searchers() {
			lists = append(lists, p.search(ctx, searcher, term, perTerm))
		}

		candidates = append(candidates, stock.Interleave(lists...)...)
	}
	return candidates
}

// search is the failure boundary for one provider call: errors are logged
// and become an empty list so the run continues with the other provider
// and the remaining terms.
func (p *Pipeline) search(ctx context.Context, searcher stock.Searcher, term string, count int) []stock.Image {
	results, err := searcher.Search(ctx, term, count)
	if err != nil {
		slog.Warn("Search failed", "source", searcher.Source(), "term", term, "error", err)
		return nil
	}
	slog.Debug("Search results", "source", searcher.Source(), "term", term, "count", len(results))
	return results
}

// downloadAll fetches the selection in order, indices starting at 1.
// A failed download is logged and skipped.
func (p *Pipeline) downloadAll(ctx context.Context, selection []stock.Image, dir string) int {
	downloaded := 0
	for i, img := range selection {
		index := i + 1
		slog.Info("Downloading",
			"progress", fmt.Sprintf("%d/%d", index, len(selection)),
			"source", img.Source,
			"photographer", img.Photographer,
		)

		path, err := p.service.Downloader().Download(ctx, img, dir, index)
		if err != nil {
			slog.Warn("Download failed", "url", img.URL, "error", err)
			continue
		}

		slog.Debug("Saved image", "path", path)
		downloaded++
	}
	return downloaded
}
