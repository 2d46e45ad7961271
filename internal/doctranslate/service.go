// Package doctranslate translates documents block by block on top of the
// dispatcher. Blocks are independent: a failed block falls back to its
// source text instead of failing the whole document.
package doctranslate

import (
	"context"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/docuglot/docuglot/internal/constants"
	"github.com/docuglot/docuglot/internal/domain"
)

// Translator is the single-text dispatcher the block loop fans out over.
type Translator interface {
	Translate(ctx context.Context, req domain.TranslateRequest) (string, error)
}

// Options carries the per-document provider selection shared by all blocks.
type Options struct {
	SourceLang    string
	TargetLang    string
	ProviderType  string
	CustomAPIKey  string
	CustomBaseURL string
	Model         string

	// Progress, when set, is called after each block completes with the
	// number of finished blocks and the total.
	Progress func(done, total int)
}

type Service struct {
	translator Translator
	logger     *zap.Logger
}

func New(translator Translator, logger *zap.Logger) *Service {
	return &Service{
		translator: translator,
		logger:     logger,
	}
}

// TranslateBlocks translates each block with bounded concurrency, preserving
// order. Blank or trivial blocks pass through untouched; a block whose
// translation fails keeps its source text.
func (s *Service) TranslateBlocks(ctx context.Context, blocks []string, opts Options) []string {
	results := make([]string, len(blocks))
	copy(results, blocks)

	total := len(blocks)
	var mu sync.Mutex
	finished := 0
	reportProgress := func() {
		if opts.Progress == nil {
			return
		}
		mu.Lock()
		finished++
		n := finished
		mu.Unlock()
		opts.Progress(n, total)
	}

	p := pool.New().WithMaxGoroutines(constants.BatchConfig.MaxConcurrency)
	for i, block := range blocks {
		p.Go(func() {
			defer reportProgress()

			if !translatable(block) {
				return
			}

			translated, err := s.translator.Translate(ctx, domain.TranslateRequest{
				Text:          block,
				SourceLang:    opts.SourceLang,
				TargetLang:    opts.TargetLang,
				ProviderType:  opts.ProviderType,
				CustomAPIKey:  opts.CustomAPIKey,
				CustomBaseURL: opts.CustomBaseURL,
				Model:         opts.Model,
			})
			if err != nil {
				s.logger.Warn("Block translation failed, keeping source text",
					zap.Int("block", i),
					zap.Error(err),
				)
				return
			}
			results[i] = translated
		})
	}
	p.Wait()

	return results
}

// translatable filters out blocks not worth a provider round trip: blank
// text and fragments below the minimum size.
func translatable(block string) bool {
	trimmed := strings.TrimSpace(block)
	if trimmed == "" {
		return false
	}
	return len([]rune(trimmed)) >= constants.BatchConfig.MinBlockRunes
}
