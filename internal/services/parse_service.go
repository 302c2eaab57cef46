package services

import (
	"context"
	"errors"
	"log"

	"schemaviz/internal/models"
	"schemaviz/internal/parser"
	"schemaviz/internal/repositories"
)

// maxContentBytes is the admission cap enforced before text reaches the
// parser. The parser itself is unbounded and stays correct on any size;
// this limit is the service's policy, not the parser's.
const maxContentBytes = 1 << 20

var ErrContentTooLarge = errors.New("schema content exceeds the maximum allowed size")

type ParseService struct {
	cache *repositories.CacheRepository // nil when Redis is not configured
}

func NewParseService(cache *repositories.CacheRepository) *ParseService {
	return &ParseService{cache: cache}
}

// Parse applies the admission cap, consults the cache, and falls back to a
// direct parse. Cache failures are logged and ignored; parsing itself
// cannot fail.
func (s *ParseService) Parse(ctx context.Context, content, filename string) (*models.SchemaModel, error) {
	if len(content) > maxContentBytes {
		return nil, ErrContentTooLarge
	}

	if s.cache != nil {
		cached, err := s.cache.GetModel(ctx, filename, content)
		if err != nil {
			log.Printf("parse cache lookup failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	model := parser.Parse(content, filename)

	if s.cache != nil {
		if err := s.cache.PutModel(ctx, filename, content, model); err != nil {
			log.Printf("parse cache store failed: %v", err)
		}
	}

	return model, nil
}
