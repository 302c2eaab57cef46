package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"schemaviz/internal/models"
	"schemaviz/internal/parser"
	"schemaviz/internal/repositories"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotService struct {
	snapshotRepo *repositories.SnapshotRepository
	parseService *ParseService
}

func NewSnapshotService(snapshotRepo *repositories.SnapshotRepository, parseService *ParseService) *SnapshotService {
	return &SnapshotService{
		snapshotRepo: snapshotRepo,
		parseService: parseService,
	}
}

// Create parses the content and persists the result alongside the source
// text, so a saved diagram can be reopened without reparsing.
func (s *SnapshotService) Create(ctx context.Context, name, content, filename string) (*models.Snapshot, error) {
	if name == "" {
		return nil, errors.New("snapshot name is required")
	}

	model, err := s.parseService.Parse(ctx, content, filename)
	if err != nil {
		return nil, err
	}

	snapshot := &models.Snapshot{
		Name:     name,
		Filename: filename,
		Dialect:  string(parser.DetectDialect(content, filename)),
		Content:  content,
		Model:    model,
	}

	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return snapshot, nil
}

func (s *SnapshotService) Get(ctx context.Context, id uuid.UUID) (*models.Snapshot, error) {
	snapshot, err := s.snapshotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}
	return snapshot, nil
}

func (s *SnapshotService) List(ctx context.Context) ([]models.Snapshot, error) {
	return s.snapshotRepo.List(ctx)
}

func (s *SnapshotService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.snapshotRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSnapshotNotFound
	}
	return nil
}
