package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"leadfilter-service/internal/domain/entity"
	"leadfilter-service/internal/domain/repository"
	"leadfilter-service/pkg/logger"
)

// JSONLeadRepository implements the LeadRepository interface over
// pretty-printed JSON files
type JSONLeadRepository struct {
	logger logger.Logger
}

// NewJSONLeadRepository creates a new JSON file lead repository
func NewJSONLeadRepository(logger logger.Logger) repository.LeadRepository {
	return &JSONLeadRepository{
		logger: logger,
	}
}

// Load reads the lead document at path. A missing or unreadable file is an
// IO error, undecodable bytes are a FormatError, and a document with a
// missing or empty leads array fails with ErrNoLeads.
func (r *JSONLeadRepository) Load(ctx context.Context, path string) ([]*entity.Lead, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lead document %s: %w", path, err)
	}

	var doc entity.LeadDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &entity.FormatError{Err: err}
	}

	if len(doc.Leads) == 0 {
		return nil, fmt.Errorf("%s: %w", path, entity.ErrNoLeads)
	}

	r.logger.Info("Loaded leads", "path", path, "count", len(doc.Leads))

	return doc.Leads, nil
}

// Store writes leads to path as an indented JSON document under the
// top-level "leads" key. Dates stay ISO-8601 strings.
func (r *JSONLeadRepository) Store(ctx context.Context, path string, leads []*entity.Lead) error {
	data, err := json.MarshalIndent(&entity.LeadDocument{Leads: leads}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding lead document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing lead document %s: %w", path, err)
	}

	r.logger.Info("Wrote filtered leads", "path", path, "count", len(leads))

	return nil
}
