package exporter

import (
	"kosoku-conv/internal/config"
	"kosoku-conv/internal/model"
)

// Exporter is the unified interface for all output strategies. The record
// set is already computed when an exporter runs; a render failure never
// invalidates the records, callers may retry another format.
type Exporter interface {
	Export(summary *model.Summary, records []model.DataRecord, cfg *config.Config) error
}
