package features

import (
	"pipeline-features/core/pipeline"

	"go.uber.org/zap"
)

// Service extracts features from configuration files with logging and an
// operator supplied suppression list on top of the built-in rules.
type Service struct {
	logger   *zap.Logger
	suppress []string
}

// NewService creates a new features service.
// Names in suppress are removed from every result in addition to
// FeatureLogToMetric.
func NewService(logger *zap.Logger, suppress []string) *Service {
	return &Service{
		logger:   logger,
		suppress: suppress,
	}
}

// Extract loads the configuration at path and derives its features.
func (s *Service) Extract(path string) ([]string, error) {
	l := s.logger.With(zap.String("path", path))

	cfg, err := Load(path)
	if err != nil {
		l.Debug("Failed to load pipeline configuration", zap.Error(err))
		return nil, err
	}

	l.Debug("Loaded pipeline configuration",
		zap.Bool("api", cfg.HasAPI()),
		zap.Bool("enterprise", cfg.HasEnterprise()),
		zap.Int("sources", len(cfg.Sources)),
		zap.Int("transforms", len(cfg.Transforms)),
		zap.Int("sinks", len(cfg.Sinks)),
	)

	set := collect(cfg)
	for _, name := range s.suppress {
		if set.Has(name) {
			l.Info("Suppressing feature", zap.String("feature", name))
			set.Remove(name)
		}
	}

	list := set.Sorted()
	l.Debug("Derived features", zap.Strings("features", list))
	return list, nil
}

// Exceptions returns every non-empty exception table keyed by section.
func (s *Service) Exceptions() map[pipeline.Section]map[string]string {
	tables := make(map[pipeline.Section]map[string]string)
	for _, section := range pipeline.Sections() {
		if table := Exceptions(section); len(table) > 0 {
			tables[section] = table
		}
	}
	return tables
}
