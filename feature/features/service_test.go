package features_test

import (
	"testing"

	"pipeline-features/core/pipeline"
	"pipeline-features/feature/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestService_Extract(t *testing.T) {
	t.Run("NoSuppression", func(t *testing.T) {
		svc := features.NewService(zap.NewNop(), nil)

		got, err := svc.Extract(writeConfig(t, "pipeline.json", exampleJSON))
		require.NoError(t, err)
		assert.Equal(t, []string{"api", "sinks-gcp", "sinks-splunk_hec", "sources-prometheus"}, got)
	})

	t.Run("ExtraSuppression", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		svc := features.NewService(zap.New(core), []string{"api", "sinks-not_configured"})

		got, err := svc.Extract(writeConfig(t, "pipeline.json", exampleJSON))
		require.NoError(t, err)
		assert.Equal(t, []string{"sinks-gcp", "sinks-splunk_hec", "sources-prometheus"}, got)

		suppressed := logs.FilterMessage("Suppressing feature").All()
		require.Len(t, suppressed, 1)
		assert.Equal(t, "api", suppressed[0].ContextMap()["feature"])
	})

	t.Run("BuiltInSuppressionAlwaysApplies", func(t *testing.T) {
		svc := features.NewService(zap.NewNop(), nil)

		got, err := svc.Extract(writeConfig(t, "pipeline.toml", "[transforms.m]\ntype = \"log_to_metric\"\n"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Error", func(t *testing.T) {
		svc := features.NewService(zap.NewNop(), nil)

		_, err := svc.Extract(writeConfig(t, "pipeline.conf", exampleJSON))
		assert.ErrorIs(t, err, features.ErrInvalidInput)
	})
}

func TestService_Exceptions(t *testing.T) {
	svc := features.NewService(zap.NewNop(), nil)

	tables := svc.Exceptions()
	assert.Len(t, tables, 2)
	assert.NotContains(t, tables, pipeline.SectionTransforms)
	assert.Equal(t, "prometheus", tables[pipeline.SectionSources]["prometheus_scrape"])
	assert.Equal(t, "splunk_hec", tables[pipeline.SectionSinks]["splunk_hec_logs"])
}
