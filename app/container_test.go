package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neha01mittal/datadriven-firesafety/config"
	"github.com/neha01mittal/datadriven-firesafety/ui/model"
)

func TestNewClassifier_RequiresKey(t *testing.T) {
	for _, provider := range []string{config.ProviderWatson, config.ProviderGemini} {
		cfg := config.DefaultConfig()
		cfg.Provider = provider
		_, _, err := NewClassifier(context.Background(), cfg, nil)
		assert.ErrorIs(t, err, ErrMissingAPIKey, provider)
	}
}

func TestNewClassifier_Watson(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.APIKey = "k"
	clf, closer, err := NewClassifier(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, clf)
	assert.Nil(t, closer)
}

func TestNewClassifier_OllamaNeedsNoKey(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Provider = config.ProviderOllama
	clf, _, err := NewClassifier(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, clf)
}

func TestNewClassifier_UnknownProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Provider = "clairvoyant"
	_, _, err := NewClassifier(context.Background(), cfg, nil)
	assert.ErrorContains(t, err, "unknown provider")
}

func TestBuildContainer_WiresRunner(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Provider = config.ProviderOllama
	c, err := BuildContainer(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.Runner)
	assert.Same(t, c.Model, c.Runner.Model)
	assert.Equal(t, 780, c.Runner.MaxW)
	assert.Equal(t, 780, c.Runner.MaxH)

	c.Model.SetPhase(model.PhaseConfirming, timeZero())
	assert.Equal(t, model.PhaseConfirming, c.Phase.Latest())
}
