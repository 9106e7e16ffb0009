package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shahd3/iCare/pkg/config"
)

func TestGetInt(t *testing.T) {
	cfg := &config.Config{}

	t.Setenv("WEEKLY_HORIZON", "6")
	assert.Equal(t, 6, cfg.GetInt("WEEKLY_HORIZON", 4))

	assert.Equal(t, 15, cfg.GetInt("SOME_UNSET_KEY", 15))

	t.Setenv("RECONCILE_INTERVAL_MIN", "soonish")
	assert.Equal(t, 15, cfg.GetInt("RECONCILE_INTERVAL_MIN", 15))
}
