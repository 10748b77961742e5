package signalman_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/signalman"
	"github.com/zoobzio/signalman/internal/testobject"
)

func TestCollector(t *testing.T) {
	c := signalman.NewCollector("signalman")
	assert.Equal(t, 9, testutil.CollectAndCount(c))

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(c))

	emissions := func() float64 {
		families, err := registry.Gather()
		require.NoError(t, err)
		for _, mf := range families {
			if mf.GetName() == "signalman_bus_emissions_total" {
				return mf.GetMetric()[0].GetCounter().GetValue()
			}
		}
		t.Fatal("emissions metric missing")
		return 0
	}

	obj := testobject.New()
	defer obj.Dispose()

	before := emissions()
	require.NoError(t, obj.Ping())
	require.NoError(t, obj.Ping())
	assert.Equal(t, before+2, emissions())

	assert.Equal(t, 1, testutil.CollectAndCount(c, "signalman_bus_objects"))
	problems, err := testutil.CollectAndLint(c)
	require.NoError(t, err)
	assert.Empty(t, problems)
}
