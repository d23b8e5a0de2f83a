// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"testing"

	"cogentcore.org/colorpicker/base/iox/tomlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricString(t *testing.T) {
	assert.Equal(t, "euclidean", Euclidean.String())
	assert.Equal(t, "ciede2000", CIEDE2000.String())
	assert.Equal(t, "Metric(9)", Metric(9).String())

	var m Metric
	require.NoError(t, m.Set("CIEDE2000"))
	assert.Equal(t, CIEDE2000, m)
	assert.Error(t, m.Set("manhattan"))
	assert.Equal(t, CIEDE2000, m)
}

func TestMetricText(t *testing.T) {
	type config struct {
		Metric Metric `toml:"metric"`
	}
	b, err := tomlx.WriteBytes(&config{Metric: CIEDE2000})
	require.NoError(t, err)
	assert.Contains(t, string(b), "ciede2000")

	cfg := &config{}
	require.NoError(t, tomlx.ReadBytes(cfg, []byte(`metric = "euclidean"`)))
	assert.Equal(t, Euclidean, cfg.Metric)
	assert.Error(t, tomlx.ReadBytes(cfg, []byte(`metric = "nope"`)))
}
