package manifest_test

import (
	"encoding/json"
	"testing"

	"precache-manager/feature/precache/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path   string
		want   manifest.Kind
		wantOK bool
	}{
		{"models/vip.mdl", manifest.KindModel, true},
		{"models/VIP.Mdl", manifest.KindModel, true},
		{"sound/wind.wav", manifest.KindSound, true},
		{"sound/WIND.WAV", manifest.KindSound, true},
		{"sprites/laser.spr", manifest.KindGeneric, true},
		{"maps/de_dust.bsp", manifest.KindGeneric, true},
		{"gfx/env/sky.tga", manifest.KindGeneric, true},
		{"archive.mdlx", manifest.KindModel, true},
		{"short.md", manifest.KindGeneric, true},
		{"one.w", manifest.KindGeneric, true},
		{"trailingdot.", manifest.KindGeneric, true},
		{"models.v2/readme", manifest.KindGeneric, true},
		{"noextension", manifest.KindGeneric, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, ok := manifest.Classify(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestKind_Text(t *testing.T) {
	data, err := json.Marshal(manifest.Entry{Path: "a.wav", Kind: manifest.KindSound})
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"a.wav","kind":"sound"}`, string(data))

	var e manifest.Entry
	require.NoError(t, json.Unmarshal([]byte(`{"path":"a.mdl","kind":"model"}`), &e))
	assert.Equal(t, manifest.KindModel, e.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"path":"a","kind":"texture"}`), &e))
	assert.Equal(t, "generic", manifest.Kind(42).String())
}

func TestTable(t *testing.T) {
	table := manifest.NewTable()
	for i := 0; i < manifest.Capacity; i++ {
		require.True(t, table.Add(manifest.Entry{Path: "a.mdl", Kind: manifest.KindModel}))
	}
	assert.True(t, table.Full())
	assert.False(t, table.Add(manifest.Entry{Path: "b.mdl"}))
	assert.Equal(t, manifest.Capacity, table.Len())

	entries := table.Entries()
	entries[0].Path = "mutated"
	assert.Equal(t, "a.mdl", table.Entries()[0].Path)

	table.Reset()
	assert.Equal(t, 0, table.Len())
	assert.False(t, table.Full())
}
