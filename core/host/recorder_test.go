package host_test

import (
	"testing"

	"precache-manager/core/host"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRecorder(t *testing.T) {
	r := host.NewRecorder(zap.NewNop())
	var engine host.Engine = r

	engine.PrecacheModel("models/vip.mdl")
	engine.PrecacheSound("ambience/wind.wav")
	engine.PrecacheGeneric("gfx/env/skyup.tga")

	assert.Equal(t, []host.Call{
		{Kind: "model", Path: "models/vip.mdl"},
		{Kind: "sound", Path: "ambience/wind.wav"},
		{Kind: "generic", Path: "gfx/env/skyup.tga"},
	}, r.Calls())

	r.Reset()
	assert.Empty(t, r.Calls())
}
