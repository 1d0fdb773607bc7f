package loader_test

import (
	"errors"
	"testing"

	"precache-manager/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("SkipsDisabled", func(t *testing.T) {
		a := &stubFeature{name: "precache", enabled: true}
		b := &stubFeature{name: "fastdl", enabled: false}

		mgr := loader.NewManager()
		mgr.Register(a)
		mgr.Register(b)

		loaded, err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.Equal(t, []string{"precache"}, loaded)
		assert.True(t, a.loaded)
		assert.False(t, b.loaded)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		a := &stubFeature{name: "precache", enabled: true, err: errors.New("boom")}
		b := &stubFeature{name: "fastdl", enabled: true}

		mgr := loader.NewManager()
		mgr.Register(a)
		mgr.Register(b)

		loaded, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "precache")
		assert.Empty(t, loaded)
		assert.False(t, b.loaded)
	})
}
