package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"

	"github.com/devblok/lumen/core"
)

func TestFromEnvDefaults(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		cfg := core.FromEnv(core.DefaultConfiguration)

		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 60)
		c.Assert(cfg.ScreenWidth, qt.Equals, uint32(800))
		c.Assert(cfg.ScreenHeight, qt.Equals, uint32(600))
		c.Assert(cfg.Instance.DebugMode, qt.IsFalse)
	})
}

func TestFromEnvOverrides(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set("LUMEN_FPS", "144")
		envy.Set("LUMEN_WIDTH", "1920")
		envy.Set("LUMEN_HEIGHT", "1080")
		envy.Set("LUMEN_DEBUG", "true")

		cfg := core.FromEnv(core.DefaultConfiguration)

		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 144)
		c.Assert(cfg.ScreenWidth, qt.Equals, uint32(1920))
		c.Assert(cfg.ScreenHeight, qt.Equals, uint32(1080))
		c.Assert(cfg.Instance.DebugMode, qt.IsTrue)
	})
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set("LUMEN_FPS", "fast")
		envy.Set("LUMEN_WIDTH", "-5")
		envy.Set("LUMEN_DEBUG", "sure")

		cfg := core.FromEnv(core.DefaultConfiguration)

		c.Assert(cfg.Time.FramesPerSecond, qt.Equals, 60)
		c.Assert(cfg.ScreenWidth, qt.Equals, uint32(800))
		c.Assert(cfg.Instance.DebugMode, qt.IsFalse)
	})
}

func TestDeviceExtensionsDefault(t *testing.T) {
	c := qt.New(t)

	c.Assert(core.DefaultConfiguration.Device.Extensions, qt.DeepEquals, []string{"VK_KHR_swapchain"})
}
