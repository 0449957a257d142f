package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/lumen/core"
)

func TestValidateLayers(t *testing.T) {
	c := qt.New(t)

	available := []string{
		"VK_LAYER_LUNARG_standard_validation",
		"VK_LAYER_MESA_overlay",
	}

	c.Assert(core.ValidateLayers(nil, available), qt.IsNil)
	c.Assert(core.ValidateLayers([]string{"VK_LAYER_MESA_overlay"}, available), qt.IsNil)

	err := core.ValidateLayers([]string{"VK_LAYER_GOOGLE_threading"}, available)
	c.Assert(err, qt.ErrorIs, core.ErrUnsupportedLayer)
	c.Assert(err, qt.ErrorMatches, "VK_LAYER_GOOGLE_threading: .*")
}

func TestValidateLayersEmptyDriverSet(t *testing.T) {
	c := qt.New(t)

	err := core.ValidateLayers([]string{"VK_LAYER_LUNARG_standard_validation"}, nil)
	c.Assert(err, qt.ErrorIs, core.ErrUnsupportedLayer)
}

func TestValidateExtensions(t *testing.T) {
	c := qt.New(t)

	available := []string{"VK_KHR_surface", "VK_KHR_xcb_surface", "VK_EXT_debug_report"}

	c.Assert(core.ValidateExtensions(nil, available), qt.IsNil)
	c.Assert(core.ValidateExtensions([]string{"VK_KHR_surface", "VK_EXT_debug_report"}, available), qt.IsNil)

	err := core.ValidateExtensions([]string{"VK_KHR_wayland_surface"}, available)
	c.Assert(err, qt.ErrorIs, core.ErrUnsupportedExtension)
	c.Assert(err, qt.ErrorMatches, "VK_KHR_wayland_surface: .*")
}

func TestValidateReportsFirstMissing(t *testing.T) {
	c := qt.New(t)

	err := core.ValidateExtensions([]string{"VK_KHR_surface", "VK_NV_glsl_shader"}, []string{"VK_KHR_surface"})
	c.Assert(err, qt.ErrorMatches, "VK_NV_glsl_shader: .*")
}
