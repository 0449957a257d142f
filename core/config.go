package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Time     TimeConfiguration
	Instance InstanceConfiguration
	Device   DeviceConfiguration

	ScreenWidth  uint32
	ScreenHeight uint32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the window event poll interval in milliseconds
	EventPollDelay int
}

// InstanceConfiguration is used to configure the Vulkan instance
type InstanceConfiguration struct {
	// DebugMode loads validation layers and the debug report callback
	DebugMode bool

	Layers     []string
	Extensions []string
}

// DeviceConfiguration is used to configure device selection and
// logical device creation
type DeviceConfiguration struct {
	// Extensions every acceptable device must support
	Extensions []string
}

// DefaultConfiguration is the engine configuration used when the
// environment overrides nothing.
var DefaultConfiguration = Configuration{
	Time: TimeConfiguration{
		FramesPerSecond: 60,
		EventPollDelay:  50,
	},
	Device: DeviceConfiguration{
		Extensions: []string{"VK_KHR_swapchain"},
	},
	ScreenWidth:  800,
	ScreenHeight: 600,
}

// FromEnv overlays environment variables on top of a base
// configuration. Unset and unparseable variables leave the base
// values untouched.
func FromEnv(base Configuration) Configuration {
	cfg := base

	if fps, err := strconv.Atoi(envy.Get("LUMEN_FPS", "")); err == nil {
		cfg.Time.FramesPerSecond = fps
	}
	if width, err := strconv.ParseUint(envy.Get("LUMEN_WIDTH", ""), 10, 32); err == nil {
		cfg.ScreenWidth = uint32(width)
	}
	if height, err := strconv.ParseUint(envy.Get("LUMEN_HEIGHT", ""), 10, 32); err == nil {
		cfg.ScreenHeight = uint32(height)
	}
	if debug, err := strconv.ParseBool(envy.Get("LUMEN_DEBUG", "")); err == nil {
		cfg.Instance.DebugMode = debug
	}

	return cfg
}
