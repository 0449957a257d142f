package core

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/lumen/device"
)

// Destroyable frees resources held by an object. Calling any other
// method after Destroy is undefined.
type Destroyable interface {
	Destroy()
}

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each Physical Device
	// along with info about those devices
	PhysicalDevicesInfo() []device.Info

	// AvailableDevices returns handles of Physical Devices
	// from the Vulkan API
	AvailableDevices() []vk.PhysicalDevice

	// Adapters returns the available devices wrapped for
	// capability queries against the current surface
	Adapters() []device.Adapter

	// SetSurface sets the window surface for rendering
	SetSurface(unsafe.Pointer)

	// Surface returns the window surface, if it's not set
	// it should return a valid but empty surface
	Surface() vk.Surface

	// DestroySurface releases the window surface if one was set
	DestroySurface()

	// Extensions returns enabled instance extensions
	Extensions() []string

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// Window is the windowing system surface provider. It reports the
// instance extensions the window system needs and creates the
// presentation surface once an instance exists.
type Window interface {
	// InstanceExtensions returns extensions the windowing system
	// requires from the instance
	InstanceExtensions() []string

	// CreateSurface creates a presentation surface on the given
	// instance handle and returns the raw surface pointer
	CreateSurface(instance interface{}) (unsafe.Pointer, error)
}
