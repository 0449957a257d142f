package core

import "github.com/pkg/errors"

// Sentinel errors returned during context bootstrap. Callers match on
// these with errors.Is, the wrapped message carries the detail.
var (
	// ErrUnsupportedLayer means a requested instance layer is not
	// available on this driver installation.
	ErrUnsupportedLayer = errors.New("requested layer not available")

	// ErrUnsupportedExtension means a requested instance extension is
	// not available on this driver installation.
	ErrUnsupportedExtension = errors.New("requested extension not available")

	// ErrContextCreationFailed means the Vulkan instance could not
	// be created.
	ErrContextCreationFailed = errors.New("instance creation failed")

	// ErrDebugSinkSetupFailed means the debug report callback could
	// not be installed on a debug mode instance.
	ErrDebugSinkSetupFailed = errors.New("debug report setup failed")

	// ErrSurfaceCreationFailed means the window could not produce a
	// presentation surface for the instance.
	ErrSurfaceCreationFailed = errors.New("surface creation failed")
)
