package device

// ProbeSwapchainSupport gathers what the device can do with the target
// surface: capabilities, pixel formats and presentation modes. It never
// fails; a query error leaves the corresponding field empty, which the
// scorer then treats as an unusable device.
func ProbeSwapchainSupport(adapter Adapter) SwapchainSupport {
	var support SwapchainSupport

	if capabilities, err := adapter.SurfaceCapabilities(); err == nil {
		support.Capabilities = capabilities
	}
	if formats, err := adapter.SurfaceFormats(); err == nil {
		support.Formats = formats
	}
	if modes, err := adapter.PresentModes(); err == nil {
		support.PresentModes = modes
	}

	return support
}
