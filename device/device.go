package device

// DeviceType classifies a physical device the way the driver reports it.
// The numeric values match the Vulkan enumeration.
type DeviceType int

// Known device classifications.
const (
	TypeOther DeviceType = iota
	TypeIntegratedGPU
	TypeDiscreteGPU
	TypeVirtualGPU
	TypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case TypeIntegratedGPU:
		return "integrated"
	case TypeDiscreteGPU:
		return "discrete"
	case TypeVirtualGPU:
		return "virtual"
	case TypeCPU:
		return "cpu"
	default:
		return "other"
	}
}

// QueueFlags is the capability bitmask of a queue family. The bit values
// match the Vulkan queue flag bits.
type QueueFlags uint32

// Queue family capabilities.
const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// Properties are the identifying properties and limits of a physical device.
type Properties struct {
	DeviceID      int
	VendorID      int
	DriverVersion int
	Name          string
	Type          DeviceType

	// MaxImageDimension2D caps the size of 2D images the device can
	// create. It feeds directly into the suitability score.
	MaxImageDimension2D int
}

// Features are the optional device capabilities the bootstrap cares about.
type Features struct {
	GeometryShader bool
}

// QueueFamily describes one queue family as enumerated on a device.
type QueueFamily struct {
	Flags QueueFlags
	Count int
}

// Extent is a 2D pixel extent.
type Extent struct {
	Width  int
	Height int
}

// Capabilities is the presentation capability record of a device/surface
// pair.
type Capabilities struct {
	MinImageCount  int
	MaxImageCount  int
	CurrentExtent  Extent
	MinImageExtent Extent
	MaxImageExtent Extent
}

// SurfaceFormat is a supported pixel format/color space pairing.
type SurfaceFormat struct {
	Format     uint32
	ColorSpace uint32
}

// PresentMode identifies a surface presentation mode.
type PresentMode uint32

// SwapchainSupport is everything a device can do with the target surface.
// Empty format or present mode lists are valid results; they mark the
// device unusable for presentation.
type SwapchainSupport struct {
	Capabilities Capabilities
	Formats      []SurfaceFormat
	PresentModes []PresentMode
}

// Adequate reports whether the device supports at least one format and one
// presentation mode for the surface.
func (s SwapchainSupport) Adequate() bool {
	return len(s.Formats) > 0 && len(s.PresentModes) > 0
}

// QueueFamilyIndices holds the resolved queue family for each role the
// bootstrap needs. A nil field means no family satisfied that role. The
// same family may serve both.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

// Complete reports whether every role has been resolved.
func (i QueueFamilyIndices) Complete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// QueueRequest asks for one queue from the given family at the given
// priority when the logical device is created.
type QueueRequest struct {
	Family   int
	Priority float32
}

// Adapter is the read-only view of one physical device bound to the target
// surface, plus the call that turns it into a logical device. The selection
// core only ever talks to the driver through it, so the whole pipeline runs
// against fakes in tests.
type Adapter interface {
	// Handle returns the inner physical device handle of the underlying
	// API.
	Handle() interface{}

	Properties() Properties
	Features() Features
	QueueFamilies() []QueueFamily

	// Extensions lists the extension names the device exposes.
	Extensions() ([]string, error)

	// SurfaceSupport reports whether the given queue family can present
	// to the bound surface.
	SurfaceSupport(family int) (bool, error)

	SurfaceCapabilities() (Capabilities, error)
	SurfaceFormats() ([]SurfaceFormat, error)
	PresentModes() ([]PresentMode, error)

	// Open creates the logical device with the given queue requests,
	// device extensions and layers.
	Open(queues []QueueRequest, extensions, layers []string) (Logical, error)
}

// Logical is an application-owned handle to a created logical device.
// Destroying it invalidates every queue retrieved from it.
type Logical interface {
	// Queue retrieves the first queue of the given family.
	Queue(family int) Queue

	// Handle returns the inner device handle of the underlying API.
	Handle() interface{}

	// Destroy destroys the logical device.
	Destroy()
}

// Queue identifies a single device command queue.
type Queue interface{}

// Candidate is one enumerated device with everything the scorer needs
// already resolved. Candidates are built per device during selection and
// discarded afterwards; only the winner survives.
type Candidate struct {
	Adapter    Adapter
	Properties Properties
	Features   Features
	Indices    QueueFamilyIndices
	Support    SwapchainSupport
	Score      int
}

// Selection is the product of a successful pick: the winning candidate
// together with its logical device and role queues. When a single family
// serves both roles the two queue handles are the same.
type Selection struct {
	Candidate Candidate
	Logical   Logical
	Graphics  Queue
	Present   Queue
}

// Info describes available physical properties of a rendering device, for
// inventory listings.
type Info struct {
	ID                  int
	VendorID            int
	DriverVersion       int
	Name                string
	Type                string
	MaxImageDimension2D int
	GeometryShader      bool
	Memory              uint64
	Extensions          []string
	Layers              []string
	Invalid             bool
}
