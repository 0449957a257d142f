package device

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// NewVulkanAdapter binds a physical device handle to the surface it will
// be resolved and scored against.
func NewVulkanAdapter(handle vk.PhysicalDevice, surface vk.Surface) Adapter {
	return &vulkanAdapter{handle: handle, surface: surface}
}

type vulkanAdapter struct {
	handle  vk.PhysicalDevice
	surface vk.Surface
}

func (a *vulkanAdapter) Handle() interface{} {
	return a.handle
}

func (a *vulkanAdapter) Properties() Properties {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(a.handle, &properties)
	properties.Deref()
	properties.Limits.Deref()

	return Properties{
		DeviceID:            (int)(properties.DeviceID),
		VendorID:            (int)(properties.VendorID),
		DriverVersion:       (int)(properties.DriverVersion),
		Name:                vk.ToString(properties.DeviceName[:]),
		Type:                DeviceType(properties.DeviceType),
		MaxImageDimension2D: (int)(properties.Limits.MaxImageDimension2D),
	}
}

func (a *vulkanAdapter) Features() Features {
	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(a.handle, &features)
	features.Deref()

	return Features{
		GeometryShader: features.GeometryShader == vk.True,
	}
}

func (a *vulkanAdapter) QueueFamilies() []QueueFamily {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(a.handle, &familyCount, nil)
	properties := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(a.handle, &familyCount, properties)

	families := make([]QueueFamily, familyCount)
	for i := range properties {
		properties[i].Deref()
		families[i] = QueueFamily{
			Flags: QueueFlags(properties[i].QueueFlags),
			Count: (int)(properties[i].QueueCount),
		}
	}
	return families
}

func (a *vulkanAdapter) Extensions() ([]string, error) {
	var extensionCount uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(a.handle, "", &extensionCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateDeviceExtensionProperties(): %s", err)
	}
	extensions := make([]vk.ExtensionProperties, extensionCount)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(a.handle, "", &extensionCount, extensions)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateDeviceExtensionProperties(): %s", err)
	}

	names := make([]string, 0, extensionCount)
	for _, extension := range extensions {
		extension.Deref()
		names = append(names, vk.ToString(extension.ExtensionName[:]))
	}
	return names, nil
}

func (a *vulkanAdapter) SurfaceSupport(family int) (bool, error) {
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(a.handle, uint32(family), a.surface, &supported)); err != nil {
		return false, fmt.Errorf("vk.GetPhysicalDeviceSurfaceSupport(): %s", err)
	}
	return supported == vk.True, nil
}

func (a *vulkanAdapter) SurfaceCapabilities() (Capabilities, error) {
	var capabilities vk.SurfaceCapabilities
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(a.handle, a.surface, &capabilities)); err != nil {
		return Capabilities{}, fmt.Errorf("vk.GetPhysicalDeviceSurfaceCapabilities(): %s", err)
	}
	capabilities.Deref()
	capabilities.CurrentExtent.Deref()
	capabilities.MinImageExtent.Deref()
	capabilities.MaxImageExtent.Deref()

	return Capabilities{
		MinImageCount: (int)(capabilities.MinImageCount),
		MaxImageCount: (int)(capabilities.MaxImageCount),
		CurrentExtent: Extent{
			Width:  (int)(capabilities.CurrentExtent.Width),
			Height: (int)(capabilities.CurrentExtent.Height),
		},
		MinImageExtent: Extent{
			Width:  (int)(capabilities.MinImageExtent.Width),
			Height: (int)(capabilities.MinImageExtent.Height),
		},
		MaxImageExtent: Extent{
			Width:  (int)(capabilities.MaxImageExtent.Width),
			Height: (int)(capabilities.MaxImageExtent.Height),
		},
	}, nil
}

func (a *vulkanAdapter) SurfaceFormats() ([]SurfaceFormat, error) {
	var formatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(a.handle, a.surface, &formatCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceFormats(): %s", err)
	}
	surfaceFormats := make([]vk.SurfaceFormat, formatCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(a.handle, a.surface, &formatCount, surfaceFormats)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceFormats(): %s", err)
	}

	formats := make([]SurfaceFormat, 0, formatCount)
	for _, format := range surfaceFormats {
		format.Deref()
		formats = append(formats, SurfaceFormat{
			Format:     uint32(format.Format),
			ColorSpace: uint32(format.ColorSpace),
		})
	}
	return formats, nil
}

func (a *vulkanAdapter) PresentModes() ([]PresentMode, error) {
	var modeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(a.handle, a.surface, &modeCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfacePresentModes(): %s", err)
	}
	presentModes := make([]vk.PresentMode, modeCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(a.handle, a.surface, &modeCount, presentModes)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfacePresentModes(): %s", err)
	}

	modes := make([]PresentMode, 0, modeCount)
	for _, mode := range presentModes {
		modes = append(modes, PresentMode(mode))
	}
	return modes, nil
}

func (a *vulkanAdapter) Open(queues []QueueRequest, extensions, layers []string) (Logical, error) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, 0, len(queues))
	for _, request := range queues {
		queueInfos = append(queueInfos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(request.Family),
			QueueCount:       1,
			PQueuePriorities: []float32{request.Priority},
		})
	}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: terminatedStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     terminatedStrings(layers),
	}

	var handle vk.Device
	if err := vk.Error(vk.CreateDevice(a.handle, &deviceInfo, nil, &handle)); err != nil {
		return nil, fmt.Errorf("vk.CreateDevice(): %s", err)
	}
	return &vulkanLogical{handle: handle}, nil
}

type vulkanLogical struct {
	handle vk.Device
}

func (l *vulkanLogical) Handle() interface{} {
	return l.handle
}

func (l *vulkanLogical) Queue(family int) Queue {
	var queue vk.Queue
	vk.GetDeviceQueue(l.handle, uint32(family), 0, &queue)
	return queue
}

func (l *vulkanLogical) Destroy() {
	if l == nil {
		return
	}
	vk.DestroyDevice(l.handle, nil)
}

// Describe collects the inventory record for a physical device. Query
// failures mark the record Invalid instead of aborting the listing.
func Describe(handle vk.PhysicalDevice) Info {
	var info Info

	// Get extension info
	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(handle, "", &numDeviceExtensions, nil)); err != nil {
		info.Invalid = true
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(handle, "", &numDeviceExtensions, deviceExt)); err != nil {
		info.Invalid = true
	}
	for _, ext := range deviceExt {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	// Get layers info
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(handle, &numDeviceLayers, nil)); err != nil {
		info.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(handle, &numDeviceLayers, deviceLayers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range deviceLayers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	// Get memory info
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(handle, &memoryProperties)
	memoryProperties.Deref()
	for iMem := (uint32)(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		memoryProperties.MemoryHeaps[iMem].Deref()
		info.Memory = info.Memory + (uint64)(memoryProperties.MemoryHeaps[iMem].Size)
	}

	// Get general device info
	adapter := vulkanAdapter{handle: handle}
	properties := adapter.Properties()
	info.ID = properties.DeviceID
	info.VendorID = properties.VendorID
	info.DriverVersion = properties.DriverVersion
	info.Name = properties.Name
	info.Type = properties.Type.String()
	info.MaxImageDimension2D = properties.MaxImageDimension2D
	info.GeometryShader = adapter.Features().GeometryShader

	return info
}

func terminatedStrings(strs []string) []string {
	safe := make([]string, 0, len(strs))
	for _, s := range strs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}
