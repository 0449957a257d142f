package core

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/lumen/device"
)

// DefaultApplicationInfo application info describes a Vulkan application
var DefaultApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "Lumen\x00",
	PEngineName:        "Lumen\x00",
}

const (
	validationLayerName      = "VK_LAYER_LUNARG_standard_validation"
	debugReportExtensionName = "VK_EXT_debug_report"
)

// NewVulkanInstance creates a Vulkan instance. Requested layers and
// extensions are checked against what the driver reports before
// creation, debug mode adds the validation layer and wires driver
// messages into the log.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration) (Instance, error) {
	if cfg.DebugMode {
		cfg.Layers = append(cfg.Layers, validationLayerName)
		cfg.Extensions = append(cfg.Extensions, debugReportExtensionName)
	}

	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.Wrap(ErrContextCreationFailed, "vk.InstanceProcAddr(): "+err.Error())
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(ErrContextCreationFailed, "vk.Init(): "+err.Error())
	}

	availableLayers, err := availableInstanceLayers()
	if err != nil {
		return nil, errors.Wrap(ErrContextCreationFailed, err.Error())
	}
	if err := ValidateLayers(cfg.Layers, availableLayers); err != nil {
		return nil, err
	}

	availableExtensions, err := availableInstanceExtensions()
	if err != nil {
		return nil, errors.Wrap(ErrContextCreationFailed, err.Error())
	}
	if err := ValidateExtensions(cfg.Extensions, availableExtensions); err != nil {
		return nil, err
	}

	/* Create instance */
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.Wrap(ErrContextCreationFailed, "vk.CreateInstance(): "+err.Error())
	}
	vk.InitInstance(instance)

	/* Enumerate devices */
	physicalDevices, err := enumerateDevices(instance)
	if err != nil {
		vk.DestroyInstance(instance, nil)
		return nil, errors.Wrap(ErrContextCreationFailed, err.Error())
	}

	v := &VulkanInstance{
		configuration:    cfg,
		instance:         instance,
		availableDevices: physicalDevices,
	}

	if cfg.DebugMode {
		if err := v.setupDebugReport(); err != nil {
			vk.DestroyInstance(instance, nil)
			return nil, errors.Wrap(ErrDebugSinkSetupFailed, err.Error())
		}
	}

	return v, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	Destroyable

	configuration InstanceConfiguration

	availableDevices []vk.PhysicalDevice
	surface          vk.Surface
	instance         vk.Instance

	debugCallback    vk.DebugReportCallback
	debugCallbackSet bool
}

func availableInstanceLayers() ([]string, error) {
	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %s", err)
	}
	layers := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %s", err)
	}

	names := make([]string, 0, layerCount)
	for _, layer := range layers {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

func availableInstanceExtensions() ([]string, error) {
	var extensionCount uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceExtensionProperties(): %s", err)
	}
	extensions := make([]vk.ExtensionProperties, extensionCount)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extensionCount, extensions)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceExtensionProperties(): %s", err)
	}

	names := make([]string, 0, extensionCount)
	for _, extension := range extensions {
		extension.Deref()
		names = append(names, vk.ToString(extension.ExtensionName[:]))
	}
	return names, nil
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %s", err)
	}
	return availableDevices, nil
}

func (v *VulkanInstance) setupDebugReport() error {
	createInfo := vk.DebugReportCallbackCreateInfo{
		SType:       vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags:       vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit),
		PfnCallback: debugReportCallback,
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(v.instance, &createInfo, nil, &callback)); err != nil {
		return fmt.Errorf("vk.CreateDebugReportCallback(): %s", err)
	}
	v.debugCallback = callback
	v.debugCallbackSet = true
	return nil
}

func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint, messageCode int32, layerPrefix string, message string, userData unsafe.Pointer) vk.Bool32 {
	entry := log.WithFields(log.Fields{
		"layer": layerPrefix,
		"code":  messageCode,
	})
	if flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0 {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}
	return vk.False
}

// PhysicalDevicesInfo implements interface
func (v VulkanInstance) PhysicalDevicesInfo() []device.Info {
	pdi := make([]device.Info, len(v.availableDevices))
	for i := 0; i < len(v.availableDevices); i++ {
		pdi[i] = device.Describe(v.availableDevices[i])
	}
	return pdi
}

// Adapters implements interface
func (v VulkanInstance) Adapters() []device.Adapter {
	adapters := make([]device.Adapter, len(v.availableDevices))
	for i, handle := range v.availableDevices {
		adapters[i] = device.NewVulkanAdapter(handle, v.Surface())
	}
	return adapters
}

// SetSurface implements interface
func (v *VulkanInstance) SetSurface(pSurface unsafe.Pointer) {
	v.surface = vk.SurfaceFromPointer(uintptr(pSurface))
}

// Surface implements interface
func (v VulkanInstance) Surface() vk.Surface {
	if v.surface == nil {
		return vk.NullSurface
	}
	return v.surface
}

// DestroySurface implements interface
func (v *VulkanInstance) DestroySurface() {
	if v.surface != nil {
		vk.DestroySurface(v.instance, v.surface, nil)
		v.surface = nil
	}
}

// Inner returns internal vk.Instance
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Extensions implements interface
func (v VulkanInstance) Extensions() []string {
	return v.configuration.Extensions
}

// AvailableDevices implements interface
func (v VulkanInstance) AvailableDevices() []vk.PhysicalDevice {
	return v.availableDevices
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	if v.debugCallbackSet {
		vk.DestroyDebugReportCallback(v.instance, v.debugCallback, nil)
		v.debugCallbackSet = false
	}
	v.availableDevices = nil
	vk.DestroyInstance(v.instance, nil)
}
