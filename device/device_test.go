package device_test

import (
	"fmt"

	"github.com/devblok/lumen/device"
)

var testExtensions = []string{"VK_KHR_swapchain"}

// fakeAdapter stands in for a driver-backed physical device.
type fakeAdapter struct {
	properties device.Properties
	features   device.Features
	families   []device.QueueFamily

	extensions    []string
	extensionsErr error

	present    map[int]bool
	presentErr error

	capabilities    device.Capabilities
	capabilitiesErr error
	formats         []device.SurfaceFormat
	formatsErr      error
	modes           []device.PresentMode
	modesErr        error

	surfaceCalls int

	openErr        error
	opened         *fakeLogical
	openedRequests []device.QueueRequest
	openedExts     []string
	openedLayers   []string
}

func (f *fakeAdapter) Handle() interface{}                 { return f }
func (f *fakeAdapter) Properties() device.Properties       { return f.properties }
func (f *fakeAdapter) Features() device.Features           { return f.features }
func (f *fakeAdapter) QueueFamilies() []device.QueueFamily { return f.families }

func (f *fakeAdapter) Extensions() ([]string, error) {
	return f.extensions, f.extensionsErr
}

func (f *fakeAdapter) SurfaceSupport(family int) (bool, error) {
	f.surfaceCalls++
	return f.present[family], f.presentErr
}

func (f *fakeAdapter) SurfaceCapabilities() (device.Capabilities, error) {
	return f.capabilities, f.capabilitiesErr
}

func (f *fakeAdapter) SurfaceFormats() ([]device.SurfaceFormat, error) {
	return f.formats, f.formatsErr
}

func (f *fakeAdapter) PresentModes() ([]device.PresentMode, error) {
	return f.modes, f.modesErr
}

func (f *fakeAdapter) Open(queues []device.QueueRequest, extensions, layers []string) (device.Logical, error) {
	f.openedRequests = queues
	f.openedExts = extensions
	f.openedLayers = layers
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.opened == nil {
		f.opened = &fakeLogical{queues: map[int]device.Queue{}}
	}
	return f.opened, nil
}

type fakeLogical struct {
	queues    map[int]device.Queue
	destroyed bool
}

func (l *fakeLogical) Handle() interface{} { return l }

func (l *fakeLogical) Queue(family int) device.Queue {
	if queue, ok := l.queues[family]; ok {
		return queue
	}
	queue := fmt.Sprintf("queue-%d", family)
	l.queues[family] = queue
	return queue
}

func (l *fakeLogical) Destroy() { l.destroyed = true }

// suitableAdapter builds a fake that passes every hard requirement: one
// family serving both roles, a discrete GPU with geometry shaders, the
// swapchain extension and a presentable surface.
func suitableAdapter() *fakeAdapter {
	return &fakeAdapter{
		properties: device.Properties{
			Name:                "fake-gpu",
			Type:                device.TypeDiscreteGPU,
			MaxImageDimension2D: 8192,
		},
		features: device.Features{GeometryShader: true},
		families: []device.QueueFamily{
			{Flags: device.QueueGraphics, Count: 1},
		},
		extensions: []string{"VK_KHR_swapchain"},
		present:    map[int]bool{0: true},
		formats:    []device.SurfaceFormat{{Format: 44, ColorSpace: 0}},
		modes:      []device.PresentMode{2},
	}
}

func rate(adapter device.Adapter) device.Candidate {
	candidate := device.Candidate{
		Adapter:    adapter,
		Properties: adapter.Properties(),
		Features:   adapter.Features(),
		Indices:    device.FindQueueFamilies(adapter),
		Support:    device.ProbeSwapchainSupport(adapter),
	}
	candidate.Score = device.Rate(candidate, testExtensions)
	return candidate
}
