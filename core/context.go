package core

import (
	"unsafe"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/lumen/device"
)

// Context is a ready to use graphics context: the instance, the
// presentation surface, the selected device and its queues.
type Context struct {
	Destroyable

	// Instance is the owning Vulkan instance
	Instance Instance

	// Selection is the chosen device, opened with its queues resolved
	Selection *device.Selection

	release releaseStack
}

// NewContext bootstraps the full graphics context over the given
// window. Resources acquired before a failure are released in reverse
// order, a half built context is never returned.
func NewContext(cfg Configuration, window Window, procAddr unsafe.Pointer) (*Context, error) {
	ctx := &Context{}

	instanceCfg := cfg.Instance
	instanceCfg.Extensions = append(instanceCfg.Extensions, window.InstanceExtensions()...)

	instance, err := NewVulkanInstance(DefaultApplicationInfo, procAddr, instanceCfg)
	if err != nil {
		return nil, err
	}
	ctx.Instance = instance
	ctx.release.push(instance.Destroy)

	surface, err := window.CreateSurface(instance.Inner())
	if err != nil {
		ctx.release.unwind()
		return nil, errors.Wrap(ErrSurfaceCreationFailed, err.Error())
	}
	instance.SetSurface(surface)
	ctx.release.push(instance.DestroySurface)

	selector := device.Selector{Extensions: cfg.Device.Extensions}
	candidate, err := selector.Select(instance.Adapters())
	if err != nil {
		ctx.release.unwind()
		return nil, err
	}

	// Validation layers predate device layer deprecation, pass them
	// to the device as well so older loaders still filter on them.
	var layers []string
	if cfg.Instance.DebugMode {
		layers = append(layers, validationLayerName)
	}

	selection, err := device.OpenDevice(candidate, cfg.Device.Extensions, layers)
	if err != nil {
		ctx.release.unwind()
		return nil, err
	}
	ctx.Selection = selection
	ctx.release.push(selection.Logical.Destroy)

	log.WithFields(log.Fields{
		"device": candidate.Properties.Name,
		"type":   candidate.Properties.Type.String(),
		"score":  candidate.Score,
	}).Info("graphics context ready")

	return ctx, nil
}

// Destroy implements interface
func (c *Context) Destroy() {
	c.release.unwind()
}

// releaseStack collects cleanup functions and runs them in reverse
// acquisition order. Unwinding twice is a no-op.
type releaseStack struct {
	funcs []func()
}

func (r *releaseStack) push(f func()) {
	r.funcs = append(r.funcs, f)
}

func (r *releaseStack) unwind() {
	for i := len(r.funcs) - 1; i >= 0; i-- {
		r.funcs[i]()
	}
	r.funcs = nil
}
