package device_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/lumen/device"
)

func TestSelectPicksHighestScore(t *testing.T) {
	c := qt.New(t)

	discrete := suitableAdapter()

	integrated := suitableAdapter()
	integrated.properties.Type = device.TypeIntegratedGPU
	integrated.properties.MaxImageDimension2D = 16384

	selector := device.Selector{Extensions: testExtensions}
	winner, err := selector.Select([]device.Adapter{discrete, integrated})

	c.Assert(err, qt.IsNil)
	// The integrated device's limit beats the discrete bonus: 16384 > 9192.
	c.Assert(winner.Adapter, qt.Equals, device.Adapter(integrated))
	c.Assert(winner.Score, qt.Equals, 16384)
}

func TestSelectTieGoesToLastEnumerated(t *testing.T) {
	c := qt.New(t)

	first := suitableAdapter()
	second := suitableAdapter()

	selector := device.Selector{Extensions: testExtensions}
	winner, err := selector.Select([]device.Adapter{first, second})

	c.Assert(err, qt.IsNil)
	c.Assert(winner.Adapter, qt.Equals, device.Adapter(second))
}

func TestSelectNoDevices(t *testing.T) {
	c := qt.New(t)

	selector := device.Selector{Extensions: testExtensions}
	_, err := selector.Select(nil)

	c.Assert(err, qt.ErrorIs, device.ErrNoDeviceDetected)
}

func TestSelectNoSuitableDevice(t *testing.T) {
	c := qt.New(t)

	adapter := suitableAdapter()
	adapter.features.GeometryShader = false

	selector := device.Selector{Extensions: testExtensions}
	_, err := selector.Select([]device.Adapter{adapter})

	c.Assert(err, qt.ErrorIs, device.ErrNoSuitableDevice)
}

func TestSelectResolvesCandidateState(t *testing.T) {
	c := qt.New(t)

	adapter := suitableAdapter()

	selector := device.Selector{Extensions: testExtensions}
	winner, err := selector.Select([]device.Adapter{adapter})

	c.Assert(err, qt.IsNil)
	c.Assert(winner.Indices.Complete(), qt.IsTrue)
	c.Assert(winner.Support.Adequate(), qt.IsTrue)
	c.Assert(winner.Properties.Name, qt.Equals, "fake-gpu")
}
