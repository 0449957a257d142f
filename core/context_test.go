package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestReleaseStackUnwindsInReverse(t *testing.T) {
	c := qt.New(t)

	var order []string
	var stack releaseStack
	stack.push(func() { order = append(order, "instance") })
	stack.push(func() { order = append(order, "surface") })
	stack.push(func() { order = append(order, "device") })

	stack.unwind()

	c.Assert(order, qt.DeepEquals, []string{"device", "surface", "instance"})
}

func TestReleaseStackUnwindTwice(t *testing.T) {
	c := qt.New(t)

	var calls int
	var stack releaseStack
	stack.push(func() { calls++ })

	stack.unwind()
	stack.unwind()

	c.Assert(calls, qt.Equals, 1)
}

func TestReleaseStackEmptyUnwind(t *testing.T) {
	var stack releaseStack
	stack.unwind()
}
