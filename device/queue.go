package device

// FindQueueFamilies resolves the queue family roles for a device. Families
// are scanned in driver order; the first graphics-capable family and the
// first present-capable family win, and a single family may fill both
// roles. The scan stops as soon as both roles are resolved. It never
// fails: roles without a match are simply left nil.
func FindQueueFamilies(adapter Adapter) QueueFamilyIndices {
	var indices QueueFamilyIndices

	for i, family := range adapter.QueueFamilies() {
		if indices.GraphicsFamily == nil && family.Count > 0 && family.Flags&QueueGraphics != 0 {
			index := i
			indices.GraphicsFamily = &index
		}

		if indices.PresentFamily == nil {
			supported, err := adapter.SurfaceSupport(i)
			if err == nil && supported && family.Count > 0 {
				index := i
				indices.PresentFamily = &index
			}
		}

		if indices.Complete() {
			break
		}
	}

	return indices
}
