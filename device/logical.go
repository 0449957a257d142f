package device

import "github.com/pkg/errors"

// ErrDeviceCreationFailed means the driver rejected logical device
// creation for the selected physical device.
var ErrDeviceCreationFailed = errors.New("logical device creation failed")

// OpenDevice creates the logical device for a winning candidate. It
// requests one queue per unique resolved family at priority 1.0 (a single
// request when one family serves both roles), enables the given device
// extensions and layers, and retrieves the queue handle for each role.
func OpenDevice(candidate Candidate, extensions, layers []string) (*Selection, error) {
	if !candidate.Indices.Complete() {
		return nil, errors.Wrap(ErrDeviceCreationFailed, "queue families unresolved")
	}

	graphics := *candidate.Indices.GraphicsFamily
	present := *candidate.Indices.PresentFamily

	families := []int{graphics}
	if present != graphics {
		families = append(families, present)
	}

	requests := make([]QueueRequest, 0, len(families))
	for _, family := range families {
		requests = append(requests, QueueRequest{Family: family, Priority: 1.0})
	}

	logical, err := candidate.Adapter.Open(requests, extensions, layers)
	if err != nil {
		return nil, errors.Wrap(ErrDeviceCreationFailed, err.Error())
	}

	return &Selection{
		Candidate: candidate,
		Logical:   logical,
		Graphics:  logical.Queue(graphics),
		Present:   logical.Queue(present),
	}, nil
}
