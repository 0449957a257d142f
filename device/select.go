package device

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Selection failures.
var (
	// ErrNoDeviceDetected means the driver enumerated zero physical
	// devices.
	ErrNoDeviceDetected = errors.New("no devices with driver support detected")

	// ErrNoSuitableDevice means every enumerated device failed at least
	// one hard requirement.
	ErrNoSuitableDevice = errors.New("no suitable device found")
)

// Selector scores every enumerated device and picks one.
type Selector struct {
	// Extensions is the device extension set every candidate must
	// expose to be usable.
	Extensions []string
}

// Select resolves, probes and rates each adapter in enumeration order and
// returns the highest scoring candidate. Candidates scored later replace
// earlier ones on equal scores, so ties go to the device enumerated last.
func (s Selector) Select(adapters []Adapter) (Candidate, error) {
	if len(adapters) == 0 {
		return Candidate{}, ErrNoDeviceDetected
	}

	var best Candidate
	for _, adapter := range adapters {
		candidate := Candidate{
			Adapter:    adapter,
			Properties: adapter.Properties(),
			Features:   adapter.Features(),
			Indices:    FindQueueFamilies(adapter),
			Support:    ProbeSwapchainSupport(adapter),
		}
		candidate.Score = Rate(candidate, s.Extensions)

		log.WithFields(log.Fields{
			"device": candidate.Properties.Name,
			"type":   candidate.Properties.Type.String(),
			"score":  candidate.Score,
		}).Debug("rated physical device")

		if best.Adapter == nil || candidate.Score >= best.Score {
			best = candidate
		}
	}

	if best.Score == 0 {
		return Candidate{}, ErrNoSuitableDevice
	}
	return best, nil
}
