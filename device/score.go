package device

// Rate computes the suitability score of a candidate. A device that fails
// any hard requirement scores 0 and can never be selected. Otherwise the
// score is 1000 for a discrete GPU plus the device's maximum 2D image
// dimension, so an integrated device with a large enough limit can outrank
// a discrete one.
func Rate(candidate Candidate, requiredExtensions []string) int {
	if !candidate.Features.GeometryShader {
		return 0
	}
	if !candidate.Indices.Complete() {
		return 0
	}
	if !HasExtensions(candidate.Adapter, requiredExtensions) {
		return 0
	}
	if !candidate.Support.Adequate() {
		return 0
	}

	score := 0
	if candidate.Properties.Type == TypeDiscreteGPU {
		score += 1000
	}
	score += candidate.Properties.MaxImageDimension2D

	return score
}
