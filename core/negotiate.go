package core

import "github.com/pkg/errors"

// ValidateLayers checks every requested layer against the set the
// driver reports. The first missing layer fails the whole request.
func ValidateLayers(requested, available []string) error {
	for _, layer := range requested {
		if !contains(available, layer) {
			return errors.Wrap(ErrUnsupportedLayer, layer)
		}
	}
	return nil
}

// ValidateExtensions checks every requested instance extension against
// the set the driver reports.
func ValidateExtensions(requested, available []string) error {
	for _, extension := range requested {
		if !contains(available, extension) {
			return errors.Wrap(ErrUnsupportedExtension, extension)
		}
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}
