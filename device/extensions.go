package device

// HasExtensions reports whether the device exposes every extension in
// required. A failed extension query counts as nothing available.
func HasExtensions(adapter Adapter, required []string) bool {
	available, err := adapter.Extensions()
	if err != nil {
		return false
	}

	missing := make(map[string]struct{}, len(required))
	for _, name := range required {
		missing[name] = struct{}{}
	}
	for _, name := range available {
		delete(missing, name)
	}

	return len(missing) == 0
}
