package conf

// MergeDefaults merges defaults into a single map, later maps
// overriding earlier ones on conflicting keys.
func MergeDefaults(defaults ...DefaultConfig) DefaultConfig {
	fullCap := 0
	for _, m := range defaults {
		fullCap += len(m)
	}

	merged := make(DefaultConfig, fullCap)
	for _, m := range defaults {
		for key, val := range m {
			merged[key] = val
		}
	}

	return merged
}

// Namespaced prefixes every key of defaults with ns.
func Namespaced(ns string, defaults DefaultConfig) DefaultConfig {
	namespaced := make(DefaultConfig, len(defaults))
	for key, val := range defaults {
		namespaced[ns+"."+key] = val
	}

	return namespaced
}
