package config

// mergeConfigs merges override configuration into base. Scalars and lists
// from override win when set; extension sections are replaced per key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Locale != "" {
		result.Locale = override.Locale
	}
	if override.Catalog != "" {
		result.Catalog = override.Catalog
	}
	if override.State != "" {
		result.State = override.State
	}
	if override.Debug {
		result.Debug = true
	}
	if len(override.DepartmentOrder) > 0 {
		result.DepartmentOrder = append([]string(nil), override.DepartmentOrder...)
	}
	if override.Watch.Enabled {
		result.Watch.Enabled = true
	}
	if override.Watch.DebounceMs != 0 {
		result.Watch.DebounceMs = override.Watch.DebounceMs
	}

	if len(override.Extensions) > 0 {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			merged[k] = v
		}
		for k, v := range override.Extensions {
			merged[k] = v
		}
		result.Extensions = merged
	}

	return &result
}
