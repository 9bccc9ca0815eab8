package config

import "maps"

// SiteConfig holds per-site settings from the project configuration file.
// This lets a project pin different credentials or polling behavior for
// each site it audits.
type SiteConfig struct {
	// APIKey overrides the global API key when auditing this site.
	APIKey string `yaml:"apiKey,omitempty"`

	// Headers are extra HTTP headers sent with every API request made on
	// behalf of this site (e.g. a staging-bypass header).
	Headers map[string]string `yaml:"headers,omitempty"`

	// PollIntervalSeconds overrides the global poll interval for this
	// site's audit tasks. Zero means use the global interval.
	PollIntervalSeconds int `yaml:"pollIntervalSeconds,omitempty"`

	// SaveHistory controls whether audits of this site are persisted to
	// the local history database. Nil means inherit the global setting.
	SaveHistory *bool `yaml:"saveHistory,omitempty"`
}

// File represents the structure of the .serpmaster project file.
type File struct {
	// Sites maps site URLs (without protocol) to their settings.
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults contains settings applied to all sites unless overridden.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the merged configuration for a site: defaults
// overlaid with the site-specific section, if one exists. The headers
// map is cloned before overlaying so that merging one site's headers
// never mutates Defaults or leaks into another site's merge. Lookups
// happen concurrently when several audits run in a batch.
func (f *File) GetSiteConfig(site string) SiteConfig {
	result := f.Defaults
	result.Headers = maps.Clone(f.Defaults.Headers)

	siteConfig, ok := f.Sites[site]
	if !ok {
		return result
	}

	if siteConfig.APIKey != "" {
		result.APIKey = siteConfig.APIKey
	}
	if siteConfig.PollIntervalSeconds != 0 {
		result.PollIntervalSeconds = siteConfig.PollIntervalSeconds
	}
	if siteConfig.SaveHistory != nil {
		result.SaveHistory = siteConfig.SaveHistory
	}
	if len(siteConfig.Headers) > 0 {
		if result.Headers == nil {
			result.Headers = make(map[string]string, len(siteConfig.Headers))
		}
		maps.Copy(result.Headers, siteConfig.Headers)
	}

	return result
}
