package entities

// PolicyConfig is an immutable snapshot of all enforcement options. It is
// built at most once per engine; every field takes its permissive value
// when no external configuration is supplied.
type PolicyConfig struct {
	DisableDynamicCompile   bool
	DynamicCompileWhitelist []string
	LimitExtensions         bool
	AllowedExtensions       []string
	UntypedAllowed          bool
	SkipDefaultPackage      bool
}

// DefaultPolicy returns the all-permissive configuration.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{UntypedAllowed: true}
}

// Restrictive reports whether any enforcement flag is in its restrictive
// state. When false the enforcement pass is skipped entirely.
func (c PolicyConfig) Restrictive() bool {
	return c.DisableDynamicCompile || c.LimitExtensions || !c.UntypedAllowed || c.SkipDefaultPackage
}

// RawConfig is the external configuration mapping. Every key is optional;
// a nil field means "use the permissive default". The key names are the
// wire contract for configuration files.
type RawConfig struct {
	DisableDynamicCompile        *bool    `yaml:"disableDynamicCompile" json:"disableDynamicCompile,omitempty"`
	DynamicCompileWhiteList      []string `yaml:"dynamicCompileWhiteList" json:"dynamicCompileWhiteList,omitempty"`
	CompileStaticExtensions      []string `yaml:"compileStaticExtensions" json:"compileStaticExtensions,omitempty"`
	LimitCompileStaticExtensions *bool    `yaml:"limitCompileStaticExtensions" json:"limitCompileStaticExtensions,omitempty"`
	DefAllowed                   *bool    `yaml:"defAllowed" json:"defAllowed,omitempty"`
	SkipDefaultPackage           *bool    `yaml:"skipDefaultPackage" json:"skipDefaultPackage,omitempty"`
}

// PolicyFromRaw builds the immutable snapshot from an optional raw mapping.
// A nil mapping yields DefaultPolicy. List values are copied so later
// mutation of the raw mapping cannot leak into the snapshot.
func PolicyFromRaw(raw *RawConfig) PolicyConfig {
	cfg := DefaultPolicy()
	if raw == nil {
		return cfg
	}
	if raw.DisableDynamicCompile != nil {
		cfg.DisableDynamicCompile = *raw.DisableDynamicCompile
	}
	if len(raw.DynamicCompileWhiteList) > 0 {
		cfg.DynamicCompileWhitelist = append([]string(nil), raw.DynamicCompileWhiteList...)
	}
	if len(raw.CompileStaticExtensions) > 0 {
		cfg.AllowedExtensions = append([]string(nil), raw.CompileStaticExtensions...)
	}
	if raw.LimitCompileStaticExtensions != nil {
		cfg.LimitExtensions = *raw.LimitCompileStaticExtensions
	}
	if raw.DefAllowed != nil {
		cfg.UntypedAllowed = *raw.DefAllowed
	}
	if raw.SkipDefaultPackage != nil {
		cfg.SkipDefaultPackage = *raw.SkipDefaultPackage
	}
	return cfg
}
