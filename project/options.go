package project

// Option defines a function type for configuring a project rewriter.
type Option func(*Config)

// WithProjectDir sets the dbt project directory for the rewriter.
func WithProjectDir(dir string) Option {
	return func(cfg *Config) {
		cfg.ProjectDir = dir
	}
}

// WithKeys sets the dotted-path overrides the rewriter applies by default
// (see Rewriter.Apply).
func WithKeys(keys map[string]string) Option {
	return func(cfg *Config) {
		cfg.Keys = keys
	}
}
