package cosmos

// Option defines a function type for applying project configuration options.
type Option func(*ProjectConfig)

// WithProjectName sets an explicit project name instead of inferring it from
// the project path.
func WithProjectName(name string) Option {
	return func(cfg *ProjectConfig) {
		cfg.ProjectName = name
	}
}

// WithManifestPath points the configuration at a previously generated
// manifest.json instead of (or in addition to) a project directory.
func WithManifestPath(path string) Option {
	return func(cfg *ProjectConfig) {
		cfg.ManifestPath = path
	}
}

// WithProjectKeys sets the dotted-path overrides rewritten into
// dbt_project.yml before dbt runs.
func WithProjectKeys(keys map[string]string) Option {
	return func(cfg *ProjectConfig) {
		cfg.ProjectKeys = keys
	}
}

// WithDbtVars sets the variables passed to dbt via --vars. They coexist with
// project keys: vars flow through the dbt command line while project keys
// rewrite the project file itself.
func WithDbtVars(vars map[string]string) Option {
	return func(cfg *ProjectConfig) {
		cfg.DbtVars = vars
	}
}

// WithEnvVars sets environment variables exported for the dbt invocation.
func WithEnvVars(env map[string]string) Option {
	return func(cfg *ProjectConfig) {
		cfg.EnvVars = env
	}
}
