package cosmos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corsettigyg/astronomer-cosmos/project"
)

// ErrNoProjectSource is returned when neither a dbt project path nor a
// manifest path with a project name is configured.
var ErrNoProjectSource = errors.New("either a dbt project path or a manifest path with a project name is required")

// ErrManifestNotFound is returned when a configured manifest path does not exist.
var ErrManifestNotFound = errors.New("manifest file not found")

// ProjectConfig describes one dbt project and the runtime overrides applied
// to it before execution. ProjectKeys values are raw strings: the host
// orchestrator usually renders templates into them ("{{ ds }}", parameter
// references) before the rewrite happens, and coercion into richer YAML
// types is handled by the projectkeys package during the merge.
type ProjectConfig struct {
	DbtProjectPath string
	ProjectName    string
	ManifestPath   string
	ProjectKeys    map[string]string
	DbtVars        map[string]string
	EnvVars        map[string]string
}

// NewProjectConfig creates a ProjectConfig for the dbt project at
// dbtProjectPath. The path may be empty when the project is described by a
// manifest instead (see WithManifestPath and WithProjectName). When no
// project name is set it is inferred from the path base.
func NewProjectConfig(dbtProjectPath string, opts ...Option) *ProjectConfig {
	cfg := &ProjectConfig{DbtProjectPath: dbtProjectPath}

	for _, apply := range opts {
		apply(cfg)
	}

	if cfg.ProjectName == "" && cfg.DbtProjectPath != "" {
		cfg.ProjectName = filepath.Base(cfg.DbtProjectPath)
	}

	return cfg
}

// Validate checks that the configuration names a usable project source:
// a project directory containing dbt_project.yml, or a manifest path plus an
// explicit project name. A configured manifest path must exist.
func (c *ProjectConfig) Validate() error {
	if c.DbtProjectPath == "" && (c.ManifestPath == "" || c.ProjectName == "") {
		return ErrNoProjectSource
	}

	if c.DbtProjectPath != "" {
		path := filepath.Join(c.DbtProjectPath, project.ProjectFileName)

		_, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %s", project.ErrProjectFileMissing, path)
		}
	}

	if c.ManifestPath != "" {
		_, err := os.Stat(c.ManifestPath)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrManifestNotFound, c.ManifestPath)
		}
	}

	return nil
}

// ApplyKeys rewrites the project's dbt_project.yml with the configured
// ProjectKeys. Without keys it is a no-op; with keys but no project
// directory it fails, since a manifest-only project has no file to rewrite.
func (c *ProjectConfig) ApplyKeys() error {
	if len(c.ProjectKeys) == 0 {
		return nil
	}

	if c.DbtProjectPath == "" {
		return fmt.Errorf("%w: project keys require a dbt project path", ErrNoProjectSource)
	}

	return project.ApplyProjectKeys(c.DbtProjectPath, c.ProjectKeys)
}
