package project

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corsettigyg/astronomer-cosmos/config"
	filefetcher "github.com/corsettigyg/astronomer-cosmos/config/fetcher/file"
	yamlparser "github.com/corsettigyg/astronomer-cosmos/config/parser/yaml"
	yamlrenderer "github.com/corsettigyg/astronomer-cosmos/config/renderer/yaml"
	"github.com/corsettigyg/astronomer-cosmos/logging"
	"github.com/corsettigyg/astronomer-cosmos/projectkeys"
)

// ErrProjectFileMissing is returned when dbt_project.yml does not exist in the project directory.
var ErrProjectFileMissing = errors.New("dbt project file not found")

// ErrEmptyProjectDir is returned when a rewriter is configured without a project directory.
var ErrEmptyProjectDir = errors.New("project directory must not be empty")

// Config holds the configuration for a project rewriter. Keys is the default
// override set applied by Apply; callers using Rewrite directly pass their
// own keys instead.
type Config struct {
	ProjectDir string
	Keys       map[string]string
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return ErrEmptyProjectDir
	}

	return nil
}

// Rewriter merges runtime project-key overrides into a project's
// dbt_project.yml. It reads the file through a DataFetcher, parses it,
// merges, renders, and writes the result back atomically. A rewriter assumes
// exclusive access to the project file for the duration of Rewrite.
type Rewriter struct {
	cfg      Config
	fetcher  config.DataFetcher
	parser   config.Parser
	renderer config.Renderer
	logger   *slog.Logger
}

// NewRewriter creates a Rewriter for the configured project directory.
// A nil parser or renderer falls back to the YAML implementations.
func NewRewriter(cfg Config, parser config.Parser, renderer config.Renderer) (*Rewriter, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if parser == nil {
		parser = yamlparser.NewParser()
	}

	if renderer == nil {
		renderer = yamlrenderer.NewRenderer()
	}

	fetcher, err := filefetcher.NewFetcher(filepath.Join(cfg.ProjectDir, ProjectFileName))()
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		cfg:      cfg,
		fetcher:  fetcher,
		parser:   parser,
		renderer: renderer,
		logger:   logging.ForSubsystem(slog.Default(), "project"),
	}, nil
}

// Rewrite applies the dotted-path overrides to dbt_project.yml and persists
// the merged document. Empty keys are a no-op. Any error is fatal for the
// current run: a partially-applied configuration could make dbt silently use
// wrong settings, so nothing is written unless the whole merge succeeded.
func (r *Rewriter) Rewrite(keys map[string]string) error {
	if len(keys) == 0 {
		return nil
	}

	path := filepath.Join(r.cfg.ProjectDir, ProjectFileName)

	data, err := r.fetcher.Fetch()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrProjectFileMissing, path)
		}

		return err
	}

	doc := projectkeys.Document{}

	if len(bytes.TrimSpace(data)) > 0 {
		err = r.parser.Parse(data, &doc, "")
		if err != nil {
			return fmt.Errorf("parsing %q: %w", path, err)
		}
	}

	if doc == nil {
		doc = projectkeys.Document{}
	}

	r.logger.Info("applying project keys",
		slog.String("path", path), slog.Int("count", len(keys)))

	merged, err := projectkeys.MergeKeys(doc, keys)
	if err != nil {
		return err
	}

	out, err := r.renderer.Render(merged)
	if err != nil {
		return err
	}

	err = writeFileAtomic(path, out)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	r.logger.Info("project file rewritten", slog.String("path", path))

	return nil
}

// Apply rewrites the project file with the keys configured on the rewriter.
// With no configured keys it is a no-op; it exists so DI consumers can wire
// the key set through the module options instead of carrying it to every
// Rewrite call.
func (r *Rewriter) Apply() error {
	return r.Rewrite(r.cfg.Keys)
}

// ApplyProjectKeys rewrites the dbt_project.yml inside projectDir with the
// given dotted-path overrides using the default YAML parser and renderer.
func ApplyProjectKeys(projectDir string, keys map[string]string) error {
	if len(keys) == 0 {
		return nil
	}

	rewriter, err := NewRewriter(Config{ProjectDir: projectDir}, nil, nil)
	if err != nil {
		return err
	}

	return rewriter.Rewrite(keys)
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it over path, so readers never observe a torn write. The mode of an
// existing file at path is preserved on the replacement.
func writeFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if stat, err := os.Stat(path); err == nil {
		mode = stat.Mode().Perm()
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return err
	}

	err = tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	err = os.Chmod(tmp.Name(), mode)
	if err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		_ = os.Remove(tmp.Name())

		return err
	}

	return nil
}
