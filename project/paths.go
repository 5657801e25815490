package project

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	yamlparser "github.com/corsettigyg/astronomer-cosmos/config/parser/yaml"
)

// Well-known names inside a dbt project directory.
const (
	ProjectFileName        = "dbt_project.yml"
	ProfilesFileName       = "profiles.yml"
	TargetDirName          = "target"
	LogDirName             = "logs"
	ManifestFileName       = "manifest.json"
	PartialParseFileName   = "partial_parse.msgpack"
	PackageLockFileName    = "package-lock.yml"
	DefaultPackagesDirName = "dbt_packages"
)

// DependencyFileNames are the files dbt reads package dependencies from.
var DependencyFileNames = []string{"packages.yml", "dependencies.yml"}

// HasNonEmptyDependencies reports whether the project declares package
// dependencies via a non-empty packages.yml or dependencies.yml.
func HasNonEmptyDependencies(projectDir string) bool {
	for _, filename := range DependencyFileNames {
		stat, err := os.Stat(filepath.Join(projectDir, filename))
		if err == nil && stat.Size() > 0 {
			return true
		}
	}

	slog.Info("project has no dependency files",
		slog.String("project_dir", projectDir))

	return false
}

// PackagesInstallSubpath returns the sub path dbt installs packages into.
// dbt deps defaults to dbt_packages inside the project folder; users can
// override it with packages-install-path in dbt_project.yml. Any failure to
// read or parse the project file falls back to the default.
func PackagesInstallSubpath(projectDir string) string {
	data, err := os.ReadFile(filepath.Join(projectDir, ProjectFileName))
	if err != nil {
		return DefaultPackagesDirName
	}

	var cfg struct {
		PackagesInstallPath string `yaml:"packages-install-path"`
	}

	err = yamlparser.NewParser().Parse(data, &cfg, "")
	if err != nil {
		slog.Info("unable to read dbt project file",
			slog.String("project_dir", projectDir), slog.String("error", err.Error()))

		return DefaultPackagesDirName
	}

	if cfg.PackagesInstallPath == "" {
		return DefaultPackagesDirName
	}

	return cfg.PackagesInstallPath
}

// PartialParsePath returns the partial parse artifact path for a project
// directory.
func PartialParsePath(projectDir string) string {
	return filepath.Join(projectDir, TargetDirName, PartialParseFileName)
}

// CopyPackages copies the installed dbt packages folder and the package
// lockfile from sourceDir into targetDir. Entries that do not exist in the
// source are skipped: a project without installed packages is not an error.
func CopyPackages(sourceDir, targetDir string) error {
	paths := []string{PackagesInstallSubpath(sourceDir), PackageLockFileName}

	for _, relative := range paths {
		src := filepath.Join(sourceDir, relative)
		dst := filepath.Join(targetDir, relative)

		stat, err := os.Stat(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return fmt.Errorf("stat %q: %w", src, err)
		}

		if stat.IsDir() {
			err = copyFS(dst, os.DirFS(src))
		} else {
			err = copyFile(src, dst)
		}

		if err != nil {
			return fmt.Errorf("copying %q: %w", relative, err)
		}
	}

	return nil
}

// CopyManifest copies a previously generated manifest.json into the target
// folder of the given project directory. An empty or missing source path is
// a no-op.
func CopyManifest(manifestPath, projectDir string) error {
	if manifestPath == "" {
		return nil
	}

	_, err := os.Stat(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %q: %w", manifestPath, err)
	}

	targetDir := filepath.Join(projectDir, TargetDirName)

	err = os.MkdirAll(targetDir, 0o755)
	if err != nil {
		return fmt.Errorf("creating %q: %w", targetDir, err)
	}

	slog.Info("copying manifest", slog.String("source", manifestPath))

	return copyFile(manifestPath, filepath.Join(targetDir, ManifestFileName))
}

// CreateSymlinks links every project entry into tmpDir, skipping logs,
// target, the package lockfile, and profiles.yml. When ignorePackages is set
// the installed packages folder is skipped too, since a following dbt deps
// run will recreate it.
func CreateSymlinks(projectDir, tmpDir string, ignorePackages bool) error {
	ignored := map[string]bool{
		LogDirName:          true,
		TargetDirName:       true,
		PackageLockFileName: true,
		ProfilesFileName:    true,
	}
	if ignorePackages {
		ignored[PackagesInstallSubpath(projectDir)] = true
	}

	entries, err := os.ReadDir(projectDir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", projectDir, err)
	}

	for _, entry := range entries {
		if ignored[entry.Name()] {
			continue
		}

		err = os.Symlink(filepath.Join(projectDir, entry.Name()), filepath.Join(tmpDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("linking %q: %w", entry.Name(), err)
		}
	}

	return nil
}

// copyFS mirrors os.CopyFS (Go 1.23+) for directories of regular files, so
// the package builds with older toolchains.
func copyFS(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o777)
		}

		if !d.Type().IsRegular() {
			return fmt.Errorf("copying %q: non-regular file", path)
		}

		in, err := src.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = in.Close() }()

		info, err := d.Info()
		if err != nil {
			return err
		}

		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666|info.Mode()&0o777) // #nosec G304
		if err != nil {
			return err
		}

		_, err = io.Copy(out, in)
		if err != nil {
			_ = out.Close()

			return err
		}

		return out.Close()
	})
}

func copyFile(src, dst string) error {
	err := os.MkdirAll(filepath.Dir(dst), 0o755)
	if err != nil {
		return err
	}

	in, err := os.Open(src) // #nosec G304 -- paths derive from caller-owned project dirs
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if err != nil {
		_ = out.Close()

		return err
	}

	return out.Close()
}
