package cosmos_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	cosmos "github.com/corsettigyg/astronomer-cosmos"
	"github.com/corsettigyg/astronomer-cosmos/config"
	yamlparser "github.com/corsettigyg/astronomer-cosmos/config/parser/yaml"
	yamlrenderer "github.com/corsettigyg/astronomer-cosmos/config/renderer/yaml"
	"github.com/corsettigyg/astronomer-cosmos/project"

	"go.uber.org/fx"
)

// Example_rewriteProjectFile demonstrates the complete flow: describe a dbt
// project with ProjectConfig, wire a named rewriter through Fx, and rewrite
// dbt_project.yml with runtime project keys.
func Example_rewriteProjectFile() {
	dir, err := os.MkdirTemp("", "cosmos-example-*")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	defer func() { _ = os.RemoveAll(dir) }()

	projectFile := filepath.Join(dir, project.ProjectFileName)

	err = os.WriteFile(projectFile, []byte("name: jaffle_shop\nversion: \"1.0.0\"\n"), 0o600)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Step 1: describe the project and the runtime overrides. In a real
	// deployment the values often contain orchestrator template output.
	projectConfig := cosmos.NewProjectConfig(dir, cosmos.WithProjectKeys(map[string]string{
		"models.jaffle_shop.materialized": "table",
		"models.jaffle_shop.tags":         `["nightly"]`,
	}))

	err = projectConfig.Validate()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Step 2: wire a named rewriter. The YAML parser and renderer are
	// provided once and shared by every rewriter module in the container.
	var rewriter *project.Rewriter

	app := fx.New(
		fx.NopLogger,
		fx.Provide(fx.Annotate(yamlparser.NewParser, fx.As(new(config.Parser)))),
		fx.Provide(fx.Annotate(yamlrenderer.NewRenderer, fx.As(new(config.Renderer)))),
		project.NewModule("rewriter", project.WithProjectDir(projectConfig.DbtProjectPath)),
		fx.Invoke(fx.Annotate(
			func(r *project.Rewriter) { rewriter = r },
			fx.ParamTags(`name:"rewriter"`),
		)),
	)

	err = app.Start(context.Background())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	defer func() { _ = app.Stop(context.Background()) }()

	// Step 3: apply the overrides and read one back.
	err = rewriter.Rewrite(projectConfig.ProjectKeys)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	data, err := os.ReadFile(projectFile)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var materialized string

	err = yamlparser.NewParser().Parse(data, &materialized, "models.jaffle_shop.materialized")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("materialized:", materialized)
	// Output:
	// materialized: table
}
