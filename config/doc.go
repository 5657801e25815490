// Package config provides the ingestion and persistence seams around dbt
// project configuration.
//
// The package uses an interface-based design with five extension points:
//   - Parser: deserializes raw data into a config struct or document, with
//     path navigation support
//   - DataFetcher: retrieves raw config data (file, etc.)
//   - Renderer: serializes a document back to bytes for persistence
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// The key-path merger in the projectkeys package stays pure: it receives an
// already-parsed document and hands back a merged one. Everything touching
// bytes or disk goes through these interfaces instead, so the merge logic
// can be exercised without any I/O.
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a
// specific section within configuration files. Paths use dot (.) as the
// separator, the same notation dbt uses for nested project keys:
//
//	"models.my_project"              -> config["models"]["my_project"]
//	"models.my_project.materialized" -> three levels deep
//	""                               -> entire document
//
// # Example
//
// A typical usage pattern:
//
//	type SeedConfig struct {
//	    Enabled bool   `yaml:"enabled"`
//	    Schema  string `yaml:"schema"`
//	}
//
//	provider := config.Provider(&SeedConfig{}, "seeds.my_project")
//	cfg, err := provider(yamlparser.NewParser(), filefetcher.New("dbt_project.yml"))
package config
