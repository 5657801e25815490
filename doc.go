// Package cosmos turns runtime settings from a workflow orchestrator into
// dbt project configuration.
//
// A ProjectConfig describes where the dbt project lives and which dotted-path
// project keys should be rewritten into its dbt_project.yml before dbt runs.
// The heavy lifting is split across subpackages:
//
//   - projectkeys: pure key-path merging with value coercion
//   - config: parser/fetcher/renderer seams around the merge
//   - project: on-disk project layout and the rewriter, with Fx wiring
//   - logging: structured JSON logging via log/slog
package cosmos
