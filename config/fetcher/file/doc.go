// Package file provides a file-based DataFetcher implementation for the config package.
//
// Unlike a one-shot config loader, the Fetcher reads the file on every Fetch
// call. The project rewriter both reads and rewrites dbt_project.yml, so each
// fetch must observe the latest on-disk state.
package file
