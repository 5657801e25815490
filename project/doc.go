// Package project handles the on-disk layout of a dbt project: locating and
// rewriting dbt_project.yml, detecting package dependencies, and preparing
// temporary project copies (symlinks, installed packages, manifest, partial
// parse artifacts) for an isolated dbt invocation.
//
// The Rewriter ties the pieces together: it fetches dbt_project.yml through
// the config seams, merges runtime overrides into it with the projectkeys
// package, and writes the result back atomically so a crashed run never
// leaves a half-written project file behind.
package project
