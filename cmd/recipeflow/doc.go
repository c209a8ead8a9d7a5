// Package main hosts the recipeflow CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, sets up structured
// logging, and hands paths to the workflow package: convert runs the full
// pipeline, scan only reports recipe boundaries. Keep this package lean:
// behavior belongs in the internal packages, commands only surface it.
package main
