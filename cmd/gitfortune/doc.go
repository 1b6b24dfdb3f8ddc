// Package main hosts the gitfortune CLI entrypoint and command graph.
//
// The root command reads the latest commit message (or stdin), scores every
// fortune in the corpus against it, and prints the best match. Subcommands
// cover configuration scaffolding and inspection of the corpus noise words.
//
// Keep this package lean: matching lives in internal/fortune, input
// acquisition in internal/commitmsg. Commands here only resolve
// configuration, wire dependencies, and render output.
package main
