// Package workspace discovers the local Maven projects that make up a
// multi-module source tree. It walks upward from a starting directory to
// find candidate workspace roots, loads every declared module beneath them
// into a per-call registry, and identifies the project corresponding to the
// starting directory. Everything is resolved from the local filesystem;
// remote repositories and artifact building are out of scope.
package workspace
