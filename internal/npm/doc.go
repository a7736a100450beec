// Package npm locates installed npm packages on disk. It implements the
// Node-style resolution walk (probing node_modules in the start directory and
// each parent) with a switch for preserving or following symlinks, and a
// syntactic validity check for package names.
package npm
