// Package globroots computes the set of filesystem locations a page-file
// scanner must be allowed and told to search. A project's page files can live
// in its own tree, in installed include packages, or in pre-built dist
// output; the resolver reconciles the scanner's allow-list with root-relative
// glob patterns, creating forwarding symlinks under node_modules/.pageroots
// when an include package is not otherwise reachable from the project root.
package globroots
