// Package internalcheck holds static policy tests over the library packages.
//
// The tests load the packages with golang.org/x/tools/go/packages and walk
// their syntax trees. This package has no exported API.
package internalcheck
