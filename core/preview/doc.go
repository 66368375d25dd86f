// Package preview carves a callable, syntactically self-contained block out
// of an extracted code string so it can be handed to a capability-restricted
// execution sandbox for rendering.
//
// The carving is lexical, built on core/scan: braces inside string literals
// and comments never confuse it. The sandbox itself is external to this
// module and is reached only through the [Runner] interface.
package preview
