// Package conf resolves placeholder expressions embedded in JSON-shaped
// configuration documents.
//
// A document is flattened into a map of dotted/bracketed paths to scalar
// values ([Flatten]), every value containing a placeholder is rewritten until
// fully concrete ([Resolver.Resolve]), and the result is folded back into the
// original nested shape ([Unflatten]).
//
// Three placeholder grammars are recognized, in priority order:
//
//	${some.key}   internal reference to another key (shorthand or full path)
//	$(command)    shell command substitution (captured stdout)
//	$NAME         environment variable reference
//
// Internal references may name a key by any full trailing segment sequence:
// "tags" resolves to "build.tags" when unambiguous. A reference of the form
// ${path.join(sep)} concatenates the scalar array at path with sep between
// elements.
//
// Resolution is single-threaded, synchronous, and depth-first. Reference
// cycles are detected against the session's resolution stack and reported
// with the full discovery-ordered chain. All failures abort the run: the
// engine never produces a partially resolved document.
package conf
