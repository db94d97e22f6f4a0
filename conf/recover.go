package conf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Handler attempts to recover from a failed placeholder resolution. It
// receives the session, the failing path expression, and the original error;
// it returns the replacement text, or the error to propagate (which may be
// the original cause unchanged).
type Handler func(ctx context.Context, r *Resolver, expr string, cause error) (string, error)

// HandlerRegistry maps failure kinds to recovery handlers. A registry is
// constructed per session and consulted read-only during resolution; the
// first handler whose kind matches the failure is invoked.
type HandlerRegistry struct {
	entries []handlerEntry
}

type handlerEntry struct {
	kind *Error
	fn   Handler
}

// NewHandlerRegistry returns a registry populated with the default recovery
// handlers: the array-join reinterpretation of failed key lookups.
func NewHandlerRegistry() *HandlerRegistry {
	reg := &HandlerRegistry{}
	reg.Register(ErrKeyNotFound, joinHandler)

	return reg
}

// Register appends a handler for the given failure kind.
func (hr *HandlerRegistry) Register(kind *Error, fn Handler) {
	hr.entries = append(hr.entries, handlerEntry{kind: kind, fn: fn})
}

// recover dispatches cause to the first handler registered for its kind.
// Unhandled kinds propagate unchanged.
func (hr *HandlerRegistry) recover(
	ctx context.Context,
	r *Resolver,
	expr string,
	cause error,
) (string, error) {
	for _, entry := range hr.entries {
		if errors.Is(cause, entry.kind) {
			return entry.fn(ctx, r, expr, cause)
		}
	}

	return "", cause
}

// joinPattern recognizes the array-join extension: a path expression suffixed
// with ".join(sep)". The separator is everything between the parentheses,
// taken verbatim (it may be empty or contain dots).
var joinPattern = regexp.MustCompile(`^(.+)\.join\((.*)\)$`)

// joinHandler reinterprets a failed key lookup as an array-join request.
// A payload that does not carry the ".join(sep)" suffix propagates the
// original not-found error unchanged.
func joinHandler(ctx context.Context, r *Resolver, expr string, cause error) (string, error) {
	m := joinPattern.FindStringSubmatch(expr)
	if m == nil {
		return "", cause
	}

	return r.joinArray(ctx, m[1], m[2], cause)
}

// joinArray concatenates the string forms of the scalar array at base
// (shorthand or full path) with sep between elements, no leading or trailing
// separator. Elements are themselves resolved depth-first before joining.
func (r *Resolver) joinArray(
	ctx context.Context,
	base, sep string,
	cause error,
) (string, error) {
	stems, err := r.arrayStems(base)
	if err != nil {
		return "", err
	}

	switch {
	case len(stems) == 0:
		// No array under this name either; the original lookup failure
		// stands.
		return "", cause

	case len(stems) > 1 && r.unique:
		return "", ErrAmbiguousKey.
			With(
				slog.String("key", base),
				slog.Any("matches", stems),
			)
	}

	stem := stems[0]

	var elems []string

	for i := 0; ; i++ {
		key := fmt.Sprintf("%s[%d]", stem, i)

		_, ok := r.flat[key]
		if !ok {
			break
		}

		elem, err := r.resolveAt(ctx, key)
		if err != nil {
			return "", ErrParentResolution.Wrap(err).
				With(slog.String("reference", key))
		}

		elems = append(elems, elem)
	}

	if len(elems) == 0 {
		// The name exists but its direct children are not scalars.
		return "", ErrJoinNotArray.
			With(slog.String("key", stem))
	}

	return strings.Join(elems, sep), nil
}

// arrayStems returns the sorted full paths (up to and including base) whose
// keys continue with an array index, i.e. the candidate arrays a shorthand
// join target may name.
func (r *Resolver) arrayStems(base string) ([]string, error) {
	pattern, err := regexp.Compile(`(^|\.)` + regexp.QuoteMeta(base) + `\[`)
	if err != nil {
		return nil, ErrInvalidPath.Wrap(err).
			With(slog.String("key", base))
	}

	seen := make(map[string]struct{})

	for _, key := range r.flat.Keys() {
		loc := pattern.FindStringIndex(key)
		if loc == nil {
			continue
		}

		// Trim the trailing "[" to recover the stem path.
		seen[key[:loc[1]-1]] = struct{}{}
	}

	stems := make([]string, 0, len(seen))
	for stem := range seen {
		stems = append(stems, stem)
	}

	sort.Strings(stems)

	return stems, nil
}
