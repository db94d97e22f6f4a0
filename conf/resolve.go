package conf

import (
	"context"
	"log/slog"
	"os"
)

// DefaultMaxDepth is the default maximum depth of the resolution stack.
// Cycle detection rejects revisited keys; the depth limit additionally bounds
// acyclic chains pathological enough to be unusable.
const DefaultMaxDepth = 100

// maxPasses bounds the substitution passes over a single value. Cycle
// detection cannot see loops created outside the document (an environment
// variable whose value embeds its own reference, say), so a runaway rewrite
// that keeps growing the string must be cut off explicitly.
const maxPasses = 10000

// Option configures a Resolver.
type Option func(*Resolver)

// WithShellRunner replaces the shell command collaborator.
func WithShellRunner(run ShellRunner) Option {
	return func(r *Resolver) { r.run = run }
}

// WithEnvLookup replaces the environment variable collaborator.
func WithEnvLookup(lookup EnvLookup) Option {
	return func(r *Resolver) { r.env = lookup }
}

// WithUniqueMatch sets the shorthand ambiguity policy. When on (the default),
// a shorthand matching more than one key fails with [ErrAmbiguousKey]; when
// off, the first match in sorted key order wins.
func WithUniqueMatch(on bool) Option {
	return func(r *Resolver) { r.unique = on }
}

// WithHandlerRegistry replaces the recovery handler registry.
func WithHandlerRegistry(reg *HandlerRegistry) Option {
	return func(r *Resolver) { r.reg = reg }
}

// WithMaxDepth sets the maximum resolution stack depth.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) { r.maxDepth = depth }
}

// WithLogger sets the logger used for substitution tracing. Tracing is
// emitted at debug level on a channel distinct from any primary output and
// never alters resolution semantics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.log = logger }
}

// Resolver is one resolution session over a flattened document. It owns the
// document, the resolution stack, the memo set of resolved keys, and the
// recovery registry; independent sessions do not interfere.
type Resolver struct {
	flat     FlatConfig
	run      ShellRunner
	env      EnvLookup
	reg      *HandlerRegistry
	st       *stack
	done     map[string]struct{}
	log      *slog.Logger
	unique   bool
	maxDepth int
}

// NewResolver creates a resolution session over flat. The session mutates
// flat in place as values resolve.
func NewResolver(flat FlatConfig, opts ...Option) *Resolver {
	r := &Resolver{
		flat:     flat,
		run:      runShell,
		env:      os.LookupEnv,
		st:       newStack(),
		done:     make(map[string]struct{}),
		log:      slog.New(slog.DiscardHandler),
		unique:   true,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.reg == nil {
		r.reg = NewHandlerRegistry()
	}

	return r
}

// Flat returns the session's flattened document.
func (r *Resolver) Flat() FlatConfig { return r.flat }

// Resolve substitutes every placeholder in the document until none remain,
// or fails on the first fatal error. Re-running on a fully resolved document
// is a no-op. All failures abort the run; no partially resolved document is
// produced.
func (r *Resolver) Resolve(ctx context.Context) error {
	for _, key := range r.flat.Pending() {
		_, err := r.resolveAt(ctx, key)
		if err != nil {
			return err
		}
	}

	return nil
}

// Document resolves the session and unflattens the result back into the
// nested shape of the source document.
func (r *Resolver) Document(ctx context.Context) (any, error) {
	err := r.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return Unflatten(r.flat)
}

// resolveAt resolves the value stored at key, returning its final string
// form. Keys already resolved this session are reused without recomputation.
func (r *Resolver) resolveAt(ctx context.Context, key string) (string, error) {
	if _, ok := r.done[key]; ok {
		return formatScalar(r.flat[key]), nil
	}

	if r.st.contains(key) {
		cycle := &CycleError{Chain: r.st.path(), Back: key}

		return "", ErrCircularDependency.Wrap(cycle).
			With(slog.String("key", key))
	}

	if r.st.depth() >= r.maxDepth {
		return "", ErrMaxDepthExceeded.
			With(
				slog.String("key", key),
				slog.Int("depth", r.st.depth()),
				slog.Int("max_depth", r.maxDepth),
			)
	}

	value, ok := r.flat[key]
	if !ok {
		return "", ErrKeyNotFound.
			With(
				slog.String("key", key),
				slog.Any("suggestions", r.flat.Suggest(key)),
			)
	}

	s, isString := value.(string)
	if !isString {
		// Non-string scalars carry no placeholders.
		r.done[key] = struct{}{}

		return formatScalar(value), nil
	}

	r.st.push(key)
	defer r.st.pop()

	resolved, err := r.resolveString(ctx, s)
	if err != nil {
		return "", err
	}

	r.flat[key] = resolved
	r.done[key] = struct{}{}

	r.log.DebugContext(ctx, "resolved",
		slog.String("key", key),
		slog.String("value", resolved),
	)

	return resolved, nil
}

// resolveString substitutes placeholders in s until none remain. Internal
// references are fully resolved before any external (shell or environment)
// substitution is attempted. The scanner restarts from the top after every
// single substitution; a pass that leaves the string unchanged terminates
// the loop.
func (r *Resolver) resolveString(ctx context.Context, s string) (string, error) {
	// Phase 1: internal references.
	s, err := r.substituteLoop(ctx, s, func(s string) (Placeholder, bool) {
		return FindKind(s, KindJSONRef)
	})
	if err != nil {
		return "", err
	}

	// Phase 2: external substitution, rescanned by grammar priority so a
	// reference introduced by command output is still resolved internally.
	return r.substituteLoop(ctx, s, Find)
}

// substituteLoop repeatedly replaces the placeholder selected by find until
// none remains or a pass leaves the string unchanged. Exceeding the pass
// bound is fatal rather than silently leaving placeholders behind.
func (r *Resolver) substituteLoop(
	ctx context.Context,
	s string,
	find func(string) (Placeholder, bool),
) (string, error) {
	for pass := 0; ; pass++ {
		p, ok := find(s)
		if !ok {
			return s, nil
		}

		if pass >= maxPasses {
			return "", ErrMaxDepthExceeded.
				With(
					slog.Int("passes", pass),
					slog.String("payload", p.Payload),
				)
		}

		repl, err := r.substitute(ctx, p)
		if err != nil {
			return "", err
		}

		next := p.Splice(s, repl)
		if next == s {
			return s, nil
		}

		s = next
	}
}

// substitute produces the replacement text for one placeholder.
func (r *Resolver) substitute(ctx context.Context, p Placeholder) (string, error) {
	r.log.DebugContext(ctx, "substitute",
		slog.String("kind", p.Kind.String()),
		slog.String("payload", p.Payload),
	)

	switch p.Kind {
	case KindShellCommand:
		return r.run(ctx, p.Payload)

	case KindEnvVar:
		return r.lookupEnv(p.Payload)

	default:
		return r.resolveRef(ctx, p.Payload)
	}
}

// resolveRef dereferences an internal path expression, recursing depth-first
// into the referenced key. A failed lookup is first offered to the recovery
// registry (the array-join extension) before propagating.
func (r *Resolver) resolveRef(ctx context.Context, expr string) (string, error) {
	full, err := r.flat.ResolveKey(expr, r.unique)
	if err != nil {
		return r.reg.recover(ctx, r, expr, err)
	}

	repl, err := r.resolveAt(ctx, full)
	if err != nil {
		return "", ErrParentResolution.Wrap(err).
			With(slog.String("reference", expr))
	}

	return repl, nil
}

// lookupEnv reads an environment variable. A missing or empty variable is a
// fatal error.
func (r *Resolver) lookupEnv(name string) (string, error) {
	value, ok := r.env(name)
	if !ok || value == "" {
		return "", ErrEnvVarMissing.
			With(slog.String("name", name))
	}

	return value, nil
}
