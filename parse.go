package parsec

import "log/slog"

// Parse runs `p` on `src`.  It doesn't require `p` to consume all of
// the input, wrap it with EntireInput for that.
func Parse[T any](p Parser[T], src string, opts ...Option) Result[T] {
	return p(NewInput(src, opts...))
}

// Build returns a function that parses whole strings with `p`,
// reporting trailing input as `end_of_input_expected`
func Build[T any](p Parser[T], opts ...Option) func(string) (T, error) {
	whole := EntireInput(p)
	return func(src string) (T, error) {
		return Parse(whole, src, opts...).Get()
	}
}

// Named gives `p` a name that is attached to the errors it creates
// that don't have one yet.  When the `parser.trace` setting is
// enabled, entering and leaving named parsers is logged at debug
// level.
func Named[T any](name string, p Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		if in.env.trace {
			in.env.logger.Debug("enter",
				slog.String("production", name),
				slog.Int("line", in.loc.Line),
				slog.Int("column", in.loc.Column))
		}
		r := p(in)
		if in.env.trace {
			end := r.rest.loc
			if !r.Ok() {
				end = r.err.Location
			}
			in.env.logger.Debug("leave",
				slog.String("production", name),
				slog.Bool("accepted", r.Ok()),
				slog.Int("line", end.Line),
				slog.Int("column", end.Column))
		}
		if !r.Ok() && r.err.Production == "" {
			err := *r.err
			err.Production = name
			return Reject[T](&err)
		}
		return r
	}
}
