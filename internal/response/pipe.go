package response

// Pipe composes an ordered list of transform functions over a value. Each
// stage receives the previous stage's output; an empty pipe is the
// identity.
type Pipe[T any] struct {
	fns []func(T) T
}

// NewPipe builds a pipe from the given stages.
func NewPipe[T any](fns ...func(T) T) *Pipe[T] {
	return &Pipe[T]{fns: fns}
}

// Use appends a stage and returns the pipe for chaining.
func (p *Pipe[T]) Use(fn func(T) T) *Pipe[T] {
	p.fns = append(p.fns, fn)
	return p
}

// Run applies every stage in order to initial and returns the result.
func (p *Pipe[T]) Run(initial T) T {
	result := initial
	for _, fn := range p.fns {
		result = fn(result)
	}
	return result
}

// RunThen applies every stage in order, then hands the result to done.
func (p *Pipe[T]) RunThen(initial T, done func(T)) {
	done(p.Run(initial))
}
