package lint

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/veclint/veclint/pkg/svg"
)

// Process runs a set of configured rule instances against one document and
// reduces their diagnostics to a terminal verdict.
//
// Instances run concurrently and independently; none may block on
// another's completion. The process leaves StatePending exactly once,
// after every instance has completed, and no diagnostic is accepted after
// that point. There is no cancellation primitive: a rule that never
// returns hangs the process, which is a documented limitation of rule
// authorship rather than a supported mode.
type Process struct {
	doc       *svg.Document
	instances []Instance
	sink      *sink
	logger    *slog.Logger

	mu    sync.Mutex
	state State

	start sync.Once
	done  chan struct{}
}

// ProcessOption configures a Process.
type ProcessOption func(*Process)

// WithLogger injects the logger used for internal debug events, such as
// diagnostics dropped after completion. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ProcessOption {
	return func(p *Process) { p.logger = logger }
}

// NewProcess creates a lint process for the document and rule instances.
// The configuration behind the instances must not change once the process
// starts. Evaluation does not begin until Start or Wait is called.
func NewProcess(doc *svg.Document, instances []Instance, opts ...ProcessOption) *Process {
	p := &Process{
		doc:       doc,
		instances: instances,
		state:     StatePending,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.sink = newSink(p.logger)
	return p
}

// Start launches every rule instance in its own goroutine and returns
// immediately. Calling Start more than once is a no-op.
func (p *Process) Start() {
	p.start.Do(func() { go p.run() })
}

// Wait starts the process if needed, blocks until every instance has
// completed, and returns the terminal state.
func (p *Process) Wait() State {
	p.Start()
	<-p.done
	return p.State()
}

// Done returns a channel closed exactly once, after every rule instance
// has completed and the terminal state is set. Observers may read State
// and Diagnostics as soon as it closes.
func (p *Process) Done() <-chan struct{} { return p.done }

// State returns the current state. It is StatePending until Done closes.
func (p *Process) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Diagnostics returns a copy of the diagnostics accumulated so far. After
// Done closes the set is final.
func (p *Process) Diagnostics() []Diagnostic {
	return p.sink.diagnostics()
}

func (p *Process) run() {
	var wg sync.WaitGroup
	for _, inst := range p.instances {
		wg.Add(1)
		go func(inst Instance) {
			defer wg.Done()
			p.evaluate(inst)
		}(inst)
	}
	wg.Wait()

	// Terminal transition. Sealing the sink before deriving the state
	// guarantees no diagnostic lands after the verdict.
	p.sink.close()

	p.mu.Lock()
	p.state = stateOf(p.sink.diagnostics())
	p.mu.Unlock()

	close(p.done)
}

// evaluate runs one instance, converting panics and returned errors into
// exception diagnostics so a broken rule cannot take down the process or
// leave it pending forever.
func (p *Process) evaluate(inst Instance) {
	r := p.sink.reporter(inst.Rule)
	defer func() {
		if rec := recover(); rec != nil {
			r.Exception(fmt.Errorf("rule %s panicked: %v", inst.Rule, rec))
		}
	}()

	if err := inst.Run(r, p.doc); err != nil {
		r.Exception(err)
	}
}
