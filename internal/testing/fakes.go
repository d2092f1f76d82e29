package testing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/imamik/kafka-topology/internal/provisioning"
)

// Call kinds recorded by fakes.
const (
	KindCreate  = "create"
	KindStart   = "start"
	KindExecute = "execute"
	KindDetach  = "detach"
	KindPut     = "put"
	KindGet     = "get"
)

// Call is one recorded interaction.
type Call struct {
	Node string
	Kind string
	Arg  string
}

func (c Call) String() string {
	return fmt.Sprintf("%s %s %s", c.Node, c.Kind, c.Arg)
}

// Recorder keeps an ordered log of calls across all fakes sharing it.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a call.
func (r *Recorder) Record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a copy of all recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Filter returns the calls of the given kind.
func (r *Recorder) Filter(kind string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CommandHandler scripts the answer to a command.
type CommandHandler func(command string) (*provisioning.ExecResult, error)

// FakeNode is an in-memory provisioning.Node.
type FakeNode struct {
	Name     string
	Recorder *Recorder

	mu        sync.Mutex
	files     map[string]string
	responses map[string]CommandHandler
	fallback  CommandHandler
}

// NewFakeNode creates a node whose commands succeed with empty output
// unless scripted otherwise.
func NewFakeNode(name string, rec *Recorder) *FakeNode {
	if rec == nil {
		rec = NewRecorder()
	}
	return &FakeNode{
		Name:      name,
		Recorder:  rec,
		files:     make(map[string]string),
		responses: make(map[string]CommandHandler),
	}
}

// OnCommand returns result whenever command is executed.
func (n *FakeNode) OnCommand(command string, result provisioning.ExecResult) *FakeNode {
	return n.HandleCommand(command, func(string) (*provisioning.ExecResult, error) {
		r := result
		return &r, nil
	})
}

// HandleCommand installs a handler for command.
func (n *FakeNode) HandleCommand(command string, h CommandHandler) *FakeNode {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.responses[command] = h
	return n
}

// HandleAll installs a handler for every command without a specific one.
func (n *FakeNode) HandleAll(h CommandHandler) *FakeNode {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fallback = h
	return n
}

// SetFile stores a file on the node without recording a call.
func (n *FakeNode) SetFile(path, content string) *FakeNode {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.files[path] = content
	return n
}

// File returns a stored file.
func (n *FakeNode) File(path string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	content, ok := n.files[path]
	return content, ok
}

// Hostname implements provisioning.Node.
func (n *FakeNode) Hostname() string {
	return n.Name
}

// Execute implements provisioning.Node.
func (n *FakeNode) Execute(_ context.Context, command string, opts provisioning.ExecOptions) (*provisioning.ExecResult, error) {
	kind := KindExecute
	if opts.Detach {
		kind = KindDetach
	}
	n.Recorder.Record(Call{Node: n.Name, Kind: kind, Arg: command})

	n.mu.Lock()
	h, ok := n.responses[command]
	if !ok {
		h = n.fallback
	}
	n.mu.Unlock()

	if h == nil {
		return &provisioning.ExecResult{}, nil
	}
	return h(command)
}

// PutFile implements provisioning.Node.
func (n *FakeNode) PutFile(_ context.Context, path, content string) error {
	n.Recorder.Record(Call{Node: n.Name, Kind: KindPut, Arg: path})
	n.SetFile(path, content)
	return nil
}

// GetFile implements provisioning.Node.
func (n *FakeNode) GetFile(_ context.Context, path string) (string, error) {
	n.Recorder.Record(Call{Node: n.Name, Kind: KindGet, Arg: path})
	content, ok := n.File(path)
	if !ok {
		return "", fmt.Errorf("%s: no such file on %s", path, n.Name)
	}
	return content, nil
}

// FakeFabric hands out FakeNodes by hostname.
type FakeFabric struct {
	Recorder  *Recorder
	CreateErr error
	StartErr  error

	mu      sync.Mutex
	nodes   map[string]*FakeNode
	specs   []provisioning.NodeSpec
	network string
	pulled  bool
}

// NewFakeFabric creates a fabric recording into rec.
func NewFakeFabric(rec *Recorder) *FakeFabric {
	if rec == nil {
		rec = NewRecorder()
	}
	return &FakeFabric{Recorder: rec, nodes: make(map[string]*FakeNode)}
}

// AddNode pre-creates the node returned for hostname.
func (f *FakeFabric) AddNode(hostname string) *FakeNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := NewFakeNode(hostname, f.Recorder)
	f.nodes[hostname] = n
	return n
}

// Node returns the node for hostname, if created.
func (f *FakeFabric) Node(hostname string) *FakeNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nodes[hostname]
}

// Specs returns the specs passed to CreateNodes.
func (f *FakeFabric) Specs() []provisioning.NodeSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]provisioning.NodeSpec(nil), f.specs...)
}

// StartedWith returns the arguments of the last StartAll call.
func (f *FakeFabric) StartedWith() (network string, pullImages bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.network, f.pulled
}

// CreateNodes implements provisioning.Fabric.
func (f *FakeFabric) CreateNodes(specs []provisioning.NodeSpec) ([]provisioning.Node, error) {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Hostname
	}
	f.Recorder.Record(Call{Node: "fabric", Kind: KindCreate, Arg: strings.Join(names, ",")})
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.mu.Lock()
	f.specs = append(f.specs, specs...)
	f.mu.Unlock()

	nodes := make([]provisioning.Node, len(specs))
	for i, s := range specs {
		n := f.Node(s.Hostname)
		if n == nil {
			n = f.AddNode(s.Hostname)
		}
		nodes[i] = n
	}
	return nodes, nil
}

// StartAll implements provisioning.Fabric.
func (f *FakeFabric) StartAll(_ context.Context, network string, pullImages bool) error {
	f.Recorder.Record(Call{Node: "fabric", Kind: KindStart, Arg: network})
	f.mu.Lock()
	f.network = network
	f.pulled = pullImages
	f.mu.Unlock()
	return f.StartErr
}
