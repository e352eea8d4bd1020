package vhdl

import (
	"fmt"

	"github.com/katalvlaran/hwir/graph"
	"github.com/katalvlaran/hwir/node"
)

// signalize implements spec.md §4.H's mandatory signalization pass: for
// every instance port on comp (including port-array elements, each grown
// onto the instance by Instance.AppendArray as an individually named
// "base[i]" Port object), allocate a fresh component-owned signal and
// re-route every edge incident on the port through it.
//
// A port's type already references live instance-local generic nodes (its
// width Parameter/Expression, rebound at Instantiate time and possibly
// re-driven afterward by graph.Connect), so the signal is built directly
// over port.Type() with no further rebinding — the signal and the port it
// mirrors stay type-equal for the identity mapper graph.Connect attaches.
func signalize(comp *graph.Component) error {
	for _, inst := range comp.Instances() {
		for _, port := range inst.Ports() {
			if err := signalizePort(comp, inst, port); err != nil {
				return fmt.Errorf("vhdl.signalize(%q): instance %q: %w", comp.Name(), inst.Name(), err)
			}
		}
	}
	return nil
}

func signalizePort(comp *graph.Component, inst *graph.Instance, port *node.Port) error {
	sigName := fmt.Sprintf("%s_%s", sanitize(inst.Name()), sanitize(port.Name()))
	sig := node.NewSignal(sigName, port.Type(), port.Domain())
	if err := comp.Add(sig); err != nil {
		return fmt.Errorf("signal %q: %w", sigName, err)
	}

	if in := port.InEdge(); in != nil {
		other := in.Src
		if err := rewire(port, other, in); err != nil {
			return err
		}
		if _, _, err := graph.Connect(sig, other); err != nil {
			return fmt.Errorf("signal %q <- %q: %w", sigName, other.Name(), err)
		}
		if _, _, err := graph.Connect(port, sig); err != nil {
			return fmt.Errorf("port %q <- signal %q: %w", port.Name(), sigName, err)
		}
		return nil
	}

	outs := port.OutEdges()
	if len(outs) == 0 {
		return nil
	}
	for _, out := range outs {
		if err := rewire(port, out.Dst, out); err != nil {
			return err
		}
	}
	if _, _, err := graph.Connect(sig, port); err != nil {
		return fmt.Errorf("signal %q <- port %q: %w", sigName, port.Name(), err)
	}
	for _, out := range outs {
		if _, _, err := graph.Connect(out.Dst, sig); err != nil {
			return fmt.Errorf("%q <- signal %q: %w", out.Dst.Name(), sigName, err)
		}
	}
	return nil
}

// rewire detaches e from both of its endpoints so the caller can replace it
// with a pair of edges routed through the new signal.
func rewire(a, b node.Node, e *node.Edge) error {
	if err := a.RemoveEdge(e); err != nil {
		return fmt.Errorf("rewire: %w", err)
	}
	if err := b.RemoveEdge(e); err != nil {
		return fmt.Errorf("rewire: %w", err)
	}
	return nil
}
