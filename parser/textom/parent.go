package textom

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Parent is a container node: root, paragraph, sentence or word. Which
// child types it accepts is decided by its model.
type Parent struct {
	kind     NodeType
	children NodeList

	NodeFields
}

func (p *Parent) Type() NodeType   { return p.kind }
func (p *Parent) NodeName() string { return ParentName }

// String is the concatenation of every child's text.
func (p *Parent) String() string {
	var b strings.Builder
	for _, child := range p.children {
		b.WriteString(child.String())
	}
	return b.String()
}

func (p *Parent) ValueOf() Value {
	v := Value{Type: p.kind}
	for _, child := range p.children {
		v.Children = append(v.Children, child.ValueOf())
	}
	return v
}

// Children returns a copy of the child list.
func (p *Parent) Children() NodeList {
	out := make(NodeList, len(p.children))
	copy(out, p.children)
	return out
}

func (p *Parent) Length() int { return len(p.children) }

func (p *Parent) Head() Node {
	if len(p.children) == 0 {
		return nil
	}
	return p.children[0]
}

func (p *Parent) Tail() Node {
	if len(p.children) == 0 {
		return nil
	}
	return p.children[len(p.children)-1]
}

// Append adds child as the last child of p.
func (p *Parent) Append(child Node) error {
	if err := p.validate(child); err != nil {
		return err
	}
	p.insertAt(len(p.children), child)
	return nil
}

// Prepend adds child as the first child of p.
func (p *Parent) Prepend(child Node) error {
	if err := p.validate(child); err != nil {
		return err
	}
	p.insertAt(0, child)
	return nil
}

// InsertBefore adds child directly before ref, which must be a child of p.
func (p *Parent) InsertBefore(child, ref Node) error {
	i := p.children.Contains(ref)
	if i == -1 {
		return errors.Errorf("reference %s is not a child of %s", nodeTypeOf(ref), p.kind)
	}
	if err := p.validate(child); err != nil {
		return err
	}
	if sameNode(child, ref) {
		return nil
	}
	p.insertAt(i, child)
	return nil
}

// RemoveChild detaches child from p.
func (p *Parent) RemoveChild(child Node) (Node, error) {
	i := p.children.Contains(child)
	if i == -1 {
		return nil, errors.Errorf("%s is not a child of %s", nodeTypeOf(child), p.kind)
	}
	return p.removeAt(i), nil
}

func (p *Parent) validate(child Node) error {
	if child == nil {
		return errors.Errorf("cannot insert a nil node into %s", p.kind)
	}
	if sameNode(child, p) {
		return errors.WithStack(&HierarchyError{Parent: p.kind, Child: child.Type()})
	}
	if p.model == nil || !p.model.allows(p.kind, child.Type()) {
		var allowed []NodeType
		if p.model != nil {
			allowed = p.model.AllowedChildTypes(p.kind)
		}
		return errors.WithStack(&HierarchyError{Parent: p.kind, Child: child.Type(), Allowed: allowed})
	}
	return nil
}

// insertAt places child at index i, detaching it from any previous parent.
// The index refers to p's children before the detach.
func (p *Parent) insertAt(i int, child Node) {
	f := child.fields()
	if f.parent != nil {
		if f.parent == p {
			if j := p.children.indexOfFields(f); j != -1 && j < i {
				i--
			}
		}
		f.parent.removeAt(f.parent.children.indexOfFields(f))
	}

	p.children.WedgeIn(i, child)
	f.parent = p
	p.relink()

	if p.model != nil {
		p.model.log.WithFields(logrus.Fields{
			"parent": p.kind,
			"child":  child.Type(),
			"index":  i,
		}).Debug("[TREE]: inserted")
	}
}

func (p *Parent) removeAt(i int) Node {
	node := p.children.Remove(i)
	if node == nil {
		return nil
	}
	f := node.fields()
	f.parent = nil
	f.prev = nil
	f.next = nil
	p.relink()
	return node
}

func (p *Parent) relink() {
	for i, child := range p.children {
		f := child.fields()
		f.prev = nil
		f.next = nil
		if i > 0 {
			f.prev = p.children[i-1]
		}
		if i < len(p.children)-1 {
			f.next = p.children[i+1]
		}
	}
}

func nodeTypeOf(n Node) NodeType {
	if n == nil {
		return "<nil>"
	}
	return n.Type()
}
