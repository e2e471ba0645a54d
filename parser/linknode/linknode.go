// Package linknode adds a link node to a TextOM model: a text node holding
// a URL-like string, whose parsed parts are kept in Data.
package linknode

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/wooorm/textom-link-node/parser/parselink"
	"github.com/wooorm/textom-link-node/parser/textom"
)

const (
	// LinkNodeType is the type of every link node.
	LinkNodeType textom.NodeType = "LinkNode"
	// LinkNodeConstant is the name LinkNodeType is exposed under on the
	// model and on every node.
	LinkNodeConstant = "LINK_NODE"
)

// ErrInvalidArgument is the cause of errors returned for missing input.
var ErrInvalidArgument = errors.New("invalid argument")

// Data holds the parsed parts of a link node's value.
type Data map[string]interface{}

// String returns the string part under key, or "".
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Int returns the integer part under key, or 0.
func (d Data) Int(key string) int {
	n, _ := d[key].(int)
	return n
}

// LinkNode is a text node whose Data mirrors the parse of its value.
type LinkNode struct {
	*textom.Text

	Data Data
}

// Attach registers the link node type on m. Attaching to a model that
// already has it does nothing.
func Attach(m *textom.Model) error {
	if m == nil {
		return errors.Wrap(ErrInvalidArgument, "`textom.Model` is not a valid object model for `Attach(model)`")
	}
	if m.Has(LinkNodeType) {
		return nil
	}

	if err := m.RegisterType(LinkNodeType, construct); err != nil {
		return errors.Wrap(err, "could not attach link node")
	}
	m.OnChange(LinkNodeType, func(n textom.Node, _ string) {
		if l, ok := n.(*LinkNode); ok {
			sync(l)
		}
	})
	m.Expose(LinkNodeConstant, LinkNodeType)
	m.RegisterChildType(textom.SentenceNode, LinkNodeType)

	m.Logger().WithField("type", LinkNodeType).Debug("[LINK]: attached")
	return nil
}

func construct(m *textom.Model, value string) textom.Node {
	t := m.NewTextOfType(LinkNodeType, "")
	l := &LinkNode{Text: t, Data: Data{}}
	t.Bind(l)
	if value != "" {
		t.SetValue(value)
	}
	return l
}

// New creates a link node on a model the link node type is attached to.
func New(m *textom.Model, value string) (*LinkNode, error) {
	if m == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "no model given to `New`")
	}
	n, err := m.Create(LinkNodeType, value)
	if err != nil {
		return nil, errors.Wrap(err, "link node is not attached to this model")
	}
	l, ok := n.(*LinkNode)
	if !ok {
		return nil, errors.Errorf("%s is registered to a different node", LinkNodeType)
	}
	return l, nil
}

// ValueOf returns the plain-data form of the node, with a copy of Data.
func (l *LinkNode) ValueOf() textom.Value {
	v := l.Text.ValueOf()
	if len(l.Data) > 0 {
		v.Data = make(map[string]interface{}, len(l.Data))
		for k, d := range l.Data {
			v.Data[k] = d
		}
	}
	return v
}

// IsAbsolute reports whether the link text starts with "//" or contains
// "://".
func (l *LinkNode) IsAbsolute() bool {
	link := l.String()
	return strings.HasPrefix(link, "//") || strings.Contains(link, "://")
}

// IsRelative is the negation of IsAbsolute.
func (l *LinkNode) IsRelative() bool {
	return !l.IsAbsolute()
}

// sync overwrites every part present in a fresh parse of l's value. Parts
// missing from the parse are left as they are. It runs on every change to
// the value, through the handler Attach registers.
func sync(l *LinkNode) {
	link := parselink.Parse(l.String())
	if l.Data == nil {
		l.Data = Data{}
	}
	for part, value := range link {
		l.Data[part] = value
	}

	if m := l.Model(); m != nil {
		m.Logger().WithFields(logrus.Fields{
			"href":     l.Data.String("href"),
			"protocol": l.Data.String("protocol"),
			"host":     l.Data.String("host"),
		}).Debug("[LINK]: synced")
	}
}
