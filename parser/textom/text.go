package textom

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Text is a leaf node holding a string value. Variants such as white space,
// punctuation or link nodes are Text with a different kind.
type Text struct {
	value string
	kind  NodeType
	// node is the variant built on this Text, handed to change handlers.
	node Node

	NodeFields
}

func (t *Text) Type() NodeType   { return t.kind }
func (t *Text) NodeName() string { return TextName }
func (t *Text) String() string   { return t.value }

func (t *Text) ValueOf() Value {
	return Value{Type: t.kind, Value: t.value}
}

// Bind records n as the node variant that embeds t. Change handlers
// receive n instead of t.
func (t *Text) Bind(n Node) {
	t.node = n
}

// SetValue replaces the text and returns the previous value. Change
// handlers registered for the node's type run before SetValue returns.
func (t *Text) SetValue(value string) string {
	prev := t.value
	t.value = value
	if t.model == nil {
		return prev
	}

	t.model.log.WithFields(logrus.Fields{
		"type": t.kind,
		"from": prev,
		"to":   value,
	}).Debug("[TEXT]: changed")

	n := t.node
	if n == nil {
		n = t
	}
	t.model.notify(t.kind, n, prev)
	return prev
}

// Split moves the value before position into a new node of the same type,
// inserted before t when t has a parent. Position is a byte offset; it is
// moved back to the start of the character it falls in. The new node is
// built through the model's registry so variants keep their behaviour.
func (t *Text) Split(position int) (CharacterData, error) {
	if t.model == nil {
		return nil, errors.New("cannot split a text node without a model")
	}
	if position < 0 {
		position = 0
	}
	if position > len(t.value) {
		position = len(t.value)
	}
	for position > 0 && position < len(t.value) && !utf8.RuneStart(t.value[position]) {
		position--
	}

	n, err := t.model.Create(t.kind, t.value[:position])
	if err != nil {
		return nil, errors.Wrapf(err, "could not split %s", t.kind)
	}
	head, ok := n.(CharacterData)
	if !ok {
		return nil, errors.Errorf("constructor for %s did not return a text node", t.kind)
	}

	t.SetValue(t.value[position:])

	if t.parent != nil {
		i := t.parent.children.indexOfFields(&t.NodeFields)
		t.parent.insertAt(i, head)
	}
	return head, nil
}
