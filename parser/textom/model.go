package textom

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Constructor builds a node of a registered type from its initial value.
// Parent types ignore the value.
type Constructor func(m *Model, value string) Node

// Model is a TextOM object model: the registry of node types, the constants
// shared by every node it creates, and the rules for which child types each
// container accepts.
type Model struct {
	types     map[NodeType]Constructor
	constants map[string]NodeType
	allowed   map[NodeType][]NodeType
	handlers  map[NodeType][]ChangeHandler
	log       logrus.FieldLogger
}

type Option func(*Model)

// WithLogger sets the logger used for tree and text debug output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// New returns a model with the built-in root, paragraph, sentence, word,
// text, white space and punctuation types.
func New(opts ...Option) *Model {
	m := &Model{
		types:     map[NodeType]Constructor{},
		constants: map[string]NodeType{},
		allowed:   map[NodeType][]NodeType{},
		handlers:  map[NodeType][]ChangeHandler{},
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	for name, t := range map[string]NodeType{
		"ROOT_NODE":        RootNode,
		"PARAGRAPH_NODE":   ParagraphNode,
		"SENTENCE_NODE":    SentenceNode,
		"WORD_NODE":        WordNode,
		"TEXT_NODE":        TextNode,
		"WHITE_SPACE_NODE": WhiteSpaceNode,
		"PUNCTUATION_NODE": PunctuationNode,
	} {
		m.Expose(name, t)
	}

	for _, t := range []NodeType{RootNode, ParagraphNode, SentenceNode, WordNode} {
		kind := t
		m.types[kind] = func(m *Model, _ string) Node { return m.newParent(kind) }
	}
	for _, t := range []NodeType{TextNode, WhiteSpaceNode, PunctuationNode} {
		kind := t
		m.types[kind] = func(m *Model, value string) Node { return m.NewTextOfType(kind, value) }
	}

	m.allowed[RootNode] = []NodeType{ParagraphNode, WhiteSpaceNode}
	m.allowed[ParagraphNode] = []NodeType{SentenceNode, WhiteSpaceNode}
	m.allowed[SentenceNode] = []NodeType{WordNode, WhiteSpaceNode, PunctuationNode}
	m.allowed[WordNode] = []NodeType{TextNode, PunctuationNode}

	return m
}

// Logger returns the logger the model writes to.
func (m *Model) Logger() logrus.FieldLogger { return m.log }

// Has reports whether a node type is registered.
func (m *Model) Has(t NodeType) bool {
	_, ok := m.types[t]
	return ok
}

// RegisterType adds a node type to the registry. Registering a type twice
// is an error.
func (m *Model) RegisterType(t NodeType, c Constructor) error {
	if c == nil {
		return errors.Errorf("no constructor given for %s", t)
	}
	if m.Has(t) {
		return errors.Errorf("node type %s is already registered", t)
	}
	m.types[t] = c
	m.log.WithField("type", t).Debug("[MODEL]: registered node type")
	return nil
}

// Create builds a node of a registered type.
func (m *Model) Create(t NodeType, value string) (Node, error) {
	c, ok := m.types[t]
	if !ok {
		return nil, errors.Errorf("unknown node type %s", t)
	}
	return c(m, value), nil
}

// Expose makes a type constant available under name on the model and on
// every node of the model.
func (m *Model) Expose(name string, t NodeType) {
	m.constants[name] = t
}

func (m *Model) Constant(name string) (NodeType, bool) {
	t, ok := m.constants[name]
	return t, ok
}

// RegisterChildType permits child under container. Permitting the same
// pair twice has no effect.
func (m *Model) RegisterChildType(container, child NodeType) {
	if m.allows(container, child) {
		return
	}
	m.allowed[container] = append(m.allowed[container], child)
	m.log.WithFields(logrus.Fields{
		"container": container,
		"child":     child,
	}).Debug("[MODEL]: registered child type")
}

// OnChange registers h to run whenever the value of a text node of type t
// changes, through SetValue or Split.
func (m *Model) OnChange(t NodeType, h ChangeHandler) {
	m.handlers[t] = append(m.handlers[t], h)
}

func (m *Model) notify(t NodeType, n Node, previous string) {
	for _, h := range m.handlers[t] {
		h(n, previous)
	}
}

// AllowedChildTypes returns a copy of the child types container accepts.
func (m *Model) AllowedChildTypes(container NodeType) []NodeType {
	out := make([]NodeType, len(m.allowed[container]))
	copy(out, m.allowed[container])
	return out
}

func (m *Model) allows(container, child NodeType) bool {
	for _, t := range m.allowed[container] {
		if t == child {
			return true
		}
	}
	return false
}

func (m *Model) newParent(kind NodeType) *Parent {
	return &Parent{kind: kind, NodeFields: NodeFields{model: m}}
}

func (m *Model) NewRoot() *Parent      { return m.newParent(RootNode) }
func (m *Model) NewParagraph() *Parent { return m.newParent(ParagraphNode) }
func (m *Model) NewSentence() *Parent  { return m.newParent(SentenceNode) }
func (m *Model) NewWord() *Parent      { return m.newParent(WordNode) }

// NewTextOfType returns a text node reporting kind as its type. Node
// variants built on Text use it from their constructors.
func (m *Model) NewTextOfType(kind NodeType, value string) *Text {
	return &Text{value: value, kind: kind, NodeFields: NodeFields{model: m}}
}

func (m *Model) NewText(value string) *Text        { return m.NewTextOfType(TextNode, value) }
func (m *Model) NewWhiteSpace(value string) *Text  { return m.NewTextOfType(WhiteSpaceNode, value) }
func (m *Model) NewPunctuation(value string) *Text { return m.NewTextOfType(PunctuationNode, value) }
