package textom

// NodeType is the discriminator tag every node reports through Type.
type NodeType string

const (
	RootNode        NodeType = "RootNode"
	ParagraphNode   NodeType = "ParagraphNode"
	SentenceNode    NodeType = "SentenceNode"
	WordNode        NodeType = "WordNode"
	TextNode        NodeType = "TextNode"
	WhiteSpaceNode  NodeType = "WhiteSpaceNode"
	PunctuationNode NodeType = "PunctuationNode"
)

// Node names, shared by all text-like and all parent-like nodes.
const (
	TextName   = "#text"
	ParentName = "#parent"
)

// Node is anything that can live in a TextOM tree.
type Node interface {
	Type() NodeType
	NodeName() string
	String() string
	ValueOf() Value
	Parent() *Parent
	Prev() Node
	Next() Node
	Model() *Model
	Constant(name string) (NodeType, bool)
	Remove() Node

	fields() *NodeFields
}

// CharacterData is a Node that owns a mutable string value.
type CharacterData interface {
	Node
	SetValue(value string) string
	Split(position int) (CharacterData, error)
}

// ChangeHandler is called after the value of a text node of a watched type
// changed. n is the node registered with Bind, or the Text itself.
type ChangeHandler func(n Node, previous string)

// Value is the plain-data form of a node, as returned by ValueOf.
type Value struct {
	Type     NodeType               `json:"type"`
	Value    string                 `json:"value,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Children []Value                `json:"children,omitempty"`
}

// NodeFields holds the tree membership every node shares. It is embedded
// by Text and Parent, and through them by any node variant built on top.
type NodeFields struct {
	model  *Model
	parent *Parent
	prev   Node
	next   Node
}

func (f *NodeFields) fields() *NodeFields { return f }

func (f *NodeFields) Parent() *Parent { return f.parent }
func (f *NodeFields) Prev() Node      { return f.prev }
func (f *NodeFields) Next() Node      { return f.next }
func (f *NodeFields) Model() *Model   { return f.model }

// Constant looks up a type constant such as "TEXT_NODE" on the node's model.
// Every node of a model sees the same table.
func (f *NodeFields) Constant(name string) (NodeType, bool) {
	if f.model == nil {
		return "", false
	}
	return f.model.Constant(name)
}

// Remove detaches the node from its parent. It returns the removed node, or
// nil when the node had no parent.
func (f *NodeFields) Remove() Node {
	if f.parent == nil {
		return nil
	}
	i := f.parent.children.indexOfFields(f)
	if i == -1 {
		return nil
	}
	return f.parent.removeAt(i)
}

// sameNode compares two nodes by their shared fields, so a variant and the
// Text it embeds are recognised as one node.
func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.fields() == b.fields()
}
