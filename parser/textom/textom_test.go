package textom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelConstants(t *testing.T) {
	m := New()
	c, ok := m.Constant("TEXT_NODE")
	assert.True(t, ok)
	assert.Equal(t, TextNode, c)

	_, ok = m.Constant("LINK_NODE")
	assert.False(t, ok)

	m.Expose("CUSTOM_NODE", "CustomNode")
	c, ok = m.NewText("x").Constant("CUSTOM_NODE")
	assert.True(t, ok)
	assert.Equal(t, NodeType("CustomNode"), c)
}

func TestRegisterType(t *testing.T) {
	m := New()
	ctor := func(m *Model, v string) Node { return m.NewTextOfType("CustomNode", v) }

	require.NoError(t, m.RegisterType("CustomNode", ctor))
	assert.True(t, m.Has("CustomNode"))
	assert.Error(t, m.RegisterType("CustomNode", ctor))
	assert.Error(t, m.RegisterType("OtherNode", nil))

	n, err := m.Create("CustomNode", "value")
	require.NoError(t, err)
	assert.Equal(t, NodeType("CustomNode"), n.Type())
	assert.Equal(t, "value", n.String())

	_, err = m.Create("MissingNode", "")
	assert.Error(t, err)
}

func TestRegisterChildTypeIgnoresDuplicates(t *testing.T) {
	m := New()
	m.RegisterChildType(SentenceNode, "CustomNode")
	m.RegisterChildType(SentenceNode, "CustomNode")

	assert.Equal(t,
		[]NodeType{WordNode, WhiteSpaceNode, PunctuationNode, "CustomNode"},
		m.AllowedChildTypes(SentenceNode))

	// The returned list is a copy.
	list := m.AllowedChildTypes(SentenceNode)
	list[0] = "Mutated"
	assert.Equal(t, WordNode, m.AllowedChildTypes(SentenceNode)[0])
}

type hierarchyTestcase struct {
	parent NodeType
	child  NodeType
	ok     bool
}

var hierarchyTests = []hierarchyTestcase{
	{RootNode, ParagraphNode, true},
	{RootNode, WhiteSpaceNode, true},
	{RootNode, SentenceNode, false},
	{ParagraphNode, SentenceNode, true},
	{ParagraphNode, WordNode, false},
	{SentenceNode, WordNode, true},
	{SentenceNode, PunctuationNode, true},
	{SentenceNode, TextNode, false},
	{WordNode, TextNode, true},
	{WordNode, WordNode, false},
}

func TestHierarchy(t *testing.T) {
	for _, tt := range hierarchyTests {
		tt := tt
		t.Run(string(tt.parent)+">"+string(tt.child), func(t *testing.T) {
			t.Parallel()
			m := New()
			p, err := m.Create(tt.parent, "")
			require.NoError(t, err)
			c, err := m.Create(tt.child, "x")
			require.NoError(t, err)

			err = p.(*Parent).Append(c)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, p, c.Parent())
				return
			}
			assert.True(t, IsHierarchyError(err))
			assert.Nil(t, c.Parent())
		})
	}
}

func TestParentCannotContainItself(t *testing.T) {
	m := New()
	m.RegisterChildType(WordNode, WordNode)
	w := m.NewWord()
	assert.True(t, IsHierarchyError(w.Append(w)))
}

func TestAppendAndSiblings(t *testing.T) {
	m := New()
	word := m.NewWord()
	a, b, c := m.NewText("a"), m.NewPunctuation("-"), m.NewText("c")

	require.NoError(t, word.Append(b))
	require.NoError(t, word.Prepend(a))
	require.NoError(t, word.Append(c))

	assert.Equal(t, "a-c", word.String())
	assert.Equal(t, 3, word.Length())
	assert.Equal(t, a, word.Head())
	assert.Equal(t, c, word.Tail())
	assert.Equal(t, b, a.Next())
	assert.Equal(t, b, c.Prev())
	assert.Nil(t, a.Prev())
	assert.Nil(t, c.Next())

	removed := b.Remove()
	assert.Equal(t, b, removed)
	assert.Nil(t, b.Parent())
	assert.Equal(t, "ac", word.String())
	assert.Equal(t, c, a.Next())
	assert.Nil(t, b.Remove())
}

func TestInsertBefore(t *testing.T) {
	m := New()
	word := m.NewWord()
	a, c := m.NewText("a"), m.NewText("c")
	require.NoError(t, word.Append(a))
	require.NoError(t, word.Append(c))

	b := m.NewText("b")
	require.NoError(t, word.InsertBefore(b, c))
	assert.Equal(t, "abc", word.String())

	assert.Error(t, word.InsertBefore(m.NewText("x"), m.NewText("y")))

	// Moving an existing child keeps the list consistent.
	require.NoError(t, word.InsertBefore(c, a))
	assert.Equal(t, "cab", word.String())
	require.NoError(t, word.Append(c))
	assert.Equal(t, "abc", word.String())
}

func TestAppendMovesBetweenParents(t *testing.T) {
	m := New()
	first, second := m.NewWord(), m.NewWord()
	x := m.NewText("x")

	require.NoError(t, first.Append(x))
	require.NoError(t, second.Append(x))

	assert.Equal(t, 0, first.Length())
	assert.Equal(t, 1, second.Length())
	assert.Equal(t, second, x.Parent())
}

func TestRemoveChild(t *testing.T) {
	m := New()
	word := m.NewWord()
	x := m.NewText("x")
	require.NoError(t, word.Append(x))

	n, err := word.RemoveChild(x)
	require.NoError(t, err)
	assert.Equal(t, x, n)

	_, err = word.RemoveChild(x)
	assert.Error(t, err)
}

func TestTextSetValue(t *testing.T) {
	m := New()
	x := m.NewText("old")
	assert.Equal(t, "old", x.SetValue("new"))
	assert.Equal(t, "new", x.String())
	assert.Equal(t, TextName, x.NodeName())
	assert.Equal(t, ParentName, m.NewWord().NodeName())
}

func TestTextSplit(t *testing.T) {
	m := New()
	word := m.NewWord()
	x := m.NewText("hello")
	require.NoError(t, word.Append(x))

	head, err := x.Split(2)
	require.NoError(t, err)
	assert.Equal(t, "he", head.String())
	assert.Equal(t, "llo", x.String())
	assert.Equal(t, TextNode, head.Type())
	assert.Equal(t, "hello", word.String())
	assert.Equal(t, head, word.Head())

	head, err = x.Split(100)
	require.NoError(t, err)
	assert.Equal(t, "llo", head.String())
	assert.Equal(t, "", x.String())

	head, err = m.NewText("abc").Split(-1)
	require.NoError(t, err)
	assert.Equal(t, "", head.String())
}

func TestTextSplitKeepsCharactersWhole(t *testing.T) {
	m := New()
	x := m.NewText("añb")

	// Byte 2 is inside the two-byte "ñ".
	head, err := x.Split(2)
	require.NoError(t, err)
	assert.Equal(t, "a", head.String())
	assert.Equal(t, "ñb", x.String())

	head, err = m.NewText("ñ").Split(1)
	require.NoError(t, err)
	assert.Equal(t, "", head.String())
}

type changed struct {
	node     Node
	previous string
}

func TestOnChange(t *testing.T) {
	m := New()
	var got []changed
	m.OnChange(PunctuationNode, func(n Node, previous string) {
		got = append(got, changed{n, previous})
	})

	x := m.NewText("a")
	x.SetValue("b")
	assert.Empty(t, got, "handlers only run for their own type")

	p := m.NewPunctuation(".")
	p.SetValue("!")
	require.Len(t, got, 1)
	assert.Same(t, p, got[0].node)
	assert.Equal(t, ".", got[0].previous)

	got = nil
	p.SetValue("?!")
	_, err := p.Split(1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "?!", got[1].previous)
	assert.Equal(t, "!", p.String())
}

type wrapped struct {
	*Text
}

func TestOnChangeReceivesBoundNode(t *testing.T) {
	m := New()
	var got Node
	m.OnChange(TextNode, func(n Node, _ string) { got = n })

	w := &wrapped{Text: m.NewText("a")}
	w.Bind(w)
	w.Text.SetValue("b")

	require.NotNil(t, got)
	_, ok := got.(*wrapped)
	assert.True(t, ok)
}

func TestValueOf(t *testing.T) {
	m := New()
	sentence := m.NewSentence()
	word := m.NewWord()
	require.NoError(t, word.Append(m.NewText("hi")))
	require.NoError(t, sentence.Append(word))
	require.NoError(t, sentence.Append(m.NewPunctuation("!")))

	assert.Equal(t, Value{
		Type: SentenceNode,
		Children: []Value{
			{Type: WordNode, Children: []Value{{Type: TextNode, Value: "hi"}}},
			{Type: PunctuationNode, Value: "!"},
		},
	}, sentence.ValueOf())
}

func TestNodeListOfType(t *testing.T) {
	m := New()
	list := NodeList{m.NewText("a"), m.NewPunctuation("."), m.NewText("b")}
	assert.Len(t, list.OfType(TextNode), 2)
	assert.Equal(t, 1, list.Contains(list[1]))
	assert.Equal(t, -1, list.Contains(m.NewText("c")))
	assert.Equal(t, -1, list.Contains(nil))
}
