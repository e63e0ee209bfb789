package document

// NodeType identifies the block variant of a Node.
type NodeType string

// Block node types.
const (
	Paragraph    NodeType = "paragraph"
	Heading1     NodeType = "heading-1"
	Heading2     NodeType = "heading-2"
	Heading3     NodeType = "heading-3"
	BlockQuote   NodeType = "block-quote"
	BulletedList NodeType = "bulleted-list"
	NumberedList NodeType = "numbered-list"
	ListItem     NodeType = "list-item"
	MathBlock    NodeType = "math-block"
	Image        NodeType = "image"
)

// Valid returns true if t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case Paragraph, Heading1, Heading2, Heading3, BlockQuote,
		BulletedList, NumberedList, ListItem, MathBlock, Image:
		return true
	}
	return false
}

// IsList returns true if t is a list container type.
func (t NodeType) IsList() bool {
	return t == BulletedList || t == NumberedList
}

// Alignment is a horizontal alignment value for blocks and images.
type Alignment string

// Alignment values. AlignUnset means no explicit alignment.
const (
	AlignUnset  Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Valid returns true if a is a known alignment, including unset.
func (a Alignment) Valid() bool {
	switch a {
	case AlignUnset, AlignLeft, AlignCenter, AlignRight:
		return true
	}
	return false
}

// ImageSize is an explicit pixel size for an image node.
type ImageSize struct {
	Width  int
	Height int
}

// Child is a member of a Node's children list. It is a closed union:
// only *Node and *Leaf implement it.
type Child interface {
	isChild()
}

func (*Node) isChild() {}
func (*Leaf) isChild() {}

// Node is a branch element of the document tree.
//
// Type tags the variant. The variant-specific fields (Formula for math
// blocks; URL, Alt, Caption, ImageAlign and Size for images) are zero for
// other variants.
type Node struct {
	Type     NodeType
	Align    Alignment
	Children []Child

	// math-block
	Formula string

	// image
	URL        string
	Alt        string
	Caption    string
	ImageAlign Alignment
	Size       *ImageSize
}

// NewBlock creates a node of the given type containing the given children.
// With no children the node gets a single empty leaf, preserving the
// non-empty-children invariant.
func NewBlock(t NodeType, children ...Child) *Node {
	if len(children) == 0 {
		children = []Child{NewLeaf("")}
	}
	return &Node{Type: t, Children: children}
}

// NewParagraph creates a paragraph containing a single leaf with the given text.
func NewParagraph(text string) *Node {
	return NewBlock(Paragraph, NewLeaf(text))
}

// NewMathBlock creates a math-block node with the given LaTeX source.
// The node carries an empty text leaf so it remains addressable.
func NewMathBlock(formula string) *Node {
	n := NewBlock(MathBlock)
	n.Formula = formula
	return n
}

// NewImage creates an image node. Unrecognized alignments are preserved
// as given; rendering treats anything but left and right as centered.
func NewImage(url, alt string, align Alignment) *Node {
	n := NewBlock(Image)
	n.URL = url
	n.Alt = alt
	n.ImageAlign = align
	return n
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := *n
	if n.Size != nil {
		size := *n.Size
		c.Size = &size
	}
	c.Children = make([]Child, len(n.Children))
	for i, child := range n.Children {
		c.Children[i] = cloneChild(child)
	}
	return &c
}

func cloneChild(c Child) Child {
	switch v := c.(type) {
	case *Node:
		return v.Clone()
	case *Leaf:
		return v.Clone()
	default:
		return nil
	}
}

// Equal reports whether two nodes have identical type, attributes and
// recursively equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Type != other.Type || n.Align != other.Align ||
		n.Formula != other.Formula || n.URL != other.URL ||
		n.Alt != other.Alt || n.Caption != other.Caption ||
		n.ImageAlign != other.ImageAlign {
		return false
	}
	if (n.Size == nil) != (other.Size == nil) {
		return false
	}
	if n.Size != nil && *n.Size != *other.Size {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !childEqual(n.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}

func childEqual(a, b Child) bool {
	switch av := a.(type) {
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	case *Leaf:
		bv, ok := b.(*Leaf)
		return ok && av.Equal(bv)
	}
	return false
}

// Text returns the concatenated text of all leaves under the node.
func (n *Node) Text() string {
	var out string
	for _, child := range n.Children {
		switch v := child.(type) {
		case *Node:
			out += v.Text()
		case *Leaf:
			out += v.Text
		}
	}
	return out
}

// IsEmpty returns true if the node contains no text.
func (n *Node) IsEmpty() bool {
	return n.Text() == ""
}
