// Package model defines the documentation tree consumed by the rendering
// layer: Node for declarations (packages, types, members) and ContentNode for
// structured documentation text. The model is produced upstream; the
// formatter treats it as read-only.
package model

// Kind classifies a documentation node.
type Kind string

const (
	KindUnknown          Kind = "Unknown"
	KindModule           Kind = "Module"
	KindPackage          Kind = "Package"
	KindClass            Kind = "Class"
	KindInterface        Kind = "Interface"
	KindEnum             Kind = "Enum"
	KindEnumItem         Kind = "EnumItem"
	KindObject           Kind = "Object"
	KindConstructor      Kind = "Constructor"
	KindProperty         Kind = "Property"
	KindFunction         Kind = "Function"
	KindPropertyAccessor Kind = "PropertyAccessor"
	KindParameter        Kind = "Parameter"
	KindTypeParameter    Kind = "TypeParameter"
	KindType             Kind = "Type"
	KindException        Kind = "Exception"
)

// TypeKinds are the kinds grouped under the "Types" section of a page.
var TypeKinds = []Kind{KindClass, KindInterface, KindEnum, KindObject}

// Node is one declaration in the documentation tree. Members, extensions,
// inheritors and links keep insertion order; rendering relies on that.
type Node struct {
	Name string
	Kind Kind

	content    *Content
	owner      *Node
	members    []*Node
	details    []*Node
	extensions []*Node
	inheritors []*Node
	links      []*Node
}

// NewNode constructs a detached node with the given name, kind and content.
// A nil content is normalized to an empty Content.
func NewNode(name string, kind Kind, content *Content) *Node {
	if content == nil {
		content = NewContent()
	}
	return &Node{Name: name, Kind: kind, content: content}
}

// Content returns the node's documentation content (never nil).
func (n *Node) Content() *Content { return n.content }

// SetContent replaces the node's documentation content. Model builders use
// this for a second resolution pass; renderers never mutate content.
func (n *Node) SetContent(c *Content) {
	if c == nil {
		c = NewContent()
	}
	n.content = c
}

// Owner returns the node this node is a member of, or nil for roots.
func (n *Node) Owner() *Node { return n.owner }

// Members returns the node's children in insertion order.
func (n *Node) Members() []*Node { return n.members }

// MembersOfKind returns members whose kind is one of the given kinds,
// preserving member order.
func (n *Node) MembersOfKind(kinds ...Kind) []*Node {
	var out []*Node
	for _, m := range n.members {
		for _, k := range kinds {
			if m.Kind == k {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// MembersExcluding returns members whose kind is none of the given kinds.
func (n *Node) MembersExcluding(kinds ...Kind) []*Node {
	var out []*Node
	for _, m := range n.members {
		excluded := false
		for _, k := range kinds {
			if m.Kind == k {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, m)
		}
	}
	return out
}

// Details returns auxiliary nodes (parameter types, return types) attached by
// the model builder. They never surface as members.
func (n *Node) Details() []*Node { return n.details }

// DetailsOfKind filters details by kind.
func (n *Node) DetailsOfKind(kind Kind) []*Node {
	var out []*Node
	for _, d := range n.details {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Extensions returns nodes that extend this node.
func (n *Node) Extensions() []*Node { return n.extensions }

// Inheritors returns nodes that inherit from this node.
func (n *Node) Inheritors() []*Node { return n.inheritors }

// Links returns related nodes referenced from this node's documentation.
func (n *Node) Links() []*Node { return n.links }

// AppendMember adds a child and records this node as its owner.
func (n *Node) AppendMember(m *Node) *Node {
	m.owner = n
	n.members = append(n.members, m)
	return m
}

// AppendDetail attaches an auxiliary node without changing ownership.
func (n *Node) AppendDetail(d *Node) *Node {
	n.details = append(n.details, d)
	return d
}

// AppendExtension records an extension of this node.
func (n *Node) AppendExtension(e *Node) { n.extensions = append(n.extensions, e) }

// AppendInheritor records an inheritor of this node.
func (n *Node) AppendInheritor(i *Node) { n.inheritors = append(n.inheritors, i) }

// AppendLink records a related node.
func (n *Node) AppendLink(l *Node) { n.links = append(n.links, l) }

// Path returns the ownership chain from the root down to and including the
// node itself. Breadcrumb rendering walks this slice in order.
func (n *Node) Path() []*Node {
	if n.owner == nil {
		return []*Node{n}
	}
	return append(n.owner.Path(), n)
}

// Summary returns the first block of the node's content, or nil when the
// node has no documentation.
func (n *Node) Summary() ContentNode { return n.content.Summary() }
