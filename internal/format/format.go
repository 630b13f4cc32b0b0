// Package format implements the format-agnostic half of the documentation
// renderer: a traversal engine that walks model nodes and content trees,
// decides which sections to emit and in which order, and delegates every
// markup primitive to an injected Markup implementation.
package format

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docrender/internal/model"
)

// Location is an opaque destination descriptor for a rendered page or anchor.
type Location struct {
	Path string
}

// FormatLink is one renderable cross-reference: display text plus where it
// points.
type FormatLink struct {
	Text     string
	Location Location
}

// LocationService resolves node destinations. Implementations must be
// deterministic for a given (from, to, extension) triple.
type LocationService interface {
	// NodeLocation returns the canonical location of a node, without extension.
	NodeLocation(node *model.Node) (Location, error)
	// RelativeLocation returns the location of to, with the given file
	// extension, relative to from.
	RelativeLocation(from Location, to *model.Node, ext string) (Location, error)
}

// LanguageService renders a node's signature/declaration as a content tree.
type LanguageService interface {
	Render(node *model.Node) model.ContentNode
}

// Markup supplies the format-specific primitives: inline formatters return
// composed strings, block appenders wrap a body in opening/closing markup.
// FormatText escapes its raw argument; every other formatter receives
// already-escaped or already-composed text and must not escape again.
type Markup interface {
	Extension() string

	FormatText(text string) string
	FormatSymbol(text string) string
	FormatKeyword(text string) string
	FormatIdentifier(text string) string
	FormatStrong(text string) string
	FormatEmphasis(text string) string
	FormatCode(text string) string
	FormatList(text string) string
	FormatListItem(text string) string
	// FormatLink renders a resolved cross-reference. The location path is
	// structurally trusted; the display text is escaped as ordinary text.
	FormatLink(link FormatLink) string
	// FormatExternalLink renders a raw href around already-composed display
	// text. The href is structurally trusted and must not be escaped.
	FormatExternalLink(text, href string) string
	FormatBreadcrumbs(links []FormatLink) string

	AppendHeader(out *strings.Builder, text string, level int)
	AppendParagraph(out *strings.Builder, text string)
	AppendLine(out *strings.Builder, text string)
	AppendBlockCode(out *strings.Builder, lines ...string)
	AppendTable(out *strings.Builder, body func() error) error
	AppendTableHeader(out *strings.Builder, body func() error) error
	AppendTableBody(out *strings.Builder, body func() error) error
	AppendTableRow(out *strings.Builder, body func() error) error
	AppendTableCell(out *strings.Builder, body func() error) error

	// Outline hooks. Formats without outline support implement these as
	// no-ops; recursion into members, when wanted, is the hook's business.
	AppendOutlineHeader(out *strings.Builder, location Location, node *model.Node) error
	AppendOutlineChildren(out *strings.Builder, location Location, nodes []*model.Node) error
}

// Formatter walks documentation nodes and emits markup through its Markup.
// It holds no per-render state: every operation writes into the caller's
// builder, so independent renders may run concurrently with distinct
// builders.
type Formatter struct {
	locations LocationService
	language  LanguageService
	markup    Markup
	collator  *collate.Collator
}

// New wires a traversal engine to its collaborators.
func New(locations LocationService, lang LanguageService, markup Markup) *Formatter {
	return &Formatter{
		locations: locations,
		language:  lang,
		markup:    markup,
		collator:  collate.New(language.Und),
	}
}

// Extension returns the markup's file extension.
func (f *Formatter) Extension() string { return f.markup.Extension() }

// Markup exposes the injected primitives to composing formatters.
func (f *Formatter) Markup() Markup { return f.markup }

// CrossLink builds a link from one node to another using the markup's file
// extension. The display text is the target's name.
func (f *Formatter) CrossLink(from, to *model.Node) (FormatLink, error) {
	return f.CrossLinkExt(from, to, f.markup.Extension())
}

// CrossLinkExt is CrossLink with an explicit file extension.
func (f *Formatter) CrossLinkExt(from, to *model.Node, ext string) (FormatLink, error) {
	fromLoc, err := f.locations.NodeLocation(from)
	if err != nil {
		return FormatLink{}, err
	}
	loc, err := f.locations.RelativeLocation(fromLoc, to, ext)
	if err != nil {
		return FormatLink{}, err
	}
	return FormatLink{Text: to.Name, Location: loc}, nil
}

// sortByName orders nodes by collated name without mutating the input.
func (f *Formatter) sortByName(nodes []*model.Node) []*model.Node {
	sorted := make([]*model.Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return f.collator.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
