// Package htmlformat supplies the HTML markup primitives for the traversal
// engine in internal/format, plus page templating. The emitted tag structure
// (h1..hN, p, br, table/tbody/tr/td, a href, strong, em, code, pre code,
// ul/li, span class="symbol|keyword|identifier") is a compatibility contract
// for downstream stylesheets.
package htmlformat

import (
	"fmt"
	"html"
	"strings"

	"git.home.luguber.info/inful/docrender/internal/format"
	"git.home.luguber.info/inful/docrender/internal/model"
)

const breadcrumbSeparator = "&nbsp;/&nbsp;"

// Template wraps full-page output with a header and footer.
type Template interface {
	AppendHeader(out *strings.Builder, title string)
	AppendFooter(out *strings.Builder)
}

// DefaultTemplate emits a minimal standalone HTML page shell.
type DefaultTemplate struct{}

func (DefaultTemplate) AppendHeader(out *strings.Builder, title string) {
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<title>")
	out.WriteString(html.EscapeString(title))
	out.WriteString("</title>\n</head>\n<body>\n")
}

func (DefaultTemplate) AppendFooter(out *strings.Builder) {
	out.WriteString("</body>\n</html>\n")
}

// Markup implements format.Markup for HTML output.
type Markup struct{}

var _ format.Markup = Markup{}

func (Markup) Extension() string { return "html" }

// FormatText is the single escaping point: raw model text passes through
// here exactly once before composition.
func (Markup) FormatText(text string) string { return html.EscapeString(text) }

func (Markup) FormatSymbol(text string) string {
	return `<span class="symbol">` + text + `</span>`
}

func (Markup) FormatKeyword(text string) string {
	return `<span class="keyword">` + text + `</span>`
}

func (Markup) FormatIdentifier(text string) string {
	return `<span class="identifier">` + text + `</span>`
}

func (Markup) FormatStrong(text string) string   { return "<strong>" + text + "</strong>" }
func (Markup) FormatEmphasis(text string) string { return "<em>" + text + "</em>" }
func (Markup) FormatCode(text string) string     { return "<code>" + text + "</code>" }
func (Markup) FormatList(text string) string     { return "<ul>" + text + "</ul>" }
func (Markup) FormatListItem(text string) string { return "<li>" + text + "</li>" }

// FormatLink emits an anchor for a resolved location. The path is
// structurally trusted and written verbatim; the display text is escaped as
// ordinary text.
func (Markup) FormatLink(link format.FormatLink) string {
	return `<a href="` + link.Location.Path + `">` + html.EscapeString(link.Text) + `</a>`
}

// FormatExternalLink emits an anchor around already-composed display text.
// Neither the href nor the body is escaped here.
func (Markup) FormatExternalLink(text, href string) string {
	return `<a href="` + href + `">` + text + `</a>`
}

func (Markup) FormatBreadcrumbs(links []format.FormatLink) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, Markup{}.FormatLink(link))
	}
	return strings.Join(parts, breadcrumbSeparator)
}

func (Markup) AppendHeader(out *strings.Builder, text string, level int) {
	fmt.Fprintf(out, "<h%d>%s</h%d>\n", level, text, level)
}

func (Markup) AppendParagraph(out *strings.Builder, text string) {
	out.WriteString("<p>")
	out.WriteString(text)
	out.WriteString("</p>\n")
}

func (Markup) AppendLine(out *strings.Builder, text string) {
	out.WriteString(text)
	out.WriteString("<br/>\n")
}

func (Markup) AppendBlockCode(out *strings.Builder, lines ...string) {
	out.WriteString("<pre><code>")
	out.WriteString(strings.Join(lines, "\n"))
	out.WriteString("</code></pre>\n")
}

func appendWrapped(out *strings.Builder, open, closing string, body func() error) error {
	out.WriteString(open)
	err := body()
	out.WriteString(closing)
	return err
}

func (Markup) AppendTable(out *strings.Builder, body func() error) error {
	return appendWrapped(out, "<table>\n", "</table>\n", body)
}

func (Markup) AppendTableHeader(out *strings.Builder, body func() error) error {
	return appendWrapped(out, "<thead>", "</thead>\n", body)
}

func (Markup) AppendTableBody(out *strings.Builder, body func() error) error {
	return appendWrapped(out, "<tbody>", "</tbody>\n", body)
}

func (Markup) AppendTableRow(out *strings.Builder, body func() error) error {
	return appendWrapped(out, "<tr>", "</tr>\n", body)
}

func (Markup) AppendTableCell(out *strings.Builder, body func() error) error {
	return appendWrapped(out, "<td>", "</td>", body)
}

// Outline rendering is not supported for HTML output.
func (Markup) AppendOutlineHeader(*strings.Builder, format.Location, *model.Node) error {
	return nil
}

func (Markup) AppendOutlineChildren(*strings.Builder, format.Location, []*model.Node) error {
	return nil
}

// Formatter combines the shared traversal engine with HTML primitives and
// page templating.
type Formatter struct {
	*format.Formatter
	tmpl Template
}

// New builds an HTML formatter. A nil template gets the default page shell.
func New(locations format.LocationService, lang format.LanguageService, tmpl Template) *Formatter {
	if tmpl == nil {
		tmpl = DefaultTemplate{}
	}
	return &Formatter{
		Formatter: format.New(locations, lang, Markup{}),
		tmpl:      tmpl,
	}
}

// RenderPage wraps the shared traversal output for the given nodes in the
// template's page header and footer. On error the builder contents are
// unspecified and should be discarded.
func (f *Formatter) RenderPage(loc format.Location, out *strings.Builder, title string, nodes []*model.Node) error {
	f.tmpl.AppendHeader(out, title)
	if err := f.RenderNodes(loc, out, nodes); err != nil {
		return err
	}
	f.tmpl.AppendFooter(out)
	return nil
}
