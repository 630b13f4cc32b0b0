// Package comments converts Markdown documentation text into the content
// tree consumed by the rendering layer. Parsing is delegated to Goldmark;
// this package only maps the Goldmark AST onto model content variants.
package comments

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docrender/internal/model"
)

// Resolver maps a link destination to a documentation node. Returning nil
// leaves the link external.
type Resolver func(name string) *model.Node

// Options controls content construction.
type Options struct {
	// Resolver, when set, turns matching link destinations into node links.
	Resolver Resolver
}

// Parse builds a Content tree from Markdown source. The first paragraph
// becomes the summary by position.
func Parse(source []byte, opts Options) (*model.Content, error) {
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(source))

	content := model.NewContent()
	for block := root.FirstChild(); block != nil; block = block.NextSibling() {
		if converted := convertBlock(block, source, opts); converted != nil {
			content.Append(converted)
		}
	}
	return content, nil
}

func convertBlock(n gmast.Node, source []byte, opts Options) model.ContentNode {
	switch block := n.(type) {
	case *gmast.Paragraph:
		para := &model.Para{}
		appendInlines(&para.Block, block, source, opts)
		return para
	case *gmast.Heading:
		// Markdown headings inside comments render as emphasized paragraphs;
		// page headers belong to the traversal layer.
		strong := &model.Strong{}
		appendInlines(&strong.Block, block, source, opts)
		para := &model.Para{}
		para.Append(strong)
		return para
	case *gmast.FencedCodeBlock:
		return codeBlock(block, source)
	case *gmast.CodeBlock:
		return codeBlock(block, source)
	case *gmast.List:
		list := &model.List{}
		for item := block.FirstChild(); item != nil; item = item.NextSibling() {
			li := &model.ListItem{}
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				if tb, ok := child.(*gmast.TextBlock); ok {
					appendInlines(&li.Block, tb, source, opts)
					continue
				}
				if converted := convertBlock(child, source, opts); converted != nil {
					li.Append(converted)
				}
			}
			list.Append(li)
		}
		return list
	case *gmast.Blockquote:
		quote := &model.Block{}
		for child := block.FirstChild(); child != nil; child = child.NextSibling() {
			if converted := convertBlock(child, source, opts); converted != nil {
				quote.Append(converted)
			}
		}
		return quote
	case *gmast.ThematicBreak, *gmast.HTMLBlock:
		return nil
	default:
		return nil
	}
}

func codeBlock(n gmast.Node, source []byte) model.ContentNode {
	code := &model.BlockCode{}
	lines := n.Lines()
	var text string
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		text += string(segment.Value(source))
	}
	code.AppendText(text)
	return code
}

func appendInlines(block *model.Block, parent gmast.Node, source []byte, opts Options) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch inline := n.(type) {
		case *gmast.Text:
			block.AppendText(string(inline.Segment.Value(source)))
			if inline.SoftLineBreak() || inline.HardLineBreak() {
				block.AppendText(" ")
			}
		case *gmast.String:
			block.AppendText(string(inline.Value))
		case *gmast.Emphasis:
			var wrapped *model.Block
			var node model.ContentNode
			if inline.Level >= 2 {
				strong := &model.Strong{}
				wrapped, node = &strong.Block, strong
			} else {
				em := &model.Emphasis{}
				wrapped, node = &em.Block, em
			}
			appendInlines(wrapped, inline, source, opts)
			block.Append(node)
		case *gmast.CodeSpan:
			code := &model.Code{}
			appendInlines(&code.Block, inline, source, opts)
			block.Append(code)
		case *gmast.Link:
			dest := string(inline.Destination)
			if opts.Resolver != nil {
				if target := opts.Resolver(dest); target != nil {
					link := &model.NodeLink{To: target}
					appendInlines(&link.Block, inline, source, opts)
					block.Append(link)
					continue
				}
			}
			link := &model.ExternalLink{Href: dest}
			appendInlines(&link.Block, inline, source, opts)
			block.Append(link)
		case *gmast.AutoLink:
			url := string(inline.URL(source))
			link := &model.ExternalLink{Href: url}
			link.AppendText(url)
			block.Append(link)
		default:
			// Images and raw HTML are dropped; nested containers keep their text.
			appendInlines(block, inline, source, opts)
		}
	}
}
