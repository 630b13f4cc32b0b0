package format

import (
	"strings"

	"git.home.luguber.info/inful/docrender/internal/model"
)

// RenderText converts content trees to formatted text. Dispatch is by
// content variant; unrecognized variants render their children without
// wrapping, and an empty input produces an empty string. Escaping happens
// exactly once, at plain-text leaves, so composed fragments are never
// re-escaped. A location-resolution failure aborts the render.
func (f *Formatter) RenderText(loc Location, contents ...model.ContentNode) (string, error) {
	var sb strings.Builder
	for _, content := range contents {
		if err := f.renderContent(&sb, loc, content); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (f *Formatter) renderContent(out *strings.Builder, loc Location, content model.ContentNode) error {
	if content == nil {
		return nil
	}
	switch c := content.(type) {
	case model.Text:
		out.WriteString(f.markup.FormatText(c.Text))
	case model.Symbol:
		out.WriteString(f.markup.FormatSymbol(c.Text))
	case model.Keyword:
		out.WriteString(f.markup.FormatKeyword(c.Text))
	case model.Identifier:
		out.WriteString(f.markup.FormatIdentifier(c.Text))
	case *model.Strong:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatStrong(body))
	case *model.Emphasis:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatEmphasis(body))
	case *model.Code:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatCode(body))
	case *model.List:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatList(body))
	case *model.ListItem:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatListItem(body))
	case *model.NodeLink:
		target, err := f.locations.RelativeLocation(loc, c.To, f.markup.Extension())
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			out.WriteString(f.markup.FormatLink(FormatLink{Text: c.To.Name, Location: target}))
			return nil
		}
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatExternalLink(body, target.Path))
	case *model.ExternalLink:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(f.markup.FormatExternalLink(body, c.Href))
	case *model.Para:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		f.markup.AppendParagraph(out, body)
	case *model.BlockCode:
		body, err := f.RenderText(loc, c.Children()...)
		if err != nil {
			return err
		}
		f.markup.AppendBlockCode(out, body)
	default:
		body, err := f.RenderText(loc, content.Children()...)
		if err != nil {
			return err
		}
		out.WriteString(body)
	}
	return nil
}

// RenderDescription emits a "Description" section for every node with
// non-empty content. When several nodes share the heading, each body is
// preceded by the node's signature. Named content sections follow, skipping
// reserved labels (prefix '$') and labels that collide with a member name.
func (f *Formatter) RenderDescription(loc Location, out *strings.Builder, nodes []*model.Node) error {
	var described []*model.Node
	for _, node := range nodes {
		if !node.Content().IsEmpty() {
			described = append(described, node)
		}
	}
	if len(described) == 0 {
		return nil
	}
	f.markup.AppendHeader(out, "Description", 3)
	for _, node := range described {
		if len(described) > 1 {
			sig, err := f.RenderText(loc, f.language.Render(node))
			if err != nil {
				return err
			}
			f.markup.AppendBlockCode(out, sig)
		}
		body, err := f.RenderText(loc, node.Content().Description())
		if err != nil {
			return err
		}
		f.markup.AppendLine(out, body)
		f.markup.AppendLine(out, "")
		for _, section := range node.Content().Sections() {
			if strings.HasPrefix(section.Label, "$") {
				continue
			}
			if hasMemberNamed(node, section.Label) {
				continue
			}
			f.markup.AppendLine(out, f.markup.FormatStrong(f.markup.FormatText(section.Label)))
			text, err := f.RenderText(loc, section)
			if err != nil {
				return err
			}
			f.markup.AppendLine(out, text)
			f.markup.AppendLine(out, "")
		}
	}
	return nil
}

func hasMemberNamed(node *model.Node, name string) bool {
	for _, m := range node.Members() {
		if m.Name == name {
			return true
		}
	}
	return false
}

// RenderSummary groups nodes by identical rendered summary, keeping
// first-seen group order, and emits each group's signatures as code blocks
// followed by the shared summary line.
func (f *Formatter) RenderSummary(loc Location, out *strings.Builder, nodes []*model.Node) error {
	bySummary := newGrouping[string, *model.Node]()
	for _, node := range nodes {
		summary, err := f.RenderText(loc, node.Summary())
		if err != nil {
			return err
		}
		bySummary.add(summary, node)
	}
	return bySummary.each(func(summary string, items []*model.Node) error {
		for _, item := range items {
			sig, err := f.RenderText(loc, f.language.Render(item))
			if err != nil {
				return err
			}
			f.markup.AppendBlockCode(out, sig)
		}
		f.markup.AppendLine(out, summary)
		f.markup.AppendLine(out, "")
		return nil
	})
}

// RenderLocationBlock groups nodes by name in first-seen order and emits a
// header, summary and description per group.
func (f *Formatter) RenderLocationBlock(loc Location, out *strings.Builder, nodes []*model.Node) error {
	byName := newGrouping[string, *model.Node]()
	for _, node := range nodes {
		byName.add(node.Name, node)
	}
	return byName.each(func(name string, items []*model.Node) error {
		f.markup.AppendHeader(out, f.markup.FormatText(name), 1)
		if err := f.RenderSummary(loc, out, items); err != nil {
			return err
		}
		return f.RenderDescription(loc, out, items)
	})
}

// RenderSection emits one captioned member table. Members are sorted by
// name, then grouped by resolved cross-link; each row shows the link and,
// per distinct summary, the member signatures followed by the summary line.
// An empty member list emits nothing.
func (f *Formatter) RenderSection(loc Location, out *strings.Builder, caption string, members []*model.Node, owner *model.Node) error {
	if len(members) == 0 {
		return nil
	}
	f.markup.AppendHeader(out, caption, 3)

	byLink := newGrouping[FormatLink, *model.Node]()
	for _, m := range f.sortByName(members) {
		link, err := f.CrossLink(owner, m)
		if err != nil {
			return err
		}
		byLink.add(link, m)
	}

	return f.markup.AppendTable(out, func() error {
		return f.markup.AppendTableBody(out, func() error {
			return byLink.each(func(link FormatLink, rowMembers []*model.Node) error {
				return f.markup.AppendTableRow(out, func() error {
					err := f.markup.AppendTableCell(out, func() error {
						out.WriteString(f.markup.FormatLink(link))
						return nil
					})
					if err != nil {
						return err
					}
					return f.markup.AppendTableCell(out, func() error {
						return f.renderSectionCell(loc, out, rowMembers)
					})
				})
			})
		})
	})
}

func (f *Formatter) renderSectionCell(loc Location, out *strings.Builder, members []*model.Node) error {
	bySummary := newGrouping[string, *model.Node]()
	for _, m := range members {
		summary, err := f.RenderText(loc, m.Summary())
		if err != nil {
			return err
		}
		bySummary.add(summary, m)
	}
	return bySummary.each(func(summary string, items []*model.Node) error {
		for _, item := range items {
			sig, err := f.RenderText(loc, f.language.Render(item))
			if err != nil {
				return err
			}
			f.markup.AppendBlockCode(out, sig)
		}
		if summary != "" {
			out.WriteString(summary)
			f.markup.AppendLine(out, "")
		}
		return nil
	})
}

// Section captions in their contractual order. "Other members" catches every
// kind outside the named categories and Package.
const (
	captionPackages     = "Packages"
	captionTypes        = "Types"
	captionConstructors = "Constructors"
	captionProperties   = "Properties"
	captionFunctions    = "Functions"
	captionAccessors    = "Accessors"
	captionOther        = "Other members"
	captionExtensions   = "Extensions"
	captionInheritors   = "Inheritors"
	captionLinks        = "Links"
)

// RenderNodes is the top-level traversal: breadcrumbs plus per-name blocks
// for each distinct breadcrumb trail, then the fixed member-category tables
// for every input node.
func (f *Formatter) RenderNodes(loc Location, out *strings.Builder, nodes []*model.Node) error {
	byBreadcrumb := newGrouping[string, *model.Node]()
	for _, node := range nodes {
		var trail []FormatLink
		for _, ancestor := range node.Path() {
			link, err := f.CrossLink(node, ancestor)
			if err != nil {
				return err
			}
			trail = append(trail, link)
		}
		byBreadcrumb.add(f.markup.FormatBreadcrumbs(trail), node)
	}
	err := byBreadcrumb.each(func(crumbs string, items []*model.Node) error {
		f.markup.AppendLine(out, crumbs)
		f.markup.AppendLine(out, "")
		return f.RenderLocationBlock(loc, out, items)
	})
	if err != nil {
		return err
	}

	for _, node := range nodes {
		sections := []struct {
			caption string
			members []*model.Node
		}{
			{captionPackages, node.MembersOfKind(model.KindPackage)},
			{captionTypes, node.MembersOfKind(model.TypeKinds...)},
			{captionConstructors, node.MembersOfKind(model.KindConstructor)},
			{captionProperties, node.MembersOfKind(model.KindProperty)},
			{captionFunctions, node.MembersOfKind(model.KindFunction)},
			{captionAccessors, node.MembersOfKind(model.KindPropertyAccessor)},
			{captionOther, node.MembersExcluding(
				model.KindPackage,
				model.KindClass, model.KindInterface, model.KindEnum, model.KindObject,
				model.KindConstructor, model.KindProperty, model.KindFunction,
				model.KindPropertyAccessor,
			)},
			{captionExtensions, node.Extensions()},
			{captionInheritors, node.Inheritors()},
			{captionLinks, node.Links()},
		}
		for _, s := range sections {
			if err := f.RenderSection(loc, out, s.caption, s.members, node); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderOutline calls the outline hooks for each node; recursion into
// members, when a format supports outlines, belongs to the hook.
func (f *Formatter) RenderOutline(loc Location, out *strings.Builder, nodes []*model.Node) error {
	for _, node := range nodes {
		if err := f.markup.AppendOutlineHeader(out, loc, node); err != nil {
			return err
		}
		if members := node.Members(); len(members) > 0 {
			if err := f.markup.AppendOutlineChildren(out, loc, members); err != nil {
				return err
			}
		}
	}
	return nil
}
