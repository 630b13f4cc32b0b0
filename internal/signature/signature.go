// Package signature renders the declaration form of a documentation node as
// a content tree: language keywords, the declaration name, and parameter and
// type details. The output feeds the code blocks shown in summaries and
// member tables.
package signature

import (
	"git.home.luguber.info/inful/docrender/internal/format"
	"git.home.luguber.info/inful/docrender/internal/model"
)

// Service is a generic declaration renderer implementing
// format.LanguageService.
type Service struct{}

var _ format.LanguageService = Service{}

var kindKeywords = map[model.Kind]string{
	model.KindModule:      "module",
	model.KindPackage:     "package",
	model.KindClass:       "class",
	model.KindInterface:   "interface",
	model.KindEnum:        "enum",
	model.KindEnumItem:    "enum entry",
	model.KindObject:      "object",
	model.KindProperty:    "val",
	model.KindFunction:    "fun",
	model.KindConstructor: "constructor",
}

// Render produces the signature content for a node. The result references
// only leaves and containers, never the location service, so rendering it is
// side-effect free.
func (Service) Render(node *model.Node) model.ContentNode {
	block := &model.Block{}
	if kw, ok := kindKeywords[node.Kind]; ok {
		block.Append(model.Keyword{Text: kw}, model.Text{Text: " "})
	}
	switch node.Kind {
	case model.KindConstructor:
		// Constructors render as "constructor(...)" without a name.
		appendParameters(block, node)
	case model.KindFunction:
		block.Append(model.Identifier{Text: node.Name})
		appendParameters(block, node)
		appendTypeSuffix(block, node)
	case model.KindProperty, model.KindPropertyAccessor, model.KindParameter:
		block.Append(model.Identifier{Text: node.Name})
		appendTypeSuffix(block, node)
	default:
		block.Append(model.Identifier{Text: node.Name})
	}
	return block
}

func appendParameters(block *model.Block, node *model.Node) {
	block.Append(model.Symbol{Text: "("})
	for i, param := range node.DetailsOfKind(model.KindParameter) {
		if i > 0 {
			block.Append(model.Symbol{Text: ", "})
		}
		block.Append(model.Identifier{Text: param.Name})
		appendTypeSuffix(block, param)
	}
	block.Append(model.Symbol{Text: ")"})
}

// appendTypeSuffix emits ": Type" when the node carries a type detail. A
// type detail that resolves to a documented node is linked.
func appendTypeSuffix(block *model.Block, node *model.Node) {
	types := node.DetailsOfKind(model.KindType)
	if len(types) == 0 {
		return
	}
	block.Append(model.Symbol{Text: ": "})
	appendTypeName(block, types[0])
}

func appendTypeName(block *model.Block, typ *model.Node) {
	if len(typ.Links()) > 0 {
		block.Append(&model.NodeLink{To: typ.Links()[0]})
		return
	}
	block.Append(model.Identifier{Text: typ.Name})
}
