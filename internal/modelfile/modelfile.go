// Package modelfile reads a prebuilt documentation model from a YAML file.
// It does not parse source code; it only deserializes a model produced by an
// upstream builder, resolving comment links against the declared node names.
package modelfile

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docrender/internal/comments"
	"git.home.luguber.info/inful/docrender/internal/errors"
	"git.home.luguber.info/inful/docrender/internal/model"
)

type fileSpec struct {
	Nodes []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	Comment    string        `yaml:"comment,omitempty"`
	Type       string        `yaml:"type,omitempty"`
	Params     []paramSpec   `yaml:"params,omitempty"`
	Members    []nodeSpec    `yaml:"members,omitempty"`
	Sections   []sectionSpec `yaml:"sections,omitempty"`
	Inheritors []string      `yaml:"inheritors,omitempty"`
	Links      []string      `yaml:"links,omitempty"`
}

type paramSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

type sectionSpec struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

var kindNames = map[string]model.Kind{
	"Module":           model.KindModule,
	"Package":          model.KindPackage,
	"Class":            model.KindClass,
	"Interface":        model.KindInterface,
	"Enum":             model.KindEnum,
	"EnumItem":         model.KindEnumItem,
	"Object":           model.KindObject,
	"Constructor":      model.KindConstructor,
	"Property":         model.KindProperty,
	"Function":         model.KindFunction,
	"PropertyAccessor": model.KindPropertyAccessor,
	"Unknown":          model.KindUnknown,
}

// Load reads and links the documentation model stored at path.
func Load(path string) ([]*model.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModelLoadError(path, err)
	}
	nodes, err := Parse(data)
	if err != nil {
		return nil, errors.ModelLoadError(path, err)
	}
	return nodes, nil
}

// Parse builds and links a model from YAML bytes.
func Parse(data []byte) ([]*model.Node, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, errors.CategoryModel, errors.SeverityFatal, "invalid model file")
	}

	b := &builder{index: map[string]*model.Node{}}
	roots := make([]*model.Node, 0, len(spec.Nodes))
	for i := range spec.Nodes {
		node, err := b.build(&spec.Nodes[i])
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	if err := b.link(); err != nil {
		return nil, err
	}
	return roots, nil
}

// builder performs the two-pass construction: first the node tree and a name
// index, then comment parsing and reference resolution against that index.
type builder struct {
	index   map[string]*model.Node
	pending []pendingNode
}

type pendingNode struct {
	node *model.Node
	spec *nodeSpec
}

func (b *builder) build(spec *nodeSpec) (*model.Node, error) {
	kind, ok := kindNames[spec.Kind]
	if !ok {
		return nil, errors.UnknownKind(spec.Kind)
	}
	node := model.NewNode(spec.Name, kind, nil)
	if _, exists := b.index[spec.Name]; !exists {
		b.index[spec.Name] = node
	}
	b.pending = append(b.pending, pendingNode{node: node, spec: spec})

	for _, param := range spec.Params {
		p := node.AppendDetail(model.NewNode(param.Name, model.KindParameter, nil))
		if param.Type != "" {
			p.AppendDetail(model.NewNode(param.Type, model.KindType, nil))
		}
	}
	if spec.Type != "" {
		node.AppendDetail(model.NewNode(spec.Type, model.KindType, nil))
	}

	for i := range spec.Members {
		member, err := b.build(&spec.Members[i])
		if err != nil {
			return nil, err
		}
		node.AppendMember(member)
	}
	return node, nil
}

// link runs after the whole tree exists so comments and type details can
// reference any declared node.
func (b *builder) link() error {
	resolve := func(name string) *model.Node { return b.index[name] }

	for _, p := range b.pending {
		if p.spec.Comment != "" {
			content, err := comments.Parse([]byte(p.spec.Comment), comments.Options{Resolver: resolve})
			if err != nil {
				return errors.Wrap(err, errors.CategoryModel, errors.SeverityFatal, "invalid comment").
					WithContext("node", p.spec.Name)
			}
			for _, section := range p.spec.Sections {
				sectionContent, err := comments.Parse([]byte(section.Text), comments.Options{Resolver: resolve})
				if err != nil {
					return errors.Wrap(err, errors.CategoryModel, errors.SeverityFatal, "invalid section").
						WithContext("node", p.spec.Name)
				}
				content.AddSection(section.Label, "").Append(sectionContent.Children()...)
			}
			p.node.SetContent(content)
		} else if len(p.spec.Sections) > 0 {
			content := model.NewContent()
			for _, section := range p.spec.Sections {
				sectionContent, err := comments.Parse([]byte(section.Text), comments.Options{Resolver: resolve})
				if err != nil {
					return errors.Wrap(err, errors.CategoryModel, errors.SeverityFatal, "invalid section").
						WithContext("node", p.spec.Name)
				}
				content.AddSection(section.Label, "").Append(sectionContent.Children()...)
			}
			p.node.SetContent(content)
		}

		for _, typ := range p.node.DetailsOfKind(model.KindType) {
			if target := b.index[typ.Name]; target != nil {
				typ.AppendLink(target)
			}
		}
		for _, param := range p.node.DetailsOfKind(model.KindParameter) {
			for _, typ := range param.DetailsOfKind(model.KindType) {
				if target := b.index[typ.Name]; target != nil {
					typ.AppendLink(target)
				}
			}
		}
		for _, name := range p.spec.Inheritors {
			target := b.index[name]
			if target == nil {
				return errors.New(errors.CategoryModel, errors.SeverityFatal, "unknown inheritor").
					WithContext("node", p.spec.Name).WithContext("inheritor", name)
			}
			p.node.AppendInheritor(target)
		}
		for _, name := range p.spec.Links {
			target := b.index[name]
			if target == nil {
				return errors.New(errors.CategoryModel, errors.SeverityFatal, "unknown link").
					WithContext("node", p.spec.Name).WithContext("link", name)
			}
			p.node.AppendLink(target)
		}
	}
	return nil
}
