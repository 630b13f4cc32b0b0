// Package location computes page destinations for documentation nodes and
// the relative links between them. Two strategies are provided: one file per
// node mirrored onto the ownership tree (FoldersService) and a flat single
// directory (SingleFolderService). Both are deterministic for a given
// (from, to, extension) triple.
package location

import (
	"strings"

	"git.home.luguber.info/inful/docrender/internal/errors"
	"git.home.luguber.info/inful/docrender/internal/format"
	"git.home.luguber.info/inful/docrender/internal/model"
)

// identifierToFilename maps a declaration name onto a filesystem- and
// URL-safe path segment.
func identifierToFilename(name string) string {
	if name == "" {
		return "index"
	}
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// relativePath rewrites target so that it resolves from the directory
// containing from. Both arguments are slash-separated.
func relativePath(from, target string) string {
	fromDir := []string{}
	if idx := strings.LastIndex(from, "/"); idx >= 0 {
		fromDir = strings.Split(from[:idx], "/")
	}
	targetParts := strings.Split(target, "/")

	common := 0
	for common < len(fromDir) && common < len(targetParts)-1 && fromDir[common] == targetParts[common] {
		common++
	}

	var sb strings.Builder
	for i := common; i < len(fromDir); i++ {
		sb.WriteString("../")
	}
	sb.WriteString(strings.Join(targetParts[common:], "/"))
	return sb.String()
}

// FoldersService places every node at a path mirroring its ownership chain,
// one file per node.
type FoldersService struct{}

var _ format.LocationService = FoldersService{}

// NodeLocation returns the node's canonical extension-less path.
func (FoldersService) NodeLocation(node *model.Node) (format.Location, error) {
	if node == nil {
		return format.Location{}, errors.LocationUnresolved("<nil>")
	}
	parts := make([]string, 0, 4)
	for _, ancestor := range node.Path() {
		parts = append(parts, identifierToFilename(ancestor.Name))
	}
	return format.Location{Path: strings.Join(parts, "/")}, nil
}

// RelativeLocation returns to's location, with extension, relative to from.
func (s FoldersService) RelativeLocation(from format.Location, to *model.Node, ext string) (format.Location, error) {
	target, err := s.NodeLocation(to)
	if err != nil {
		return format.Location{}, err
	}
	return format.Location{Path: relativePath(from.Path, target.Path) + "." + ext}, nil
}

// SingleFolderService places every node directly in one flat directory.
// Distinct nodes with equal names intentionally collide onto one page.
type SingleFolderService struct{}

var _ format.LocationService = SingleFolderService{}

func (SingleFolderService) NodeLocation(node *model.Node) (format.Location, error) {
	if node == nil {
		return format.Location{}, errors.LocationUnresolved("<nil>")
	}
	return format.Location{Path: identifierToFilename(node.Name)}, nil
}

func (s SingleFolderService) RelativeLocation(_ format.Location, to *model.Node, ext string) (format.Location, error) {
	target, err := s.NodeLocation(to)
	if err != nil {
		return format.Location{}, err
	}
	return format.Location{Path: target.Path + "." + ext}, nil
}

// ForName returns the service registered under a configuration name.
func ForName(name string) (format.LocationService, error) {
	switch name {
	case "", "folders":
		return FoldersService{}, nil
	case "single-folder":
		return SingleFolderService{}, nil
	default:
		return nil, errors.ValidationFailed("output.locations", "unknown location strategy "+name)
	}
}
