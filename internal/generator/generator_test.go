package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docrender/internal/errors"
	"git.home.luguber.info/inful/docrender/internal/format"
	"git.home.luguber.info/inful/docrender/internal/location"
	"git.home.luguber.info/inful/docrender/internal/model"
)

func sampleTree() *model.Node {
	pkg := model.NewNode("net", model.KindPackage, nil)
	cls := pkg.AppendMember(model.NewNode("Client", model.KindClass, nil))
	summary := &model.Para{}
	summary.AppendText("Sends requests.")
	fn := cls.AppendMember(model.NewNode("send", model.KindFunction, nil))
	fn.Content().Append(summary)
	return pkg
}

func TestGenerate_WritesPagePerNode(t *testing.T) {
	root := t.TempDir()
	g, err := New(Options{Root: root, SiteTitle: "lib", Locations: location.FoldersService{}})
	require.NoError(t, err)

	require.NoError(t, g.Generate([]*model.Node{sampleTree()}))

	for _, rel := range []string{
		"net.html",
		filepath.Join("net", "client.html"),
		filepath.Join("net", "client", "send.html"),
	} {
		data, err := os.ReadFile(filepath.Join(root, rel))
		require.NoError(t, err, "expected page %s", rel)
		require.Contains(t, string(data), "<!DOCTYPE html>")
	}

	page, err := os.ReadFile(filepath.Join(root, "net", "client.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<title>Client - lib</title>")
	require.Contains(t, string(page), "Sends requests.")
}

func TestGenerate_CleanRemovesStalePages(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, "stale.html")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	g, err := New(Options{Root: root, Locations: location.FoldersService{}, Clean: true})
	require.NoError(t, err)
	require.NoError(t, g.Generate([]*model.Node{sampleTree()}))

	_, err = os.Stat(stale)
	require.True(t, os.IsNotExist(err), "stale page should be removed")
}

func TestGenerate_SingleFolderLayout(t *testing.T) {
	root := t.TempDir()
	g, err := New(Options{Root: root, Locations: location.SingleFolderService{}})
	require.NoError(t, err)
	require.NoError(t, g.Generate([]*model.Node{sampleTree()}))

	for _, rel := range []string{"net.html", "client.html", "send.html"} {
		_, err := os.Stat(filepath.Join(root, rel))
		require.NoError(t, err, "expected page %s", rel)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{Locations: location.FoldersService{}})
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))

	_, err = New(Options{Root: t.TempDir()})
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryValidation))
}

// failingLocations fails relative resolution only, so the page location
// resolves but rendering its breadcrumbs does not.
type failingLocations struct{}

func (failingLocations) NodeLocation(node *model.Node) (format.Location, error) {
	return location.FoldersService{}.NodeLocation(node)
}

func (failingLocations) RelativeLocation(format.Location, *model.Node, string) (format.Location, error) {
	return format.Location{}, errors.LocationUnresolved("target")
}

func TestGenerate_RenderFailureWritesNothing(t *testing.T) {
	root := t.TempDir()
	g, err := New(Options{Root: root, Locations: failingLocations{}})
	require.NoError(t, err)

	err = g.Generate([]*model.Node{sampleTree()})
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryRender))

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	require.Empty(t, entries, "failed render must not leave partial pages")
}
