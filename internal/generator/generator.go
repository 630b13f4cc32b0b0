// Package generator drives page production: it walks the documentation
// tree, renders one HTML page per node through the formatter, and writes the
// results under the output root.
package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docrender/internal/errors"
	"git.home.luguber.info/inful/docrender/internal/format"
	"git.home.luguber.info/inful/docrender/internal/format/htmlformat"
	"git.home.luguber.info/inful/docrender/internal/logfields"
	"git.home.luguber.info/inful/docrender/internal/metrics"
	"git.home.luguber.info/inful/docrender/internal/model"
	"git.home.luguber.info/inful/docrender/internal/signature"
)

// Options configures a Generator. Zero values get working defaults.
type Options struct {
	// Root is the output directory pages are written under.
	Root string
	// SiteTitle, when set, is appended to every page title.
	SiteTitle string
	// Locations defaults to the folders strategy when nil.
	Locations format.LocationService
	// Language defaults to the generic signature renderer when nil.
	Language format.LanguageService
	// Template defaults to the built-in page shell when nil.
	Template htmlformat.Template
	// Recorder defaults to a no-op recorder when nil.
	Recorder metrics.Recorder
	// Clean removes the output root before generation.
	Clean bool
}

// Generator renders a documentation model into a static page tree.
type Generator struct {
	opts      Options
	locations format.LocationService
	formatter *htmlformat.Formatter
	recorder  metrics.Recorder
	runID     string
}

// New builds a Generator from options.
func New(opts Options) (*Generator, error) {
	if opts.Root == "" {
		return nil, errors.ValidationFailed("root", "output directory must not be empty")
	}
	if opts.Locations == nil {
		return nil, errors.ValidationFailed("locations", "a location service is required")
	}
	lang := opts.Language
	if lang == nil {
		lang = signature.Service{}
	}
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Generator{
		opts:      opts,
		locations: opts.Locations,
		formatter: htmlformat.New(opts.Locations, lang, opts.Template),
		recorder:  recorder,
		runID:     uuid.NewString(),
	}, nil
}

// Generate renders a page for every node in the tree and writes the site
// under the output root. The first failure aborts the run; the partially
// written site should be discarded by the caller.
func (g *Generator) Generate(nodes []*model.Node) error {
	start := time.Now()
	slog.Info("Starting documentation generation",
		logfields.RunID(g.runID),
		logfields.Output(g.opts.Root))

	if g.opts.Clean {
		if err := os.RemoveAll(g.opts.Root); err != nil {
			g.recorder.IncGenerateOutcome("failed")
			return errors.PageWriteError(g.opts.Root, err)
		}
	}

	pages, err := g.generatePages(nodes)
	g.recorder.ObserveGenerateDuration(time.Since(start))
	if err != nil {
		g.recorder.IncGenerateOutcome("failed")
		slog.Error("Generation failed", logfields.RunID(g.runID), logfields.Error(err))
		return err
	}
	g.recorder.IncGenerateOutcome("success")
	g.recorder.SetPagesTotal(pages)
	slog.Info("Generation complete",
		logfields.RunID(g.runID),
		logfields.Pages(pages),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

// pageWorthy filters out nodes that only exist as declaration details.
func pageWorthy(kind model.Kind) bool {
	switch kind {
	case model.KindParameter, model.KindTypeParameter, model.KindType:
		return false
	}
	return true
}

func (g *Generator) generatePages(nodes []*model.Node) (int, error) {
	pages := 0
	for _, node := range nodes {
		if !pageWorthy(node.Kind) {
			continue
		}
		if err := g.writePage(node); err != nil {
			return pages, err
		}
		pages++
		nested, err := g.generatePages(node.Members())
		pages += nested
		if err != nil {
			return pages, err
		}
	}
	return pages, nil
}

func (g *Generator) writePage(node *model.Node) error {
	start := time.Now()
	loc, err := g.locations.NodeLocation(node)
	if err != nil {
		g.recorder.IncPageResult(metrics.ResultFatal)
		return errors.PageRenderError(node.Name, err)
	}

	title := node.Name
	if g.opts.SiteTitle != "" {
		title = node.Name + " - " + g.opts.SiteTitle
	}

	var buf strings.Builder
	if err := g.formatter.RenderPage(loc, &buf, title, []*model.Node{node}); err != nil {
		// The partially filled buffer is dropped here; nothing reaches disk.
		g.recorder.IncPageResult(metrics.ResultFatal)
		slog.Error("Page render failed",
			logfields.RunID(g.runID),
			logfields.Node(node.Name),
			logfields.Error(err))
		return errors.PageRenderError(node.Name, err)
	}

	rel := loc.Path + "." + g.formatter.Extension()
	abs := filepath.Join(g.opts.Root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		g.recorder.IncPageResult(metrics.ResultFatal)
		return errors.PageWriteError(abs, err)
	}
	if err := os.WriteFile(abs, []byte(buf.String()), 0o644); err != nil {
		g.recorder.IncPageResult(metrics.ResultFatal)
		return errors.PageWriteError(abs, err)
	}

	g.recorder.ObservePageDuration(time.Since(start))
	g.recorder.IncPageResult(metrics.ResultSuccess)
	slog.Debug("Page written",
		logfields.RunID(g.runID),
		logfields.Node(node.Name),
		logfields.Kind(string(node.Kind)),
		logfields.Page(rel))
	return nil
}
