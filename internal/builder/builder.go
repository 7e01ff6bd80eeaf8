// Package builder runs the validation-and-normalization pass that turns
// category source files into the generated catalog.
package builder

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osintlab/linkforge/internal/apperr"
	"github.com/osintlab/linkforge/internal/favicon"
	"github.com/osintlab/linkforge/internal/models"
	"github.com/osintlab/linkforge/internal/registry"
	"github.com/osintlab/linkforge/internal/storage"
	"github.com/osintlab/linkforge/internal/validate"
)

// Builder owns the accumulator state of one run: every error found, every
// normalized link, and the set of ids seen so far. A Builder is single-use;
// create a fresh one per run.
type Builder struct {
	store  storage.Provider
	logger *slog.Logger

	errs  []string
	links []models.Link
	seen  map[string]struct{}
}

// New returns a Builder over the given source provider.
func New(store storage.Provider, logger *slog.Logger) *Builder {
	return &Builder{
		store:  store,
		logger: logger,
		seen:   make(map[string]struct{}),
	}
}

// Result is the outcome of one full pass over the source files.
// An empty Errors slice means the catalog is valid.
type Result struct {
	Links  []models.Link
	Errors []string
}

// Run processes every source file in name order and returns the
// accumulated links and errors. Files without a category mapping are
// skipped with a warning and contribute neither links nor errors.
// Individual failures never abort the pass; the caller decides once,
// at the end, on the full error list.
func (b *Builder) Run() (*Result, error) {
	files, err := b.store.List()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .yaml files in links directory", apperr.ErrNoSources)
	}

	for _, sf := range files {
		b.processFile(sf)
	}

	return &Result{Links: b.links, Errors: b.errs}, nil
}

func (b *Builder) processFile(sf storage.SourceFile) {
	category, ok := registry.CategoryFor(sf.Stem)
	if !ok {
		b.logger.Warn("no category mapping for file, skipping",
			slog.String("file", sf.Name))
		return
	}

	data, err := b.store.Read(sf.Name)
	if err != nil {
		b.errs = append(b.errs, fmt.Sprintf("%s: read error: %v", sf.Name, err))
		return
	}
	b.logger.Debug("source loaded",
		slog.String("file", sf.Name),
		slog.String("sha256", sf.Checksum))

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		b.errs = append(b.errs, fmt.Sprintf("%s: YAML parse error: %v", sf.Name, err))
		return
	}
	seq := documentRoot(&doc)
	if seq == nil || seq.Kind != yaml.SequenceNode {
		b.errs = append(b.errs, fmt.Sprintf("%s: expected a YAML list at the top level", sf.Name))
		return
	}

	before := len(b.errs)
	for _, node := range seq.Content {
		b.processEntry(node, sf.Name, category)
	}

	status := "OK"
	if len(b.errs) > before {
		status = "ERROR"
	}
	b.logger.Info("processed file",
		slog.String("file", sf.Name),
		slog.String("status", status),
		slog.Int("entries", len(seq.Content)))
}

func (b *Builder) processEntry(node *yaml.Node, source, category string) {
	if node.Kind != yaml.MappingNode {
		b.errs = append(b.errs, fmt.Sprintf("%s: each entry must be a mapping", source))
		return
	}

	var e models.RawEntry
	if err := node.Decode(&e); err != nil {
		// A field with the wrong shape (say a non-integer priority) is a
		// schema error for this entry only; siblings are unaffected.
		loc := validate.Location(source, scalarField(node, "id"))
		b.errs = append(b.errs, fmt.Sprintf("%s: invalid entry: %v", loc, err))
		return
	}

	// Duplicates are reported, not dropped: the record still lands in the
	// link list so a single pass surfaces every problem.
	if _, dup := b.seen[e.ID]; dup {
		loc := validate.Location(source, e.ID)
		b.errs = append(b.errs, fmt.Sprintf("%s: duplicate ID, every link needs a unique id", loc))
	}
	b.seen[e.ID] = struct{}{}

	b.errs = append(b.errs, validate.Entry(&e, source)...)
	b.links = append(b.links, normalize(&e, category))
}

// normalize projects a raw entry onto the fully-defaulted output record.
// It always succeeds; invalid entries still produce a record so the run
// reports the complete set of problems before discarding its output.
func normalize(e *models.RawEntry, category string) models.Link {
	url := strings.TrimSpace(e.URL)

	icon := e.Icon
	if icon == "" {
		icon = favicon.URL(url)
	}
	region := e.Region
	if region == "" {
		region = "Global"
	}
	payWall := e.PayWall
	if payWall == "" {
		payWall = "Free"
	}
	types := e.Types
	if types == nil {
		types = []string{}
	}

	return models.Link{
		ID:          e.ID,
		Provider:    e.Provider,
		Display:     e.Display,
		Icon:        icon,
		Description: e.Description,
		Region:      region,
		PayWall:     payWall,
		URL:         url,
		Category:    category,
		Priority:    e.Priority,
		Types:       types,
		Autorun:     e.Autorun,
	}
}

// Document assembles the versioned catalog document around links.
func Document(links []models.Link, version, note string, now time.Time) *models.Document {
	return &models.Document{
		Note:      note,
		Version:   version,
		UpdatedAt: now.Format(time.DateOnly),
		Links:     links,
	}
}

// documentRoot unwraps the document node produced by yaml.Unmarshal.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0]
	}
	return nil
}

// scalarField returns the scalar value of key inside a mapping node, or
// the empty string. Used to recover an id for error locations when the
// full entry fails to decode.
func scalarField(node *yaml.Node, key string) string {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value == key && v.Kind == yaml.ScalarNode {
			return v.Value
		}
	}
	return ""
}
