package merger

import (
	"log/slog"

	"github.com/erraggy/oasmerge/internal/naming"
	"github.com/erraggy/oasmerge/oaserrors"
	"github.com/erraggy/oasmerge/parser"
)

// Config configures how documents are merged.
type Config struct {
	// SanitizeTitles converts document titles into identifier-shaped prefixes
	// ("My Pet API" -> "MyPetAPI") before they are used to rename colliding
	// schemas. When false, titles are used verbatim.
	SanitizeTitles bool
	// AlwaysRename namespaces every schema contributed by a later document,
	// not just the colliding ones. The default renames on genuine collision
	// only, which keeps merged output stable and reference rewriting minimal.
	AlwaysRename bool
}

// DefaultConfig returns the default merge configuration.
func DefaultConfig() Config {
	return Config{}
}

// Merger folds ordered document sequences into merged documents.
//
// A Merger holds configuration only; it keeps no state between Merge calls
// and is safe for concurrent use.
type Merger struct {
	config Config
	logger *slog.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithConfig replaces the whole configuration.
func WithConfig(config Config) Option {
	return func(m *Merger) { m.config = config }
}

// WithSanitizeTitles toggles title sanitization for schema rename prefixes.
func WithSanitizeTitles(sanitize bool) Option {
	return func(m *Merger) { m.config.SanitizeTitles = sanitize }
}

// WithAlwaysRename toggles unconditional namespacing of schemas from later
// documents.
func WithAlwaysRename(always bool) Option {
	return func(m *Merger) { m.config.AlwaysRename = always }
}

// WithLogger replaces the logger used for merge diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Merger) { m.logger = logger }
}

// New creates a Merger with the provided options.
func New(opts ...Option) *Merger {
	m := &Merger{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge merges documents with the default configuration.
func Merge(docs []*parser.Document) (*parser.Document, error) {
	return New().Merge(docs)
}

// Merge folds the documents left to right into a single merged document.
//
// An empty sequence fails with EmptyInputError. A single document is
// returned as-is, with no merge logic run. The inputs are never modified;
// the returned document shares nested values with them but owns its
// top-level structure.
func (m *Merger) Merge(docs []*parser.Document) (*parser.Document, error) {
	if len(docs) == 0 {
		return nil, &oaserrors.EmptyInputError{}
	}
	if len(docs) == 1 {
		return docs[0], nil
	}

	acc := docs[0].Clone()
	for _, candidate := range docs[1:] {
		if err := m.mergeInto(acc, candidate); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// mergeInto folds one candidate document into the accumulator. Reference
// rewriting must happen before path merging: paths can themselves contain
// pointers into definitions.
func (m *Merger) mergeInto(acc, candidate *parser.Document) error {
	if err := checkVersions(acc, candidate); err != nil {
		return err
	}

	if candidate.Tags != nil {
		acc.Tags = MergeTags(acc, candidate)
	}

	if candidate.SecuritySchemes() != nil {
		merged, err := MergeSecurityDefinitions(acc, candidate)
		if err != nil {
			return err
		}
		acc.SetSecuritySchemes(merged)
	}

	if candidate.SchemaDefinitions() != nil {
		defs, renames, err := mergeDefinitions(acc, candidate, m.namespacePrefix, m.config.AlwaysRename)
		if err != nil {
			return err
		}
		// Self-references inside freshly merged schemas must honor the same
		// renames as everything else.
		acc.SetSchemaDefinitions(rewriteSchemaMap(defs, renames))
		if len(renames) > 0 {
			m.logger.Debug("renamed colliding definitions",
				"source", candidate.Info.Title, "count", len(renames))
			candidate = RewriteDocument(candidate, renames)
		}
	}

	paths, err := MergePaths(acc, candidate)
	if err != nil {
		return err
	}
	acc.Paths = paths
	return nil
}

// checkVersions enforces version compatibility between the accumulator and a
// candidate. Within a family the declared tags must match exactly. An
// accumulator that declares no version accepts any candidate.
func checkVersions(acc, candidate *parser.Document) error {
	if acc.Swagger != "" && acc.Swagger != candidate.Swagger {
		return &oaserrors.VersionMismatchError{
			AccumulatorTitle:   acc.Info.Title,
			AccumulatorVersion: acc.Swagger,
			CandidateTitle:     candidate.Info.Title,
			CandidateVersion:   candidate.Swagger,
		}
	}
	if acc.OpenAPI != "" && acc.OpenAPI != candidate.OpenAPI {
		return &oaserrors.VersionMismatchError{
			AccumulatorTitle:   acc.Info.Title,
			AccumulatorVersion: acc.OpenAPI,
			CandidateTitle:     candidate.Info.Title,
			CandidateVersion:   candidate.OpenAPI,
		}
	}
	return nil
}

// namespacePrefix derives the rename prefix from a document title.
func (m *Merger) namespacePrefix(title string) string {
	if m.config.SanitizeTitles {
		return naming.SanitizeTitle(title)
	}
	return title
}
