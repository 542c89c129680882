// SPDX-License-Identifier: MIT

// Package pages serves the site's markdown content pages. Pages ship
// embedded in the binary; an optional directory on disk overrides them by
// slug and can be watched for edits.
package pages

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devcontracting/dcsite/internal/logger"
)

//go:embed content/*.md
var embedded embed.FS

// Page is one rendered content page.
type Page struct {
	Slug        string
	Title       string
	Description string
	HTML        []byte
}

type meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
	Draft       bool   `yaml:"draft"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ErrInvalidSlug is returned for a page whose slug is not lowercase kebab case.
var ErrInvalidSlug = errors.New("invalid page slug")

// Store holds the current set of pages. Reads are safe during Reload.
type Store struct {
	dir string
	md  goldmark.Markdown
	log *logger.Logger

	mu    sync.RWMutex
	pages map[string]*Page
}

// NewStore builds a store over the embedded pages plus dir (which may be
// empty) and loads it once.
func NewStore(dir string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		dir: dir,
		log: log,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the override directory, or "".
func (s *Store) Dir() string {
	return s.dir
}

// Get returns the page for slug.
func (s *Store) Get(slug string) (*Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pages[slug]
	return p, ok
}

// Slugs returns every known slug in sorted order.
func (s *Store) Slugs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.pages))
	for slug := range s.pages {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Reload re-reads every source and swaps the page set atomically. On error
// the previous set stays in place.
func (s *Store) Reload() error {
	next := make(map[string]*Page)

	if err := s.loadFS(embedded, "content", next); err != nil {
		return fmt.Errorf("failed to load embedded pages: %w", err)
	}
	if s.dir != "" {
		if _, err := os.Stat(s.dir); err == nil {
			if err := s.loadFS(os.DirFS(s.dir), ".", next); err != nil {
				return fmt.Errorf("failed to load pages from %s: %w", s.dir, err)
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat pages dir: %w", err)
		}
	}

	s.mu.Lock()
	s.pages = next
	s.mu.Unlock()

	s.log.WithFields(map[string]any{"pages": len(next)}).Debug("content pages loaded")
	return nil
}

func (s *Store) loadFS(fsys fs.FS, root string, into map[string]*Page) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(root, e.Name()))
		if err != nil {
			return err
		}
		p, err := s.parse(e.Name(), raw)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		if p == nil {
			continue
		}
		into[p.Slug] = p
	}
	return nil
}

// parse converts one markdown file. Drafts return nil.
func (s *Store) parse(name string, raw []byte) (*Page, error) {
	var m meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &m)
	if err != nil {
		// No frontmatter: the whole file is markdown
		body = raw
		m = meta{}
	}
	if m.Draft {
		return nil, nil
	}

	base := strings.TrimSuffix(name, path.Ext(name))
	slug := m.Slug
	if slug == "" {
		slug = base
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	title := m.Title
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(base, "-", " "))
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	return &Page{
		Slug:        slug,
		Title:       title,
		Description: m.Description,
		HTML:        buf.Bytes(),
	}, nil
}
