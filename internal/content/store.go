package content

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var embedded embed.FS

const defaultFile = "site.yaml"

// ErrInvalid wraps every content validation failure.
var ErrInvalid = errors.New("invalid site content")

// Store serves the current Site. Reads are lock-free; a reload swaps the
// whole document atomically.
type Store struct {
	fs       afero.Fs
	path     string
	md       *Markdown
	validate *validator.Validate
	current  atomic.Pointer[Site]
}

// NewStore loads content from path on fs. An empty path selects the embedded
// default document.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:       fs,
		path:     path,
		md:       NewMarkdown(),
		validate: newValidator(),
	}
	if path == "" {
		s.fs = afero.FromIOFS{FS: embedded}
		s.path = defaultFile
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Default returns a store over the embedded document. It panics if that
// document is invalid, which would be a build defect.
func Default() *Store {
	s, err := NewStore(nil, "")
	if err != nil {
		panic(err)
	}
	return s
}

// Site returns the active document. Callers must not modify it.
func (s *Store) Site() *Site {
	return s.current.Load()
}

// Path returns the file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads and validates the document. On failure the previously
// loaded document stays active.
func (s *Store) Reload() error {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("read content %s: %w", s.path, err)
	}
	site, err := s.parse(raw)
	if err != nil {
		return fmt.Errorf("load content %s: %w", s.path, err)
	}
	s.current.Store(site)
	slog.Debug("Site content loaded", "path", s.path)
	return nil
}

func (s *Store) parse(raw []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := s.validate.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var err error
	if site.Home.TaglineHTML, err = s.md.Render(site.Home.Tagline); err != nil {
		return nil, err
	}
	if site.About.IntroHTML, err = s.md.Render(site.About.Intro); err != nil {
		return nil, err
	}
	for i := range site.Contact.FAQ.Items {
		q := &site.Contact.FAQ.Items[i]
		if q.AnswerHTML, err = s.md.Render(q.Answer); err != nil {
			return nil, fmt.Errorf("faq item %d: %w", i, err)
		}
	}
	return &site, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("sitehref", func(fl validator.FieldLevel) bool {
		href := fl.Field().String()
		return strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:")
	}); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}
