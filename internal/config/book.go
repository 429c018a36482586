package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Book is a YAML place book:
//
//	default: essen
//	places:
//	  - name: essen
//	    latitude: 51.44968
//	    longitude: 6.97337
//	    zone: Europe/Berlin
type Book struct {
	DefaultName string  `yaml:"default"`
	Places      []Place `yaml:"places"`
}

// Load reads and parses the place book at path.
func Load(path string) (*Book, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read place book: %w", err)
	}
	book, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return book, nil
}

// Parse decodes a place book and validates every entry. Unknown keys are
// rejected.
func Parse(data []byte) (*Book, error) {
	var book Book
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&book); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse place book: %w", err)
	}

	seen := make(map[string]bool, len(book.Places))
	for _, p := range book.Places {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: place without a name", ErrInvalidPlace)
		}
		key := strings.ToLower(p.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate place %q", ErrInvalidPlace, p.Name)
		}
		seen[key] = true
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	if book.DefaultName != "" && !seen[strings.ToLower(book.DefaultName)] {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownPlace, book.DefaultName)
	}
	return &book, nil
}

// Lookup finds a place by name, ignoring case.
func (b *Book) Lookup(name string) (Place, error) {
	for _, p := range b.Places {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Place{}, fmt.Errorf("%w: %q", ErrUnknownPlace, name)
}

// Default returns the place named by the book's default key.
func (b *Book) Default() (Place, error) {
	if b.DefaultName == "" {
		return Place{}, ErrNoPlace
	}
	return b.Lookup(b.DefaultName)
}
