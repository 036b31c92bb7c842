package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// Catalog is the read-only list of recognized body parts. It is safe for
// concurrent use.
type Catalog struct {
	parts  []m.BodyPart
	labels []string // normalized labels, parallel to parts
	byID   map[string]int
}

// NewCatalog validates parts and builds a Catalog. Keywords are normalized;
// the input slice is not retained.
func NewCatalog(parts []m.BodyPart) (*Catalog, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no body parts", ErrInvalidCatalog)
	}

	c := &Catalog{
		parts:  make([]m.BodyPart, 0, len(parts)),
		labels: make([]string, 0, len(parts)),
		byID:   make(map[string]int, len(parts)),
	}

	for i, part := range parts {
		if strings.TrimSpace(part.ID) == "" {
			return nil, fmt.Errorf("%w: part %d has no id", ErrInvalidCatalog, i)
		}

		if _, dup := c.byID[part.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, part.ID)
		}

		label := normalize(part.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: part %q has no label", ErrInvalidCatalog, part.ID)
		}

		keywords := make([]string, 0, len(part.Keywords))
		for _, kw := range part.Keywords {
			if kw = normalize(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}

		part.Keywords = keywords
		c.byID[part.ID] = len(c.parts)
		c.parts = append(c.parts, part)
		c.labels = append(c.labels, label)
	}

	return c, nil
}

// FindByText returns the first part, in catalog order, that matches query.
// A part matches when one of its keywords or its label occurs in the query,
// or when the query occurs in its label. Overlapping keywords resolve to the
// earlier entry.
func (c *Catalog) FindByText(query string) (m.BodyPart, bool) {
	q := normalize(query)
	if q == "" {
		return m.BodyPart{}, false
	}

	for i, part := range c.parts {
		label := c.labels[i]
		if strings.Contains(q, label) || strings.Contains(label, q) {
			return part, true
		}

		for _, kw := range part.Keywords {
			if strings.Contains(q, kw) {
				return part, true
			}
		}
	}

	return m.BodyPart{}, false
}

// ByID looks up a part by its identifier.
func (c *Catalog) ByID(id string) (m.BodyPart, bool) {
	i, ok := c.byID[id]
	if !ok {
		return m.BodyPart{}, false
	}

	return c.parts[i], true
}

// Parts returns the parts in catalog order.
func (c *Catalog) Parts() []m.BodyPart {
	out := make([]m.BodyPart, len(c.parts))
	copy(out, c.parts)

	return out
}

// Len returns the number of parts.
func (c *Catalog) Len() int {
	return len(c.parts)
}

// normalize trims and lowercases s. A Caser is not safe for concurrent use,
// so one is built per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
