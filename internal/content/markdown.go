package content

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders settings copy (policies, lead times) to sanitised HTML.
// Rendered output is memoised since settings are fixed for the process lifetime.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]template.HTML
}

// NewMarkdown returns a renderer with the storefront's HTML policy.
func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
		policy: newPolicy(),
		cache:  map[string]template.HTML{},
	}
}

func newPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// Render converts src to HTML. Empty input renders as empty output; conversion failures
// fall back to the escaped source text.
func (m *Markdown) Render(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	m.mu.RLock()
	out, ok := m.cache[src]
	m.mu.RUnlock()
	if ok {
		return out
	}

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		out = template.HTML(template.HTMLEscapeString(src))
	} else {
		out = template.HTML(strings.TrimSpace(m.policy.Sanitize(buf.String())))
	}

	m.mu.Lock()
	m.cache[src] = out
	m.mu.Unlock()
	return out
}
