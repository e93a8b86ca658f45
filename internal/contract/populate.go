package contract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches any bracketed token left after the known-key
// substitution pass.
var placeholderPattern = regexp.MustCompile(`\[[^\]]+\]`)

// Populator substitutes extracted field values into registry templates.
type Populator struct {
	registry *Registry
}

// NewPopulator creates a Populator backed by the given registry.
func NewPopulator(registry *Registry) *Populator {
	return &Populator{registry: registry}
}

// Populate fills the named template with the given field set.
//
// An unknown template name returns a descriptive error string rather than an
// error value: the caller is an interactive surface and renders the text
// as-is. Substitution runs in two passes: known keys first (sorted, so output
// is deterministic), then one global sweep replacing every leftover bracketed
// token with the NotSpecified sentinel. Substitution is single-pass: a field
// value that itself contains a bracketed token is not re-substituted with
// another field value.
func (p *Populator) Populate(name TemplateName, fields FieldSet) string {
	tpl, ok := p.registry.Template(name)
	if !ok {
		return fmt.Sprintf("Error: Template '%s' not found.", name)
	}

	keys := make([]string, 0, len(fields))
	upper := make(map[string]string, len(fields))
	for k, v := range fields {
		uk := strings.ToUpper(k)
		upper[uk] = v
		keys = append(keys, uk)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tpl = strings.ReplaceAll(tpl, "["+k+"]", upper[k])
	}

	return placeholderPattern.ReplaceAllString(tpl, NotSpecified)
}
