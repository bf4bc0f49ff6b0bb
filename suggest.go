package wisp

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions bounds how many near-miss names are offered in an
// IdentifierNotDefined message.
const maxSuggestions = 3

// identifierNotDefined builds the diagnostic for a failed lookup or
// assignment, appending a "did you mean" hint built from the names
// currently visible in env when any are a close match for name.
func identifierNotDefined(name string, span CodeSpan, env *Environment) *Diagnostic {
	msg := fmt.Sprintf("identifier '%s' is not defined", name)
	if suggestions := suggestNames(name, env.Names()); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", joinQuoted(suggestions))
	}
	return &Diagnostic{Kind: DiagIdentifierNotDefined, Message: msg, Span: span}
}

// suggestNames ranks candidates by edit distance to name and returns
// the closest matches, most likely first.
func suggestNames(name string, candidates []string) []string {
	ranks := fuzzy.RankFindFold(name, candidates)
	sort.Sort(ranks)
	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func joinQuoted(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("'%s'", n)
	}
	return out
}
