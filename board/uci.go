package board

import "strings"

// UCI renders an action in long algebraic UCI notation, e.g. "e2e4", "e7e8q".
func (a Action) UCI() string {
	s := SquareName(a.From) + SquareName(a.To)
	if p, ok := a.Promotion(); ok {
		s += promoLetter(p)
	}
	return s
}

// ParseUCIAction resolves UCI move text against a legal-move list, since
// the text alone doesn't carry the piece/flag information an Action needs.
func ParseUCIAction(text string, legal []Action) (Action, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, a := range legal {
		if a.UCI() == text {
			return a, true
		}
	}
	return Action{}, false
}
