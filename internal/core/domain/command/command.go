package command

import "strings"

// Kind is the closed set of keywords the interpreter understands.
type Kind int

const (
	Define Kind = iota + 1
	Create
	Advance
	Decide
	Stats
)

var keywords = map[string]Kind{
	"DEFINE":  Define,
	"CREATE":  Create,
	"ADVANCE": Advance,
	"DECIDE":  Decide,
	"STATS":   Stats,
}

func (k Kind) String() string {
	switch k {
	case Define:
		return "DEFINE"
	case Create:
		return "CREATE"
	case Advance:
		return "ADVANCE"
	case Decide:
		return "DECIDE"
	case Stats:
		return "STATS"
	default:
		return "UNKNOWN"
	}
}

// ParseKind maps a keyword to its Kind. Keywords are case-sensitive.
func ParseKind(keyword string) (Kind, bool) {
	k, ok := keywords[keyword]
	return k, ok
}

// Command is one tokenized input line with a recognized keyword.
type Command struct {
	Kind   Kind
	Tokens []string // every whitespace-separated field, keyword included
	Args   []string // Tokens without the keyword
	Raw    string   // the line exactly as received
}

// Parse splits line on whitespace and recognizes its keyword.
// It returns false for blank lines and unknown keywords.
func Parse(line string) (Command, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, false
	}
	kind, ok := ParseKind(tokens[0])
	if !ok {
		return Command{}, false
	}
	return Command{
		Kind:   kind,
		Tokens: tokens,
		Args:   tokens[1:],
		Raw:    line,
	}, true
}
