/*
Package response defines the transcript line produced for every processed
command line and the classification used for reporting.
*/
package response

import (
	"fmt"
	"strings"
)

// Kind classifies a Response.
type Kind int

const (
	// Echo is a successfully applied command, repeated back.
	Echo Kind = iota
	// Info is a computed business outcome (duplicate, already, hired, stats...).
	Info
	// NotFound is a line whose first field is not a known keyword.
	NotFound
	// ShapeError is a known keyword with the wrong number of arguments.
	ShapeError
	// ValidationError is a malformed argument or a disallowed transition.
	ValidationError
	// ReferenceError names an applicant that is not registered.
	ReferenceError
)

// Kinds lists every Kind in reporting order.
func Kinds() []Kind {
	return []Kind{Echo, Info, NotFound, ShapeError, ValidationError, ReferenceError}
}

func (k Kind) String() string {
	switch k {
	case Echo:
		return "echo"
	case Info:
		return "info"
	case NotFound:
		return "not-found"
	case ShapeError:
		return "shape-error"
	case ValidationError:
		return "validation-error"
	case ReferenceError:
		return "reference-error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsError reports whether the kind is one of the wrapped error kinds or NotFound.
func (k Kind) IsError() bool {
	return k >= NotFound
}

// Response is the transcript text for one input line.
type Response struct {
	Kind Kind
	Text string
}

// EchoTokens repeats a command's tokens joined by single spaces.
func EchoTokens(tokens []string) Response {
	return Response{Kind: Echo, Text: strings.Join(tokens, " ")}
}

func Informational(text string) Response {
	return Response{Kind: Info, Text: text}
}

// CommandNotFound keeps line verbatim, including any trailing newline.
func CommandNotFound(line string) Response {
	return Response{Kind: NotFound, Text: "Command not found for " + line}
}

// Invalid wraps tokens in the "Error: Command ... is invalid. <detail>" form.
// The space before detail is kept even when detail is empty.
func Invalid(kind Kind, tokens []string, detail string) Response {
	return Response{
		Kind: kind,
		Text: fmt.Sprintf("Error: Command %s is invalid. %s", strings.Join(tokens, " "), detail),
	}
}

func Shape(tokens []string) Response {
	return Invalid(ShapeError, tokens, "")
}
