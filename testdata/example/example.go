// Package example demonstrates documentation rendering for go-dokuwiki tests.
//
// Features:
//   - Alpha: demonstrates list rendering.
//   - Beta: verifies list items stay intact.
//
// # Usage
//
// Construct a [Greeter] with NewGreeter and call Greet. See
// https://example.com/greeter for details.
//
//	g := example.NewGreeter("gopher")
//	fmt.Println(g.Greet())
package example

import (
	"io"
	"strings"
)

const (
	// Answer documents an exported constant.
	Answer = 42

	// hidden constant is never documented.
	internalConstant = 0
)

// Reader is re-exported from io and must not be documented here.
type Reader = io.Reader

// Greeter produces greeting messages.
type Greeter struct {
	// Name is included to verify field documentation.
	Name string

	strings.Builder
}

// NewGreeter constructs a Greeter.
//
// :param name: who to greet
// :returns: a ready Greeter
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// Greet returns a friendly message.
func (g *Greeter) Greet() string {
	return "hello " + g.Name
}

func (g *Greeter) secret() string {
	return g.Name
}

// Salutation is a local alias of Greeter.
type Salutation = Greeter

// Speaker is implemented by anything that talks.
type Speaker interface {
	// Speak says something.
	Speak() string
}
