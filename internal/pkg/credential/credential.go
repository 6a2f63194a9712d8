// Package credential derives system login IDs and temporary passwords.
package credential

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	tempPasswordPrefix = "Pass@"
	tempPasswordMin    = 1000
	tempPasswordMax    = 9999
	missingNamePad     = "XX"
)

// Credentials is a freshly issued login ID and temporary password.
type Credentials struct {
	LoginID      string
	TempPassword string
}

// Generator builds credentials. The zero value uses the wall clock and the
// global random source.
type Generator struct {
	Now  func() time.Time
	Rand func(n int) int // returns an int in [0, n)
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate derives credentials for the (existingUserCount+1)th user.
//
// The login ID is company code + name code + year + serial, e.g. "Odoo India",
// "John Doe", 0 in 2026 gives OIJODO20260001.
func (g *Generator) Generate(companyName, fullName string, existingUserCount int) Credentials {
	loginID := fmt.Sprintf("%s%s%04d%04d",
		companyCode(companyName),
		nameCode(fullName),
		g.now().Year(),
		existingUserCount+1,
	)
	password := fmt.Sprintf("%s%d", tempPasswordPrefix, tempPasswordMin+g.intn(tempPasswordMax-tempPasswordMin+1))
	return Credentials{LoginID: loginID, TempPassword: password}
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) intn(n int) int {
	if g.Rand != nil {
		return g.Rand(n)
	}
	return rand.Intn(n)
}

// companyCode takes the initials of the first two words, or the first two
// letters of a single-word name: "Odoo India" is OI, "Acme" is AC.
func companyCode(companyName string) string {
	words := strings.Fields(companyName)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return strings.ToUpper(prefix(words[0], 2))
	default:
		return strings.ToUpper(prefix(words[0], 1) + prefix(words[1], 1))
	}
}

// nameCode takes two letters of the first name and two of the last. A single
// token name counts as both first and last name.
func nameCode(fullName string) string {
	parts := strings.Fields(fullName)
	var first, last string
	if len(parts) > 0 {
		first = parts[0]
		last = parts[len(parts)-1]
	}
	lastCode := prefix(last, 2)
	if lastCode == "" {
		lastCode = missingNamePad
	}
	return strings.ToUpper(prefix(first, 2) + lastCode)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
