package utility

import (
	"math/rand/v2"
)

var adjectives = []string{
	"Brave", "Calm", "Clever", "Curious", "Eager", "Fancy", "Gentle", "Happy",
	"Jolly", "Kind", "Lively", "Lucky", "Mighty", "Nimble", "Proud", "Quiet",
	"Rapid", "Silly", "Swift", "Witty",
}

var nouns = []string{
	"Badger", "Otter", "Falcon", "Panda", "Tiger", "Koala", "Fox", "Lynx",
	"Heron", "Dolphin", "Wombat", "Raven", "Bison", "Gecko", "Moose", "Owl",
	"Puffin", "Walrus", "Yak", "Zebra",
}

// NameGenerator composes random "<adjective> <noun>" names.
type NameGenerator struct {
	intN func(n int) int
}

// NewNameGenerator returns a NameGenerator backed by the global math/rand/v2 source.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{intN: rand.IntN}
}

// NewNameGeneratorWithRand returns a NameGenerator using r, for deterministic output.
func NewNameGeneratorWithRand(r *rand.Rand) *NameGenerator {
	return &NameGenerator{intN: r.IntN}
}

// Generate picks one adjective and one noun uniformly and joins them with a space.
func (g *NameGenerator) Generate() string {
	return adjectives[g.intN(len(adjectives))] + " " + nouns[g.intN(len(nouns))]
}
