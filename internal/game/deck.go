package game

import (
	"fmt"
	"math/rand/v2"
)

// Catalog is the full list of symbols available for dealing.
// It must hold at least as many symbols as the largest Pairs of any difficulty.
var Catalog = []Symbol{
	{ID: "Facebook", Name: "Facebook"},
	{ID: "Twitter", Name: "Twitter"},
	{ID: "Github", Name: "GitHub"},
	{ID: "Linkedin", Name: "LinkedIn"},
	{ID: "Apple", Name: "Apple"},
	{ID: "Figma", Name: "Figma"},
	{ID: "Youtube", Name: "YouTube"},
	{ID: "Wordpress", Name: "WordPress"},
	{ID: "Docker", Name: "Docker"},
	{ID: "Windows", Name: "Windows"},
	{ID: "Paypal", Name: "PayPal"},
	{ID: "Discord", Name: "Discord"},
	{ID: "Android", Name: "Android"},
	{ID: "Telegram", Name: "Telegram"},
	{ID: "Pinterest", Name: "Pinterest"},
	{ID: "React", Name: "React"},
	{ID: "Node", Name: "Node.js"},
}

// LookupSymbol returns the catalog entry for id.
func LookupSymbol(id SymbolID) (Symbol, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Symbol{}, false
}

// BuildDeck deals a new shuffled set of cards for the difficulty:
// Pairs distinct symbols are drawn from the Catalog, each placed twice, and
// the resulting 2*Pairs cards are shuffled and numbered 0..2*Pairs-1.
//
// If rng is nil the package-level random source is used.
func BuildDeck(d Difficulty, rng *rand.Rand) []Card {
	pairs := d.Config().Pairs
	if pairs > len(Catalog) {
		panic(fmt.Sprintf("game: catalog has %d symbols, difficulty %s needs %d", len(Catalog), d, pairs))
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}

	// Draw the symbols: a shuffled prefix of the catalog.
	ids := make([]SymbolID, len(Catalog))
	for i, s := range Catalog {
		ids[i] = s.ID
	}
	shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	ids = ids[:pairs]

	// Duplicate and shuffle the multiset.
	faces := make([]SymbolID, 0, 2*pairs)
	faces = append(faces, ids...)
	faces = append(faces, ids...)
	shuffle(len(faces), func(i, j int) { faces[i], faces[j] = faces[j], faces[i] })

	cards := make([]Card, len(faces))
	for i, id := range faces {
		cards[i] = Card{ID: i, Symbol: id}
	}
	return cards
}
