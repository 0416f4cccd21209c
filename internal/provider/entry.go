// Package provider defines the lookup result shared by dictionary adapters.
package provider

// Entry is what a dictionary knows about one word. Lists are deduplicated
// and in the provider's order.
type Entry struct {
	Word      string
	Phonetics []string
	AudioURLs []string
	Meanings  []Meaning
}

// Meaning groups the definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
	Synonyms     []string
	Antonyms     []string
}

// Definition is a single sense with an optional usage example.
type Definition struct {
	Text     string
	Example  string
	Synonyms []string
	Antonyms []string
}
