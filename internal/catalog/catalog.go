package catalog

import "errors"

// ErrEmpty is returned when a word list contains no entries.
var ErrEmpty = errors.New("catalog has no entries")

// Catalog is an ordered, read-only list of vocabulary entries.
type Catalog struct {
	entries []Entry
}

// New builds a Catalog from entries. The slice is copied.
func New(entries []Entry) Catalog {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return Catalog{entries: cp}
}

// Default returns the built-in 6th-grade past tense word list.
func Default() Catalog {
	return New(defaultEntries)
}

// Entries returns a copy of the entries in catalog order.
func (c Catalog) Entries() []Entry {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// ByID returns the entry with the given id.
func (c Catalog) ByID(id int) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

var defaultEntries = []Entry{
	{ID: 1, Present: "am / is", Past: "was", Translation: "~이다"},
	{ID: 2, Present: "are", Past: "were", Translation: "~이다"},
	{ID: 3, Present: "do", Past: "did", Translation: "하다"},
	{ID: 4, Present: "paint", Past: "painted", Translation: "칠하다"},
	{ID: 5, Present: "build", Past: "built", Translation: "짓다"},
	{ID: 6, Present: "draw", Past: "drew", Translation: "그리다"},
	{ID: 7, Present: "invent", Past: "invented", Translation: "발명하다"},
	{ID: 8, Present: "make", Past: "made", Translation: "만들다"},
	{ID: 9, Present: "write", Past: "wrote", Translation: "쓰다"},
	{ID: 10, Present: "swim", Past: "swam", Translation: "수영하다"},
	{ID: 11, Present: "meet", Past: "met", Translation: "만나다"},
	{ID: 12, Present: "read", Past: "read", Translation: "읽다"},
	{ID: 13, Present: "learn", Past: "learned", Translation: "배우다"},
	{ID: 14, Present: "go", Past: "went", Translation: "가다"},
	{ID: 15, Present: "play", Past: "played", Translation: "놀다"},
	{ID: 16, Present: "visit", Past: "visited", Translation: "방문하다"},
	{ID: 17, Present: "eat", Past: "ate", Translation: "먹다"},
	{ID: 18, Present: "study", Past: "studied", Translation: "공부하다"},
	{ID: 19, Present: "watch", Past: "watched", Translation: "보다"},
}
