package post

// authorRegistry resolves author identifiers from front matter to a
// display name and avatar. Unknown identifiers fall back to the bare
// identifier as the name.
var authorRegistry = map[string]Author{}

// RegisterAuthor adds or replaces an entry in the author registry.
// Call before parsing posts; the registry is not safe for concurrent
// mutation once serving has started.
func RegisterAuthor(a Author) {
	authorRegistry[a.ID] = a
}

func resolveAuthors(ids []string) []Author {
	authors := make([]Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := authorRegistry[id]; ok {
			authors = append(authors, a)
			continue
		}
		authors = append(authors, Author{ID: id, Name: id})
	}
	return authors
}
