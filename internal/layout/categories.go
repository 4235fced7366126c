package layout

import "sort"

// DefaultCategory receives items whose category is not in the table.
const DefaultCategory = "other"

// Category is a display group for graph nodes.
type Category struct {
	Name  string
	Color string
}

var categories = map[string]Category{
	"frontend":  {Name: "frontend", Color: "#61dafb"},
	"backend":   {Name: "backend", Color: "#68a063"},
	"database":  {Name: "database", Color: "#f29111"},
	"devops":    {Name: "devops", Color: "#2496ed"},
	"tools":     {Name: "tools", Color: "#f05032"},
	"design":    {Name: "design", Color: "#ff61f6"},
	"languages": {Name: "languages", Color: "#a78bfa"},

	DefaultCategory: {Name: DefaultCategory, Color: "#94a3b8"},
}

type pair struct{ a, b string }

func orderedPair(a, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

var adjacency = map[pair]bool{
	orderedPair("frontend", "backend"):   true,
	orderedPair("frontend", "design"):    true,
	orderedPair("backend", "database"):   true,
	orderedPair("backend", "devops"):     true,
	orderedPair("devops", "database"):    true,
	orderedPair("devops", "tools"):       true,
	orderedPair("languages", "backend"):  true,
	orderedPair("languages", "frontend"): true,
	orderedPair("tools", "frontend"):     true,
}

// LookupCategory returns the table entry for name. Unknown names resolve to
// the default entry with ok == false.
func LookupCategory(name string) (Category, bool) {
	c, ok := categories[name]
	if !ok {
		return categories[DefaultCategory], false
	}
	return c, true
}

// Adjacent reports whether two categories are related. Adjacency is
// symmetric and a category is never adjacent to itself.
func Adjacent(a, b string) bool {
	if a == b {
		return false
	}
	return adjacency[orderedPair(a, b)]
}

// Categories lists the known category names, sorted.
func Categories() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
