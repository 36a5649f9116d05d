package Recipes

// Recipe is a single entry of a Book. Recipes are identified and ordered by Name
// alone; Difficulty only matters for mastery.
// The zero value is a recipe with an empty name, difficulty 0 and not mastered.
type Recipe struct {
	Name        string
	Difficulty  int
	Description string
	Mastered    bool
}

// Equals reports whether r and o have the same name.
func (r Recipe) Equals(o Recipe) bool {
	return r.Name == o.Name
}

// LessThan compares names lexicographically.
func (r Recipe) LessThan(o Recipe) bool {
	return r.Name < o.Name
}

// GreaterThan reports whether r's name sorts after o's.
func (r Recipe) GreaterThan(o Recipe) bool {
	return r.Name > o.Name
}

func probe(name string) Recipe {
	return Recipe{Name: name}
}
