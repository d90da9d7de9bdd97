package catalog

import "fmt"

// Category is an immutable snapshot of a service category.
type Category struct {
	id   string
	name string
	slug string
}

// NewCategory validates and creates a category snapshot.
func NewCategory(id, name, slug string) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("category id is required")
	}
	if name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	return Category{id: id, name: name, slug: slug}, nil
}

// ReconstructCategory rebuilds a category from storage without validation.
func ReconstructCategory(id, name, slug string) Category {
	return Category{id: id, name: name, slug: slug}
}

// ID returns the category identifier.
func (c *Category) ID() string { return c.id }

// Name returns the category display name.
func (c *Category) Name() string { return c.name }

// Slug returns the URL slug.
func (c *Category) Slug() string { return c.slug }
