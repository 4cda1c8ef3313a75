package settings

import (
	"errors"
	"fmt"
	"strings"
)

// Group is a named node of the settings tree holding items and child groups
// in declaration order. Paths address items relative to a group by joining
// child group keys and the item key with '/', e.g. "xScale/start".
type Group struct {
	key    string
	title  string
	items  []*Item
	groups []*Group
}

// NewGroup returns an empty group.
func NewGroup(key, title string) *Group {
	return &Group{key: key, title: title}
}

func (g *Group) Key() string      { return g.key }
func (g *Group) Title() string    { return g.title }
func (g *Group) Items() []*Item   { return g.items }
func (g *Group) Groups() []*Group { return g.groups }

// AddItem declares a new item in g. See [NewItem].
func (g *Group) AddItem(key, decl string, v Value) (*Item, error) {
	if g.item(key) != nil {
		return nil, fmt.Errorf("group %q: duplicate setting %q", g.key, key)
	}
	it, err := NewItem(key, decl, v)
	if err != nil {
		return nil, err
	}
	g.items = append(g.items, it)
	return it, nil
}

// AddGroup appends sub as a child group of g.
func (g *Group) AddGroup(sub *Group) error {
	if sub == nil || sub.key == "" || strings.Contains(sub.key, "/") {
		return errors.New("invalid child group")
	}
	if g.group(sub.key) != nil {
		return fmt.Errorf("group %q: duplicate child group %q", g.key, sub.key)
	}
	g.groups = append(g.groups, sub)
	return nil
}

// Find returns the item at path.
func (g *Group) Find(path string) (*Item, error) {
	parts := strings.Split(path, "/")
	node := g
	for _, key := range parts[:len(parts)-1] {
		node = node.group(key)
		if node == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
	}
	it := node.item(parts[len(parts)-1])
	if it == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return it, nil
}

// Set sets the value of the item at path. See [Item.Set].
func (g *Group) Set(path string, v Value) error {
	it, err := g.Find(path)
	if err != nil {
		return err
	}
	return it.Set(v)
}

// Walk calls fn for every item of the tree in declaration order, items of a
// group before its child groups. Walk stops at the first error fn returns.
func (g *Group) Walk(fn func(path string, it *Item) error) error {
	return g.walk("", fn)
}

func (g *Group) walk(prefix string, fn func(path string, it *Item) error) error {
	for _, it := range g.items {
		err := fn(prefix+it.key, it)
		if err != nil {
			return err
		}
	}
	for _, sub := range g.groups {
		err := sub.walk(prefix+sub.key+"/", fn)
		if err != nil {
			return err
		}
	}
	return nil
}

// Values returns the current value of every item keyed by path.
func (g *Group) Values() map[string]Value {
	values := make(map[string]Value)
	g.Walk(func(path string, it *Item) error {
		values[path] = it.value
		return nil
	})
	return values
}

// Apply sets every value in values. Invalid entries are skipped and reported
// in the joined error while valid entries are still applied.
func (g *Group) Apply(values map[string]Value) error {
	var errs []error
	g.Walk(func(path string, it *Item) error {
		v, ok := values[path]
		if !ok {
			return nil
		}
		err := it.Set(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		return nil
	})
	for path := range values {
		if _, err := g.Find(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset restores the default value of every item in the tree.
func (g *Group) Reset() {
	g.Walk(func(_ string, it *Item) error {
		it.Reset()
		return nil
	})
}

func (g *Group) item(key string) *Item {
	for _, it := range g.items {
		if it.key == key {
			return it
		}
	}
	return nil
}

func (g *Group) group(key string) *Group {
	for _, sub := range g.groups {
		if sub.key == key {
			return sub
		}
	}
	return nil
}
