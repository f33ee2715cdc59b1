package feature

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrDuplicateFamily is returned when a tag or field is registered twice.
	ErrDuplicateFamily = errors.New("family already registered")

	// ErrInvalidFamily is returned for a family without tag, field or byte decoder.
	ErrInvalidFamily = errors.New("invalid family")

	// ErrUnknownFamily is returned when a lookup finds no family.
	ErrUnknownFamily = errors.New("unknown family")
)

// Registry maps tags and field names to families.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byTag   map[Tag]Family
	byField map[string]Family
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTag:   make(map[Tag]Family),
		byField: make(map[string]Family),
	}
}

// Register adds fam. Tags and field names must both be unique.
func (r *Registry) Register(fam Family) error {
	if fam.Tag == "" || fam.Field == "" || fam.DecodeBytes == nil {
		return fmt.Errorf("%w: tag=%q field=%q", ErrInvalidFamily, fam.Tag, fam.Field)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byTag[fam.Tag]; ok {
		return fmt.Errorf("%w: tag %q", ErrDuplicateFamily, fam.Tag)
	}
	if _, ok := r.byField[fam.Field]; ok {
		return fmt.Errorf("%w: field %q", ErrDuplicateFamily, fam.Field)
	}
	r.byTag[fam.Tag] = fam
	r.byField[fam.Field] = fam
	return nil
}

// ByTag returns the family registered under tag.
func (r *Registry) ByTag(tag Tag) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fam, ok := r.byTag[tag]
	if !ok {
		return Family{}, fmt.Errorf("%w: tag %q", ErrUnknownFamily, tag)
	}
	return fam, nil
}

// ByField returns the family stored under field.
func (r *Registry) ByField(field string) (Family, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fam, ok := r.byField[field]
	if !ok {
		return Family{}, fmt.Errorf("%w: field %q", ErrUnknownFamily, field)
	}
	return fam, nil
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]Tag, 0, len(r.byTag))
	for tag := range r.byTag {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}
