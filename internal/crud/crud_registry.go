package crud

import (
	"reflect"
	"sync"
)

// Model is one listable table. Prototype is a zero value of the gorm model
// (not a pointer); PageSize is the rows per page for that model.
type Model struct {
	Name      string
	Prototype any
	PageSize  int
	OrderBy   string
}

type Registry struct {
	mu     sync.RWMutex
	models map[string]Model
}

func NewRegistry(models ...Model) *Registry {
	r := &Registry{models: make(map[string]Model)}
	for _, m := range models {
		r.Register(m)
	}
	return r
}

func (r *Registry) Register(m Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[m.Name] = m
}

func (r *Registry) Lookup(name string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	return m, ok
}

// newSlice returns a pointer to an empty []T for the model's type.
func (m Model) newSlice() any {
	t := reflect.TypeOf(m.Prototype)
	return reflect.New(reflect.SliceOf(t)).Interface()
}

func (m Model) newPointer() any {
	return reflect.New(reflect.TypeOf(m.Prototype)).Interface()
}
