package setup

import (
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrSchemeNotRegistered = errors.New("scheme not registered")

type Factory[T any] func(u *url.URL) (T, error)

// Registry associates URI schemes to the factories of a given service type.
// Adapters register themselves in their init() function.
type Registry[T any] struct {
	factories map[string]Factory[T]
	mutex     sync.RWMutex
}

func (r *Registry[T]) Register(scheme string, factory Factory[T]) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.factories[scheme] = factory
}

// Schemes returns the registered schemes, sorted.
func (r *Registry[T]) Schemes() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	schemes := make([]string, 0, len(r.factories))
	for s := range r.factories {
		schemes = append(schemes, s)
	}

	slices.Sort(schemes)

	return schemes
}

func (r *Registry[T]) From(rawURL string) (T, error) {
	var zero T

	u, err := url.Parse(rawURL)
	if err != nil {
		return zero, errors.Wrapf(err, "could not parse url '%s'", rawURL)
	}

	return r.FromURL(u)
}

func (r *Registry[T]) FromURL(u *url.URL) (T, error) {
	var zero T

	r.mutex.RLock()
	factory, exists := r.factories[u.Scheme]
	r.mutex.RUnlock()

	if !exists {
		return zero, errors.Wrapf(ErrSchemeNotRegistered, "no factory associated with scheme '%s' (available: %s)", u.Scheme, strings.Join(r.Schemes(), ", "))
	}

	service, err := factory(u)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	return service, nil
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
	}
}
