// Package backends selects a simulated core by name at construction time.
package backends

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sarchlab/rtlsim/boom"
	"github.com/sarchlab/rtlsim/model"
	"github.com/sarchlab/rtlsim/rocket"
)

// ErrUnknownBackend is returned by New for names with no registered
// factory.
var ErrUnknownBackend = errors.New("unknown backend")

// Factory constructs a new, exclusively owned model.
type Factory func(opts ...model.Option) (model.Model, error)

var factories = map[string]Factory{
	"boom-ksim": func(opts ...model.Option) (model.Model, error) {
		m, err := boom.NewKsimModel(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
	"rocket-essent": func(opts ...model.Option) (model.Model, error) {
		m, err := rocket.NewEssentModel(opts...)
		if err != nil {
			return nil, err
		}
		return m, nil
	},
}

// New creates the named model.
func New(name string, opts ...model.Option) (model.Model, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}

	return factory(opts...)
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
