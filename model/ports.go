package model

import "fmt"

// PortSpec declares one cataloged signal.
type PortSpec struct {
	Name  string
	Width int
}

// catalog is the shared list of signals every backend must expose. Names
// are the ones the generators emit. Order is significant: Ports returns
// values in this order.
var catalog = []PortSpec{
	{"reset", 1},

	{"mem_axi4_0_aw_valid", 1},
	{"mem_axi4_0_aw_bits_id", 4},
	{"mem_axi4_0_aw_bits_addr", 32},
	{"mem_axi4_0_aw_bits_len", 8},
	{"mem_axi4_0_aw_bits_size", 3},
	{"mem_axi4_0_w_valid", 1},
	{"mem_axi4_0_w_bits_data", 64},
	{"mem_axi4_0_w_bits_strb", 8},
	{"mem_axi4_0_w_bits_last", 1},
	{"mem_axi4_0_b_ready", 1},
	{"mem_axi4_0_ar_valid", 1},
	{"mem_axi4_0_ar_bits_id", 4},
	{"mem_axi4_0_ar_bits_addr", 32},
	{"mem_axi4_0_ar_bits_len", 8},
	{"mem_axi4_0_ar_bits_size", 3},
	{"mem_axi4_0_r_ready", 1},

	{"mmio_axi4_0_aw_valid", 1},
	{"mmio_axi4_0_aw_bits_id", 4},
	{"mmio_axi4_0_aw_bits_addr", 32},
	{"mmio_axi4_0_aw_bits_len", 8},
	{"mmio_axi4_0_aw_bits_size", 3},
	{"mmio_axi4_0_w_valid", 1},
	{"mmio_axi4_0_w_bits_data", 64},
	{"mmio_axi4_0_w_bits_strb", 8},
	{"mmio_axi4_0_w_bits_last", 1},
	{"mmio_axi4_0_b_ready", 1},
	{"mmio_axi4_0_ar_valid", 1},
	{"mmio_axi4_0_ar_bits_id", 4},
	{"mmio_axi4_0_ar_bits_addr", 32},
	{"mmio_axi4_0_ar_bits_len", 8},
	{"mmio_axi4_0_ar_bits_size", 3},
	{"mmio_axi4_0_r_ready", 1},
}

// Catalog returns a copy of the shared port catalog.
func Catalog() []PortSpec {
	out := make([]PortSpec, len(catalog))
	copy(out, catalog)
	return out
}

// Port is the value of one cataloged signal.
type Port struct {
	Name  string
	Value uint64
}

// Ports is a snapshot of all cataloged signals.
type Ports []Port

// Get returns the value of the named signal.
func (p Ports) Get(name string) (uint64, bool) {
	for _, port := range p {
		if port.Name == name {
			return port.Value, true
		}
	}
	return 0, false
}

// Values returns the signal values in catalog order.
func (p Ports) Values() []uint64 {
	values := make([]uint64, len(p))
	for i, port := range p {
		values[i] = port.Value
	}
	return values
}

// PortReader reads one signal from a backend's signal set.
type PortReader[S any] func(signals *S) uint64

// BindPorts resolves every cataloged name against a backend. It panics if
// a name cannot be resolved, so a backend that falls out of step with the
// catalog fails as soon as its package is initialized.
func BindPorts[S any](
	backend string,
	resolve func(name string) (PortReader[S], bool),
) []PortReader[S] {
	readers := make([]PortReader[S], len(catalog))
	for i, spec := range catalog {
		r, ok := resolve(spec.Name)
		if !ok {
			panic(fmt.Sprintf("%s: cataloged port %q has no backend signal",
				backend, spec.Name))
		}
		readers[i] = r
	}
	return readers
}

// ReadPorts builds a Ports snapshot from bound readers.
func ReadPorts[S any](signals *S, readers []PortReader[S]) Ports {
	ports := make(Ports, len(catalog))
	for i, spec := range catalog {
		ports[i] = Port{Name: spec.Name, Value: readers[i](signals)}
	}
	return ports
}
