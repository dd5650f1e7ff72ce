package pipeline

// City is a deduplicated city dimension row. The surrogate id is assigned in
// first-occurrence order of the validated input.
type City struct {
	ID   int32
	Name string
}

// Product is a deduplicated product dimension row.
type Product struct {
	ID   int32
	Name string
}

// Customer keeps its verbatim source identifier; no surrogate is assigned.
type Customer struct {
	ID string
}

// dimensionIndex is an ordered create-or-get map from name to surrogate id.
// Ids start at 1 and grow monotonically, so assignment order equals
// first-occurrence order and resolution is deterministic for a fixed input
// ordering.
type dimensionIndex struct {
	ids   map[string]int32
	names []string
}

func newDimensionIndex() *dimensionIndex {
	return &dimensionIndex{ids: make(map[string]int32)}
}

func (x *dimensionIndex) resolve(name string) int32 {
	if id, ok := x.ids[name]; ok {
		return id
	}
	id := int32(len(x.names) + 1)
	x.ids[name] = id
	x.names = append(x.names, name)
	return id
}

// DimensionSet holds the three dimension mappings for one pipeline run.
// State is scoped to the run; repeated runs are independent.
type DimensionSet struct {
	cities        *dimensionIndex
	products      *dimensionIndex
	customers     map[string]struct{}
	customerOrder []string
}

func NewDimensionSet() *DimensionSet {
	return &DimensionSet{
		cities:    newDimensionIndex(),
		products:  newDimensionIndex(),
		customers: make(map[string]struct{}),
	}
}

// ResolveCity returns the surrogate id for a city name, assigning the next
// unused id on first sight.
func (d *DimensionSet) ResolveCity(name string) int32 {
	return d.cities.resolve(name)
}

// ResolveProduct returns the surrogate id for a product name, assigning the
// next unused id on first sight.
func (d *DimensionSet) ResolveProduct(name string) int32 {
	return d.products.resolve(name)
}

// ResolveCustomer records the source customer id and returns it unchanged.
func (d *DimensionSet) ResolveCustomer(id string) string {
	if _, ok := d.customers[id]; !ok {
		d.customers[id] = struct{}{}
		d.customerOrder = append(d.customerOrder, id)
	}
	return id
}

// Cities returns the city dimension rows in surrogate-id order.
func (d *DimensionSet) Cities() []City {
	rows := make([]City, len(d.cities.names))
	for i, name := range d.cities.names {
		rows[i] = City{ID: int32(i + 1), Name: name}
	}
	return rows
}

// Products returns the product dimension rows in surrogate-id order.
func (d *DimensionSet) Products() []Product {
	rows := make([]Product, len(d.products.names))
	for i, name := range d.products.names {
		rows[i] = Product{ID: int32(i + 1), Name: name}
	}
	return rows
}

// Customers returns the deduplicated customer rows in first-occurrence order.
func (d *DimensionSet) Customers() []Customer {
	rows := make([]Customer, len(d.customerOrder))
	for i, id := range d.customerOrder {
		rows[i] = Customer{ID: id}
	}
	return rows
}
