// Package boxing unifies heterogeneous host values behind one polymorphic
// value wrapper, the Box, that a template renderer can introspect without
// static knowledge of the concrete type.
//
// Polymorphism is achieved purely through composed function capabilities:
// key lookup, rendering, filtering and the before/after render hooks are
// optional function handles on an immutable Box, never subclasses of a base
// value type. Scalars, sequences and maps each get a concrete boxer that
// assembles exactly the capabilities the value needs; everything else enters
// through the adapter boundary in package adapt.
package boxing
