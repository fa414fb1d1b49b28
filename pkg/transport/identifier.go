package transport

import (
	"errors"
	"fmt"
	"strings"
)

// Identifier format shared by the model builder and the result interpreter.
// Names assigned here are a contract, not incidental formatting: anything
// carrying a variable or constraint name must be decodable back to its
// origin. The structured Route / (Kind, Source, Customer) fields threaded
// through Model are the primary channel; the parse functions below exist for
// consumers that only hold a name (solver logs, serialized reports).
//
// Location codes must not contain underscores, since '_' separates the
// fields of a name. The loader rejects offending identifiers.

const (
	variablePrefix = "quantity_in_tons_"

	capacityPrefix = "c01_production_"
	demandPrefix   = "c02_demand_"
	fixedPrefix    = "c03_fixed_"
)

// ErrBadIdentifier reports a name that does not follow the builder's
// identifier convention.
var ErrBadIdentifier = errors.New("transport: malformed identifier")

// VariableName encodes a route into the variable naming convention.
func VariableName(r Route) string {
	return variablePrefix + string(r.Source) + "_" + string(r.Customer)
}

// CapacityName encodes a source's capacity constraint name.
func CapacityName(s SourceID) string {
	return capacityPrefix + string(s)
}

// DemandName encodes a customer's demand constraint name.
func DemandName(c CustomerID) string {
	return demandPrefix + string(c)
}

// FixedName encodes a route's fixed-flow constraint name.
func FixedName(r Route) string {
	return fixedPrefix + string(r.Source) + "_" + string(r.Customer)
}

// ParseVariableName recovers the route encoded in a variable name.
func ParseVariableName(name string) (Route, error) {
	rest, ok := strings.CutPrefix(name, variablePrefix)
	if !ok {
		return Route{}, fmt.Errorf("%w: variable %q", ErrBadIdentifier, name)
	}
	return parseRouteSuffix(name, rest)
}

// ParseConstraintName recovers the kind and location encoded in a constraint
// name. For capacity rows Customer is empty, for demand rows Source is
// empty, fixed rows carry both.
func ParseConstraintName(name string) (kind ConstraintKind, source SourceID, customer CustomerID, err error) {
	switch {
	case strings.HasPrefix(name, capacityPrefix):
		loc := strings.TrimPrefix(name, capacityPrefix)
		if loc == "" {
			return 0, "", "", fmt.Errorf("%w: constraint %q", ErrBadIdentifier, name)
		}
		return Capacity, SourceID(loc), "", nil
	case strings.HasPrefix(name, demandPrefix):
		loc := strings.TrimPrefix(name, demandPrefix)
		if loc == "" {
			return 0, "", "", fmt.Errorf("%w: constraint %q", ErrBadIdentifier, name)
		}
		return Demand, "", CustomerID(loc), nil
	case strings.HasPrefix(name, fixedPrefix):
		r, perr := parseRouteSuffix(name, strings.TrimPrefix(name, fixedPrefix))
		if perr != nil {
			return 0, "", "", perr
		}
		return Fixed, r.Source, r.Customer, nil
	default:
		return 0, "", "", fmt.Errorf("%w: constraint %q", ErrBadIdentifier, name)
	}
}

func parseRouteSuffix(name, rest string) (Route, error) {
	src, cust, ok := strings.Cut(rest, "_")
	if !ok || src == "" || cust == "" {
		return Route{}, fmt.Errorf("%w: %q", ErrBadIdentifier, name)
	}
	return Route{Source: SourceID(src), Customer: CustomerID(cust)}, nil
}
