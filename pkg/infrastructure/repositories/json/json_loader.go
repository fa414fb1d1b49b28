// Package json loads transportation scenarios from JSON data files.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"transportlp/pkg/transport"
)

// Loader handles loading scenario data from JSON files
type Loader struct{}

// NewLoader creates a new JSON scenario loader
func NewLoader() *Loader {
	return &Loader{}
}

// scenarioFile mirrors the on-disk schema: sources and customers by
// identifier, production and demand maps, and two sparse route lists. The
// cost list defines the valid route set; fixed entries must draw their
// routes from it.
type scenarioFile struct {
	Sources    []string           `json:"sSources"`
	Customers  []string           `json:"sCustomers"`
	Production map[string]float64 `json:"pSourceProduction"`
	Demand     map[string]float64 `json:"pCustomerDemand"`
	Costs      []routeEntry       `json:"pTransportationCosts"`
	Fixed      []routeEntry       `json:"pFixedTransportation"`
}

// routeEntry is one sparse (source, customer) -> value record.
type routeEntry struct {
	Index [2]string `json:"index"`
	Value float64   `json:"value"`
}

// Load reads and validates one scenario file.
func (l *Loader) Load(filename string) (*transport.Problem, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file %s: %w", filename, err)
	}

	var file scenarioFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", filename, err)
	}

	return l.problemFromFile(&file)
}

// problemFromFile converts the raw schema into a transport.Problem,
// validating everything the core's model builder does not guard against.
func (l *Loader) problemFromFile(file *scenarioFile) (*transport.Problem, error) {
	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("scenario has no sources")
	}
	if len(file.Customers) == 0 {
		return nil, fmt.Errorf("scenario has no customers")
	}

	p := &transport.Problem{
		Sources:    make([]transport.SourceID, 0, len(file.Sources)),
		Customers:  make([]transport.CustomerID, 0, len(file.Customers)),
		Production: make(map[transport.SourceID]float64, len(file.Sources)),
		Demand:     make(map[transport.CustomerID]float64, len(file.Customers)),
	}

	sources := make(map[string]bool, len(file.Sources))
	for _, s := range file.Sources {
		if err := validateID(s); err != nil {
			return nil, fmt.Errorf("source %q: %w", s, err)
		}
		if sources[s] {
			return nil, fmt.Errorf("duplicate source %q", s)
		}
		sources[s] = true

		production, ok := file.Production[s]
		if !ok {
			return nil, fmt.Errorf("source %q has no production limit", s)
		}
		if production < 0 {
			return nil, fmt.Errorf("source %q has negative production %v", s, production)
		}
		p.Sources = append(p.Sources, transport.SourceID(s))
		p.Production[transport.SourceID(s)] = production
	}

	customers := make(map[string]bool, len(file.Customers))
	for _, c := range file.Customers {
		if err := validateID(c); err != nil {
			return nil, fmt.Errorf("customer %q: %w", c, err)
		}
		if customers[c] {
			return nil, fmt.Errorf("duplicate customer %q", c)
		}
		customers[c] = true

		demand, ok := file.Demand[c]
		if !ok {
			return nil, fmt.Errorf("customer %q has no demand", c)
		}
		if demand < 0 {
			return nil, fmt.Errorf("customer %q has negative demand %v", c, demand)
		}
		p.Customers = append(p.Customers, transport.CustomerID(c))
		p.Demand[transport.CustomerID(c)] = demand
	}

	routes := make(map[transport.Route]bool, len(file.Costs))
	for _, entry := range file.Costs {
		route, err := l.route(entry, sources, customers)
		if err != nil {
			return nil, fmt.Errorf("transportation cost: %w", err)
		}
		if routes[route] {
			return nil, fmt.Errorf("duplicate cost for route %s -> %s", route.Source, route.Customer)
		}
		routes[route] = true
		p.Costs = append(p.Costs, transport.RouteCost{Route: route, Cost: entry.Value})
	}

	for _, entry := range file.Fixed {
		route, err := l.route(entry, sources, customers)
		if err != nil {
			return nil, fmt.Errorf("fixed transportation: %w", err)
		}
		if !routes[route] {
			return nil, fmt.Errorf("fixed transportation on route %s -> %s which has no cost defined",
				route.Source, route.Customer)
		}
		if entry.Value < 0 {
			return nil, fmt.Errorf("fixed transportation on route %s -> %s is negative",
				route.Source, route.Customer)
		}
		p.Fixed = append(p.Fixed, transport.FixedFlow{Route: route, Quantity: entry.Value})
	}

	return p, nil
}

func (l *Loader) route(entry routeEntry, sources, customers map[string]bool) (transport.Route, error) {
	src, cust := entry.Index[0], entry.Index[1]
	if !sources[src] {
		return transport.Route{}, fmt.Errorf("route names unknown source %q", src)
	}
	if !customers[cust] {
		return transport.Route{}, fmt.Errorf("route names unknown customer %q", cust)
	}
	return transport.Route{
		Source:   transport.SourceID(src),
		Customer: transport.CustomerID(cust),
	}, nil
}

// validateID rejects identifiers that cannot round-trip through the model's
// name encoding, where '_' separates fields.
func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("empty identifier")
	}
	if strings.Contains(id, "_") {
		return fmt.Errorf("identifier must not contain underscores")
	}
	return nil
}
