package domain

import (
	"fmt"
	"strings"
)

// Operator identifies the kind of comparison a Constraint performs.
type Operator string

// Supported operators.
const (
	// OpSubstringOr matches when any of the fields contains Value, ignoring case
	OpSubstringOr Operator = "substring_or"

	// OpGte matches when the field is greater than or equal to Value
	OpGte Operator = "gte"

	// OpLte matches when the field is less than or equal to Value
	OpLte Operator = "lte"

	// OpAllOf matches when the field's set contains every element of Value
	OpAllOf Operator = "all_of"

	// OpAnyOf matches when the field (or any element of it) is one of Value
	OpAnyOf Operator = "any_of"
)

// Constraint is a single named condition on a hotel document.
//
// Value holds:
//   - string for OpSubstringOr
//   - float64 for OpGte and OpLte
//   - []string or []int for OpAllOf and OpAnyOf
type Constraint struct {
	Op     Operator `json:"op"`
	Fields []string `json:"fields"`
	Value  any      `json:"value"`
}

// Field returns the single field a non-OR constraint applies to.
func (c Constraint) Field() string {
	if len(c.Fields) == 0 {
		return ""
	}
	return c.Fields[0]
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s(%s, %v)", c.Op, strings.Join(c.Fields, "|"), c.Value)
}

// SubstringOr builds a case-insensitive substring match across fields.
func SubstringOr(text string, fields ...string) Constraint {
	return Constraint{Op: OpSubstringOr, Fields: fields, Value: text}
}

// Gte builds an inclusive lower bound.
func Gte(field string, v float64) Constraint {
	return Constraint{Op: OpGte, Fields: []string{field}, Value: v}
}

// Lte builds an inclusive upper bound.
func Lte(field string, v float64) Constraint {
	return Constraint{Op: OpLte, Fields: []string{field}, Value: v}
}

// AllOf builds a superset match over a list field.
func AllOf(field string, values []string) Constraint {
	return Constraint{Op: OpAllOf, Fields: []string{field}, Value: values}
}

// AnyOf builds a membership match. values must be []string or []int.
func AnyOf[T string | int](field string, values []T) Constraint {
	return Constraint{Op: OpAnyOf, Fields: []string{field}, Value: values}
}

// Predicate is a conjunction of constraints. An empty predicate matches everything.
type Predicate struct {
	Constraints []Constraint `json:"constraints"`
}

// IsEmpty reports whether the predicate is unconstrained.
func (p Predicate) IsEmpty() bool {
	return len(p.Constraints) == 0
}

// BuildPredicate translates filter criteria into a predicate.
// Absent filters are omitted; it never fails.
func BuildPredicate(f FilterCriteria) Predicate {
	var cs []Constraint

	if f.Destination != "" {
		cs = append(cs, SubstringOr(f.Destination, FieldCity, FieldCountry))
	}
	if f.MinAdultCount != nil {
		cs = append(cs, Gte(FieldAdultCount, float64(*f.MinAdultCount)))
	}
	if f.MinChildCount != nil {
		cs = append(cs, Gte(FieldChildCount, float64(*f.MinChildCount)))
	}
	if len(f.RequiredFacilities) > 0 {
		cs = append(cs, AllOf(FieldFacilities, f.RequiredFacilities))
	}
	if len(f.AllowedTypes) > 0 {
		cs = append(cs, AnyOf(FieldType, f.AllowedTypes))
	}
	if len(f.AllowedStarRatings) > 0 {
		cs = append(cs, AnyOf(FieldStarRating, f.AllowedStarRatings))
	}
	if f.MaxPricePerNight != nil {
		cs = append(cs, Lte(FieldPricePerNight, *f.MaxPricePerNight))
	}

	return Predicate{Constraints: cs}
}

// Matches evaluates the predicate against a hotel in memory.
func (p Predicate) Matches(h *Hotel) bool {
	for _, c := range p.Constraints {
		if !c.Matches(h) {
			return false
		}
	}
	return true
}

// Matches evaluates a single constraint against a hotel.
// Unknown operators and fields never match.
func (c Constraint) Matches(h *Hotel) bool {
	switch c.Op {
	case OpSubstringOr:
		needle, _ := c.Value.(string)
		needle = strings.ToLower(needle)
		for _, field := range c.Fields {
			for _, v := range hotelFieldValues(h, field) {
				if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
					return true
				}
			}
		}
		return false

	case OpGte, OpLte:
		bound, ok := c.Value.(float64)
		if !ok {
			return false
		}
		values := hotelFieldValues(h, c.Field())
		if len(values) != 1 {
			return false
		}
		n, ok := values[0].(float64)
		if !ok {
			return false
		}
		if c.Op == OpGte {
			return n >= bound
		}
		return n <= bound

	case OpAllOf:
		have := make(map[any]struct{})
		for _, v := range hotelFieldValues(h, c.Field()) {
			have[v] = struct{}{}
		}
		for _, want := range normalizeSet(c.Value) {
			if _, ok := have[want]; !ok {
				return false
			}
		}
		return true

	case OpAnyOf:
		allowed := make(map[any]struct{})
		for _, v := range normalizeSet(c.Value) {
			allowed[v] = struct{}{}
		}
		for _, v := range hotelFieldValues(h, c.Field()) {
			if _, ok := allowed[v]; ok {
				return true
			}
		}
		return false
	}

	return false
}

// hotelFieldValues returns the values stored under a document field.
// Numbers are normalized to float64; list fields yield one value per element.
func hotelFieldValues(h *Hotel, field string) []any {
	switch field {
	case FieldName:
		return []any{h.Name}
	case FieldCity:
		return []any{h.City}
	case FieldCountry:
		return []any{h.Country}
	case FieldType:
		return stringsToAny(h.Type)
	case FieldFacilities:
		return stringsToAny(h.Facilities)
	case FieldStarRating:
		return []any{float64(h.StarRating)}
	case FieldPricePerNight:
		return []any{h.PricePerNight}
	case FieldAdultCount:
		return []any{float64(h.AdultCount)}
	case FieldChildCount:
		return []any{float64(h.ChildCount)}
	default:
		return nil
	}
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func normalizeSet(v any) []any {
	switch vals := v.(type) {
	case []string:
		return stringsToAny(vals)
	case []int:
		out := make([]any, len(vals))
		for i, n := range vals {
			out[i] = float64(n)
		}
		return out
	case []float64:
		out := make([]any, len(vals))
		for i, n := range vals {
			out[i] = n
		}
		return out
	default:
		return nil
	}
}
