package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
)

// TranslatePredicate renders a predicate as a query filter.
// Substring matches escape regex metacharacters so user text is matched literally.
// Constraints with an unknown operator match no document.
func TranslatePredicate(p domain.Predicate) bson.D {
	clauses := make([]bson.E, 0, len(p.Constraints))
	for _, c := range p.Constraints {
		clauses = append(clauses, translateConstraint(c))
	}

	if hasDuplicateKeys(clauses) {
		and := make(bson.A, len(clauses))
		for i, e := range clauses {
			and[i] = bson.D{e}
		}
		return bson.D{{Key: "$and", Value: and}}
	}
	return bson.D(clauses)
}

func translateConstraint(c domain.Constraint) bson.E {
	switch c.Op {
	case domain.OpSubstringOr:
		text, _ := c.Value.(string)
		regex := bson.D{
			{Key: "$regex", Value: regexp.QuoteMeta(text)},
			{Key: "$options", Value: "i"},
		}
		if len(c.Fields) == 1 {
			return bson.E{Key: c.Fields[0], Value: regex}
		}
		or := make(bson.A, len(c.Fields))
		for i, f := range c.Fields {
			or[i] = bson.D{{Key: f, Value: regex}}
		}
		return bson.E{Key: "$or", Value: or}

	case domain.OpGte:
		return bson.E{Key: c.Field(), Value: bson.D{{Key: "$gte", Value: c.Value}}}

	case domain.OpLte:
		return bson.E{Key: c.Field(), Value: bson.D{{Key: "$lte", Value: c.Value}}}

	case domain.OpAllOf:
		return bson.E{Key: c.Field(), Value: bson.D{{Key: "$all", Value: c.Value}}}

	case domain.OpAnyOf:
		return bson.E{Key: c.Field(), Value: bson.D{{Key: "$in", Value: c.Value}}}
	}

	return bson.E{Key: domain.FieldID, Value: bson.D{{Key: "$exists", Value: false}}}
}

func hasDuplicateKeys(clauses []bson.E) bool {
	seen := make(map[string]struct{}, len(clauses))
	for _, e := range clauses {
		if _, ok := seen[e.Key]; ok {
			return true
		}
		seen[e.Key] = struct{}{}
	}
	return false
}

// translateSort renders a sort spec. A zero spec yields nil, meaning natural order.
// Ties are broken by _id so pages do not overlap.
func translateSort(s domain.SortSpec) bson.D {
	if s.IsZero() {
		return nil
	}
	dir := 1
	if s.Desc {
		dir = -1
	}
	return bson.D{{Key: s.Field, Value: dir}, {Key: domain.FieldID, Value: 1}}
}
