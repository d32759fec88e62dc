package parser

import (
	"github.com/cmmoran/sdmarkup/internal/model"
	"github.com/cmmoran/sdmarkup/pkg/vocabulary"
)

// Resolve folds tokens into a Plan. The last type token becomes SetType;
// tokens with a type and a property are specialized fallbacks of that type;
// tokens with only a property are global fallbacks in first-seen order.
func Resolve(tokens []model.Token) model.Plan {
	plan := model.NewPlan()

	for _, tok := range tokens {
		switch {
		case tok.IsZero():
			continue
		case tok.IsTypeOnly():
			plan.SetType = tok.Type
		case tok.Type != "":
			plan.Specialized[tok.Type] = plan.Specialized[tok.Type].Set(model.Fallback{
				Property:     tok.Property,
				ExpectedType: tok.ExpectedType,
			})
		default:
			plan.Global = plan.Global.Set(model.Fallback{
				Property:     tok.Property,
				ExpectedType: tok.ExpectedType,
			})
		}
	}

	return plan
}

// ParsePlan tokenizes and resolves a directive.
func ParsePlan(directive string, reg vocabulary.TypeChecker) model.Plan {
	return Resolve(Tokenize(directive, reg))
}
