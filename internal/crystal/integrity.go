package crystal

import (
	"fmt"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

// IntegrityIssue is one problem found in a stored crystal state
type IntegrityIssue struct {
	Kind      string           `json:"kind"`
	Attribute domain.Attribute `json:"attribute"`
	Detail    string           `json:"detail"`
}

// ValidateState checks that all eight attributes are present with in-range values and rates
func ValidateState(state *domain.ProgressionState) []IntegrityIssue {
	var issues []IntegrityIssue
	for _, attr := range domain.Attributes() {
		value, ok := state.CrystalValues[attr]
		if !ok {
			issues = append(issues, IntegrityIssue{
				Kind:      IssueMissingAttribute,
				Attribute: attr,
				Detail:    "crystal value missing",
			})
		} else if err := ValidateValue(attr, value); err != nil {
			issues = append(issues, IntegrityIssue{
				Kind:      IssueValueOutOfRange,
				Attribute: attr,
				Detail:    err.Error(),
			})
		}

		rate, ok := state.CrystalGrowthRate[attr]
		if !ok {
			continue
		}
		if err := ValidateGrowthRate(attr, rate); err != nil {
			issues = append(issues, IntegrityIssue{
				Kind:      IssueGrowthRateInvalid,
				Attribute: attr,
				Detail:    err.Error(),
			})
		}
	}
	return issues
}

func (i IntegrityIssue) String() string {
	return fmt.Sprintf("%s(%s): %s", i.Kind, i.Attribute, i.Detail)
}
