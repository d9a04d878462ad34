package crystal

import (
	"github.com/osse101/MindQuest_Go/internal/domain"
)

// Synergy is a combination of crystal minimums that unlocks a bonus
type Synergy struct {
	ID                 string                   `json:"id"`
	Name               string                   `json:"name"`
	MinLevels          map[domain.Attribute]int `json:"min_levels"`
	Effect             string                   `json:"effect"`
	StatBonuses        map[string]float64       `json:"stat_bonuses,omitempty"`
	TherapeuticBenefit string                   `json:"therapeutic_benefit,omitempty"`
	StoryUnlock        string                   `json:"story_unlock,omitempty"`
}

// CheckSynergy reports whether every required attribute meets the synergy minimum
func CheckSynergy(values map[domain.Attribute]int, synergy Synergy) bool {
	for attr, minimum := range synergy.MinLevels {
		if values[attr] < minimum {
			return false
		}
	}
	return true
}

// ActiveSynergies returns the catalog entries satisfied by values, in catalog order
func ActiveSynergies(values map[domain.Attribute]int, catalog []Synergy) []Synergy {
	var active []Synergy
	for _, s := range catalog {
		if CheckSynergy(values, s) {
			active = append(active, s)
		}
	}
	return active
}

// NewlyActive returns synergies active in after but not in before
func NewlyActive(before, after map[domain.Attribute]int, catalog []Synergy) []Synergy {
	var unlocked []Synergy
	for _, s := range catalog {
		if CheckSynergy(after, s) && !CheckSynergy(before, s) {
			unlocked = append(unlocked, s)
		}
	}
	return unlocked
}

// DefaultSynergies is the built-in synergy catalog
func DefaultSynergies() []Synergy {
	return []Synergy{
		{
			ID:   "steadfast_heart",
			Name: "Steadfast Heart",
			MinLevels: map[domain.Attribute]int{
				domain.AttributeEmpathy:    50,
				domain.AttributeResilience: 50,
			},
			Effect:             "Companion encouragement restores extra mood after setbacks",
			StatBonuses:        map[string]float64{"mood_recovery": 0.15},
			TherapeuticBenefit: "Pairs self-compassion with persistence",
			StoryUnlock:        "chapter_steadfast_heart",
		},
		{
			ID:   "curious_maker",
			Name: "Curious Maker",
			MinLevels: map[domain.Attribute]int{
				domain.AttributeCuriosity:  50,
				domain.AttributeCreativity: 50,
			},
			Effect:             "Creative activities grant bonus story choices",
			StatBonuses:        map[string]float64{"creative_xp": 0.1},
			TherapeuticBenefit: "Turns exploration into self-expression",
			StoryUnlock:        "chapter_curious_maker",
		},
		{
			ID:   "brave_voice",
			Name: "Brave Voice",
			MinLevels: map[domain.Attribute]int{
				domain.AttributeCourage:       40,
				domain.AttributeCommunication: 40,
			},
			Effect:             "Social interactions count double toward weekly goals",
			StatBonuses:        map[string]float64{"social_xp": 0.1},
			TherapeuticBenefit: "Builds confidence in reaching out",
		},
		{
			ID:   "disciplined_sage",
			Name: "Disciplined Sage",
			MinLevels: map[domain.Attribute]int{
				domain.AttributeSelfDiscipline: 60,
				domain.AttributeWisdom:         60,
			},
			Effect:             "Reflection entries reduce task difficulty",
			StatBonuses:        map[string]float64{"task_difficulty": -0.1},
			TherapeuticBenefit: "Connects routine with insight",
			StoryUnlock:        "chapter_disciplined_sage",
		},
		{
			ID:                 "balanced_soul",
			Name:               "Balanced Soul",
			MinLevels:          allAttributesAt(25),
			Effect:             "Harmony bonus also applies to resonance rewards",
			StatBonuses:        map[string]float64{"resonance_bonus": 0.1},
			TherapeuticBenefit: "Rewards holistic growth",
			StoryUnlock:        "chapter_balanced_soul",
		},
	}
}

func allAttributesAt(minimum int) map[domain.Attribute]int {
	out := make(map[domain.Attribute]int)
	for _, attr := range domain.Attributes() {
		out[attr] = minimum
	}
	return out
}
