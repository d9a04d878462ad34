package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/MindQuest_Go/internal/event"
)

var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)
)

// embedFor renders an event as a Discord embed.
// It returns nil for event types that are not announced.
func embedFor(evt event.Event) (*discordgo.MessageEmbed, error) {
	switch evt.Type {
	case event.ProgressionLevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		e := newEmbed("Level Up!", ColorLevelUp, p.Timestamp,
			printer.Sprintf("**%s** reached level **%d** with %d total XP.", p.UserID, p.NewLevel, p.TotalXP))
		if len(p.Rewards) > 0 {
			e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
				Name:  "Rewards",
				Value: displayList(p.Rewards),
			})
		}
		return e, nil

	case event.ProgressionCompanionLevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		e := newEmbed("Companion Grew Stronger", ColorCompanion, p.Timestamp,
			printer.Sprintf("%s's companion reached level **%d**.", p.UserID, p.NewLevel))
		if p.Personality != "" {
			e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
				Name:   "Personality",
				Value:  display(p.Personality),
				Inline: true,
			})
		}
		return e, nil

	case event.ProgressionMilestoneReached:
		p, err := event.DecodePayload[event.MilestoneReachedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		return newEmbed("Crystal Milestone", ColorMilestone, p.Timestamp,
			fmt.Sprintf("%s's **%s** crystal reached **%d**.", p.UserID, display(string(p.Attribute)), p.Milestone)), nil

	case event.ProgressionSynergyUnlocked:
		p, err := event.DecodePayload[event.SynergyUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		e := newEmbed("Synergy Unlocked: "+p.Name, ColorSynergy, p.Timestamp, p.Effect)
		if p.StoryUnlock != "" {
			e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Story", Value: display(p.StoryUnlock)})
		}
		return e, nil

	case event.ProgressionResonanceFired:
		p, err := event.DecodePayload[event.ResonanceFiredPayloadV1](evt.Payload)
		if err != nil {
			return nil, err
		}
		e := newEmbed("Resonance: "+display(string(p.Type)), ColorResonance, p.Timestamp, p.Message)
		e.Fields = append(e.Fields,
			&discordgo.MessageEmbedField{Name: "Intensity", Value: display(string(p.Intensity)), Inline: true},
			&discordgo.MessageEmbedField{Name: "Bonus XP", Value: printer.Sprintf("%d", p.BonusXP), Inline: true},
		)
		if len(p.RewardTokens) > 0 {
			e.Fields = append(e.Fields, &discordgo.MessageEmbedField{Name: "Rewards", Value: displayList(p.RewardTokens)})
		}
		return e, nil
	}
	return nil, nil
}

func newEmbed(title string, color int, unix int64, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Unix(unix, 0).UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooterText,
		},
	}
}

// display turns identifiers such as "quick_learner" into "Quick Learner"
func display(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

func displayList(ids []string) string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = display(id)
	}
	return strings.Join(out, ", ")
}
