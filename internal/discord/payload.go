// Package discord renders scout reports as Discord embeds and delivers them
// through an incoming webhook.
package discord

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/albapepper/riftscout/internal/scout"
)

const (
	// Colors for Discord embeds
	colorRed   = 15158332 // 0xE74C3C - defeat, live match, errors
	colorGreen = 5763719  // 0x57F287 - victory

	footerPrefix = "Scout Bot • "
)

var numbers = message.NewPrinter(language.English)

// WebhookPayload represents a Discord webhook message
type WebhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed represents a Discord embed
type Embed struct {
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Color       int             `json:"color,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"`
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Timestamp   string          `json:"timestamp,omitempty"`
}

type EmbedAuthor struct {
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

type EmbedThumbnail struct {
	URL string `json:"url"`
}

// EmbedField represents a field in a Discord embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// EmbedFooter represents the footer of a Discord embed
type EmbedFooter struct {
	Text string `json:"text"`
}

// NewReportPayload renders a scout report. now stamps live embeds.
func NewReportPayload(report *scout.Report, now time.Time) WebhookPayload {
	switch {
	case report == nil:
		return NewErrorPayload("Error: empty report")
	case report.Kind == scout.KindLive && report.Live != nil:
		return newLivePayload(report.Player, report.Live, now)
	case report.Recent != nil:
		return newRecentPayload(report.Player, report.Recent, report.Notice)
	}
	return NewErrorPayload("Error: empty report")
}

func newLivePayload(player scout.PlayerIdentity, live *scout.LiveReport, now time.Time) WebhookPayload {
	embed := Embed{
		Title:       fmt.Sprintf("Details for %s (%s)", player.GameName, live.SelfRank),
		Description: "**LIVE MATCH FOUND**",
		Color:       colorRed,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
	for _, opp := range live.Opponents {
		embed.Fields = append(embed.Fields, EmbedField{
			Name:  opp.DisplayName,
			Value: fmt.Sprintf("WR: %.0f%% (%dW - %dL)", opp.WinRate()*100, opp.Wins, opp.Losses),
		})
	}
	return WebhookPayload{Embeds: []Embed{embed}}
}

func newRecentPayload(player scout.PlayerIdentity, r *scout.RecentMatchReport, notice string) WebhookPayload {
	outcome, color := "DEFEAT", colorRed
	if r.Won {
		outcome, color = "VICTORY", colorGreen
	}

	embed := Embed{
		Title:       outcome + " in " + r.Mode,
		Description: "Played as **" + r.ChampionName + "**",
		Color:       color,
		Author:      &EmbedAuthor{Name: player.RiotID(), IconURL: r.ProfileIconURL},
		Fields: []EmbedField{
			{
				Name: "⚔️ Combat",
				Value: "KDA: " + r.KDA + "\n" +
					"Dmg Dealt: " + formatNumber(r.DamageDealt) + "\n" +
					"Dmg Taken: " + formatNumber(r.DamageTaken),
				Inline: true,
			},
			{
				Name: "🚜 Farming & Gold",
				Value: fmt.Sprintf("CS: %d\n", r.CS) +
					"Gold: " + formatNumber(r.Gold),
				Inline: true,
			},
			{
				Name:   "👀 Vision",
				Value:  fmt.Sprintf("Vision Score: %d", r.Vision),
				Inline: true,
			},
		},
		Footer: &EmbedFooter{Text: footerPrefix + r.MatchDate.Format("01/02/2006")},
	}
	if r.ThumbnailURL != "" {
		embed.Thumbnail = &EmbedThumbnail{URL: r.ThumbnailURL}
	}

	return WebhookPayload{Content: notice, Embeds: []Embed{embed}}
}

// NewErrorPayload renders a user-facing failure message.
func NewErrorPayload(msg string) WebhookPayload {
	return WebhookPayload{Content: "❌ " + msg}
}

// formatNumber formats a number with commas (e.g., 47832 -> "47,832")
func formatNumber(n int) string {
	return numbers.Sprintf("%d", n)
}
