package economy

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/TheCodeVerseHub/Eigen-Bot/bot/common"
	"github.com/TheCodeVerseHub/Eigen-Bot/models"
)

// BuildBalanceEmbed creates the wallet overview embed
func BuildBalanceEmbed(displayName string, wallet *models.Wallet, dailyWagered, dailyLimit int64) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("💰 %s's Wallet", displayName),
		Color:     common.ColorPrimary,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "On Hand",
				Value:  fmt.Sprintf("**%s coins**", common.FormatBalance(wallet.Balance)),
				Inline: true,
			},
			{
				Name:   "Bank",
				Value:  fmt.Sprintf("**%s coins**", common.FormatBalance(wallet.Bank)),
				Inline: true,
			},
			{
				Name:   "Total",
				Value:  fmt.Sprintf("**%s coins**", common.FormatBalance(wallet.Total())),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Wagered today: %s / %s",
				common.FormatBalance(dailyWagered), common.FormatBalance(dailyLimit)),
		},
	}
}

// BuildLeaderboardEmbed creates the wealth leaderboard embed
func BuildLeaderboardEmbed(entries []*models.LeaderboardEntry, session *discordgo.Session, guildID string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "🏆 Richest Players 🏆",
		Color:     common.ColorPrimary,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if len(entries) == 0 {
		embed.Description = "No players found"
		return embed
	}

	var lines []string
	for _, entry := range entries {
		medal := ""
		switch entry.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		default:
			medal = fmt.Sprintf("%d.", entry.Rank)
		}

		displayName := common.GetDisplayNameInt64(session, guildID, entry.UserID)
		lines = append(lines, fmt.Sprintf("%s **%s** - %s coins (%s on hand, %s banked)",
			medal, displayName,
			common.FormatBalance(entry.TotalBalance),
			common.FormatBalance(entry.Balance),
			common.FormatBalance(entry.Bank)))
	}

	embed.Description = strings.Join(lines, "\n")
	return embed
}

// BuildUserStatsEmbed creates the per-user gambling statistics embed
func BuildUserStatsEmbed(userStats *models.UserStats, targetName string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("📊 Stats for %s", targetName),
		Color:     common.ColorPrimary,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields:    []*discordgo.MessageEmbedField{},
	}

	if userStats.Wallet != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "💰 Balance",
			Value: fmt.Sprintf("On hand: **%s coins**\nBank: **%s coins**\nTotal: **%s coins**",
				common.FormatBalance(userStats.Wallet.Balance),
				common.FormatBalance(userStats.Wallet.Bank),
				common.FormatBalance(userStats.Wallet.Total())),
			Inline: true,
		})
	}

	if userStats.BetStats != nil && userStats.BetStats.TotalBets > 0 {
		bets := userStats.BetStats
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🎲 Betting",
			Value: fmt.Sprintf("Bets: **%d** (W %d / L %d / P %d)\nWin rate: **%.1f%%**\nWagered: **%s coins**\nNet: **%s coins**",
				bets.TotalBets, bets.TotalWins, bets.TotalLosses, bets.TotalPushes,
				userStats.WinRate,
				common.FormatBalance(bets.TotalWagered),
				common.FormatSigned(userStats.NetProfit)),
			Inline: true,
		})

		if bets.BiggestWin > 0 || bets.BiggestLoss > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "📈 Records",
				Value: fmt.Sprintf("Biggest win: **%s coins**\nBiggest loss: **%s coins**",
					common.FormatBalance(bets.BiggestWin),
					common.FormatBalance(bets.BiggestLoss)),
				Inline: true,
			})
		}
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🎲 Betting",
			Value:  "No bets placed yet",
			Inline: true,
		})
	}

	if len(userStats.GameStats) > 0 {
		var lines []string
		for idx, game := range userStats.GameStats {
			if idx == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("**%s** - %d bets, %s wagered, %s paid out",
				game.Game, game.TotalBets,
				common.FormatBalance(game.TotalWagered),
				common.FormatBalance(game.TotalPayout)))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🕹️ Favorite Games",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	return embed
}
