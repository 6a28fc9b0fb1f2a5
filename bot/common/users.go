package common

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns the user who triggered an interaction,
// whether it came from a guild channel or a DM
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InteractionUserID parses the invoking user's snowflake as an int64
func InteractionUserID(i *discordgo.InteractionCreate) (int64, error) {
	user := InteractionUser(i)
	if user == nil {
		return 0, fmt.Errorf("interaction carries no user")
	}

	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse user ID %s: %w", user.ID, err)
	}
	return id, nil
}

// GetDisplayName returns the server-specific display name for a user,
// falling back to the username when no nickname is set
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// GetDisplayNameInt64 is a convenience wrapper that accepts int64 user IDs
func GetDisplayNameInt64(s *discordgo.Session, guildID string, userID int64) string {
	return GetDisplayName(s, guildID, strconv.FormatInt(userID, 10))
}
