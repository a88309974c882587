package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdLeaderboard = "killsleaderboard"
	CmdKills       = "kills"
	CmdSetupFeed   = "setup-feed"
)

var adminPerms = int64(discordgo.PermissionAdministrator)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CmdLeaderboard,
			Description: "Show the top killers of the current session",
		},
		{
			Name:        CmdKills,
			Description: "Show the kills of one player this session",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Player name", true, true),
			},
		},
		{
			Name:                     CmdSetupFeed,
			Description:              "Create the channel that receives elimination posts",
			DefaultMemberPermissions: &adminPerms,
		},
	}
}

func stringOption(name, description string, required, autocomplete bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: autocomplete,
	}
}

// RegisterCommands creates commands for the application and returns the ones
// Discord accepted.
func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, appID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, 0, len(commands))

	for _, cmd := range commands {
		result, err := session.ApplicationCommandCreate(appID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered = append(registered, result)
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, appID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
