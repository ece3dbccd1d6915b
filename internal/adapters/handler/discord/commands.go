package discord

import "github.com/bwmarrin/discordgo"

// commandDefinitions is the slash-command set registered with the guild
// at gateway ready.
func commandDefinitions() []*discordgo.ApplicationCommand {
	pollIDOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Unique ID string for poll",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "poll-new",
			Description: "Create a new poll",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "id",
					Description: "Unique ID string for poll, used to retrieve results and close it",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "Prompt to show on the poll",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "options",
					Description: "List of options separated by | e.g: A|B|C|D (max 5)",
					Required:    true,
				},
			},
		},
		{
			Name:        "poll-results",
			Description: "Retrieve poll results (poll owner only)",
			Options:     []*discordgo.ApplicationCommandOption{pollIDOption},
		},
		{
			Name:        "poll-close",
			Description: "Stop accepting responses (poll owner only)",
			Options:     []*discordgo.ApplicationCommandOption{pollIDOption},
		},
		{
			Name:        "poll-delete",
			Description: "Irrevocably delete poll (poll owner only)",
			Options:     []*discordgo.ApplicationCommandOption{pollIDOption},
		},
		{
			Name:        "ping",
			Description: "Replies with pong",
		},
		{
			Name:        "id",
			Description: "Look up a user's id",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to look up",
					Required:    true,
				},
			},
		},
		{
			Name:        "stats",
			Description: "Show per-command invocation counts",
		},
	}
}
