package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/vncsmyrnk/pollbot/internal/core/domain"
	"github.com/vncsmyrnk/pollbot/internal/core/ports"
)

// ButtonHandlerFunc handles vote-button clicks.
type ButtonHandlerFunc func(ctx context.Context, click ports.ButtonClick, r ports.Responder) error

type Config struct {
	Token         string
	ApplicationID string
	GuildID       string
}

// Gateway bridges the Discord session to the command router and button
// handler. It also implements ports.Notifier for direct messages.
type Gateway struct {
	session *discordgo.Session
	router  *Router
	buttons ButtonHandlerFunc
	appID   string
	guildID string
	logger  *slog.Logger
}

func NewGateway(cfg Config, router *Router, logger *slog.Logger) (*Gateway, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	g := &Gateway{
		session: session,
		router:  router,
		appID:   cfg.ApplicationID,
		guildID: cfg.GuildID,
		logger:  resolveLogger(logger),
	}
	session.AddHandler(g.onReady)
	session.AddHandler(g.onInteractionCreate)
	return g, nil
}

// OnButton sets the handler for vote-button clicks. Must be called
// before Open.
func (g *Gateway) OnButton(h ButtonHandlerFunc) {
	g.buttons = h
}

func (g *Gateway) Open() error {
	return g.session.Open()
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) SendDirectMessage(_ context.Context, user domain.User, content string) error {
	channel, err := g.session.UserChannelCreate(user.ID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}
	if _, err := g.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("send dm: %w", err)
	}
	return nil
}

func (g *Gateway) onReady(s *discordgo.Session, r *discordgo.Ready) {
	g.logger.Info("connected", "user", r.User.Username)

	if _, err := s.ApplicationCommandBulkOverwrite(g.appID, g.guildID, commandDefinitions()); err != nil {
		g.logger.Error("failed to register guild commands", "guild_id", g.guildID, "error", err)
		return
	}
	g.logger.Info("registered guild slash commands", "guild_id", g.guildID)
}

func (g *Gateway) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	responder := &interactionResponder{session: s, interaction: i}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		g.router.Dispatch(ctx, ports.Command{
			Name:    data.Name,
			Invoker: interactionUser(i),
			Args:    commandArgs(s, data.Options),
		}, responder)
	case discordgo.InteractionMessageComponent:
		if g.buttons == nil {
			return
		}
		click := ports.ButtonClick{
			Token:       i.MessageComponentData().CustomID,
			Invoker:     interactionUser(i),
			MessageText: messageText(i),
		}
		if err := g.buttons(ctx, click, responder); err != nil {
			g.logger.Error("failed to handle button click", "error", err)
		}
	default:
		g.logger.Info("unhandled interaction", "type", i.Type)
	}
}

// interactionUser resolves the invoking user, which Discord places on
// Member for guild interactions and on User for direct ones.
func interactionUser(i *discordgo.InteractionCreate) domain.User {
	u := i.User
	if i.Member != nil && i.Member.User != nil {
		u = i.Member.User
	}
	if u == nil {
		return domain.User{}
	}
	return domain.User{ID: u.ID, Name: u.Username}
}

func messageText(i *discordgo.InteractionCreate) string {
	if i.Message == nil {
		return ""
	}
	return i.Message.Content
}

func commandArgs(s *discordgo.Session, options []*discordgo.ApplicationCommandInteractionDataOption) map[string]ports.Arg {
	args := make(map[string]ports.Arg, len(options))
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			args[opt.Name] = ports.Arg{Kind: ports.ArgString, Str: opt.StringValue()}
		case discordgo.ApplicationCommandOptionUser:
			u := opt.UserValue(s)
			if u == nil {
				continue
			}
			args[opt.Name] = ports.Arg{
				Kind: ports.ArgUser,
				User: domain.User{ID: u.ID, Name: u.Username},
			}
		}
	}
	return args
}

type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
}

func (r *interactionResponder) RespondNew(_ context.Context, content string, rows []ports.ButtonRow) error {
	data := &discordgo.InteractionResponseData{Content: content}
	if len(rows) > 0 {
		data.Components = buildComponents(rows)
	}
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func (r *interactionResponder) RespondUpdate(_ context.Context, content string) error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func buildComponents(rows []ports.ButtonRow) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		buttons := make([]discordgo.MessageComponent, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, discordgo.Button{
				Label:    b.Label,
				Style:    discordgo.PrimaryButton,
				CustomID: b.Token,
			})
		}
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	return components
}

var _ ports.Notifier = (*Gateway)(nil)
var _ ports.Responder = (*interactionResponder)(nil)
