package formatting

import "fmt"

const (
	MsgNameRequired  = "Player name is required."
	MsgAdminRequired = "You need Administrator permissions to use this command."
)

func MsgElimination(killer, victim, cause string) string {
	return fmt.Sprintf("**%s** eliminated %s (%s)", killer, victim, cause)
}

func MsgPlayerKills(name string, kills int) string {
	if kills == 1 {
		return fmt.Sprintf("%s has 1 kill this session.", name)
	}
	return fmt.Sprintf("%s has %d kills this session.", name, kills)
}

func MsgPlayerUnknown(name string) string {
	return fmt.Sprintf("No kills recorded for %s this session.", name)
}

// MsgCodeBlock wraps multi-line output so Discord keeps the column layout.
func MsgCodeBlock(body string) string {
	return "```\n" + body + "\n```"
}

func MsgChannelError(channelName string) string {
	return fmt.Sprintf("Failed to create or find #%s channel.", channelName)
}

func MsgFeedReady(channelName string) string {
	return fmt.Sprintf("Eliminations will be posted in #%s.", channelName)
}
