package constants

// Realtime channel event names.
const (
	EventAuthenticate       = "authenticate"
	EventAuthenticated      = "authenticated"
	EventError              = "error"
	EventChatSendMessage    = "chat:sendMessage"
	EventChatReceiveMessage = "chat:receiveMessage"
)
