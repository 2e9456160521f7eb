package dto

// Update is the subset of a Telegram webhook update the bot cares
// about. The transport guarantees in-order, single-flight delivery per
// chat, so no update_id bookkeeping is needed here.
type Update struct {
	UpdateId int64    `json:"update_id"`
	Message  *Message `json:"message" validate:"required"`
}

type Message struct {
	Chat Chat   `json:"chat" validate:"required"`
	From *User  `json:"from"`
	Text string `json:"text"`
}

type Chat struct {
	Id int64 `json:"id" validate:"required"`
}

type User struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Reply is the single outbound response for one processed update. It is
// serialized straight into the webhook response body as a sendMessage
// call, so no outbound HTTP client is needed.
type Reply struct {
	Text     string
	Markdown bool
	// YesNoKeyboard attaches the two-button Sim/Não reply keyboard.
	YesNoKeyboard bool
}

type SendMessagePayload struct {
	Method      string       `json:"method"`
	ChatId      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ParseMode   string       `json:"parse_mode,omitempty"`
	ReplyMarkup *ReplyMarkup `json:"reply_markup,omitempty"`
}

type ReplyMarkup struct {
	Keyboard        [][]KeyboardButton `json:"keyboard,omitempty"`
	OneTimeKeyboard bool               `json:"one_time_keyboard,omitempty"`
	ResizeKeyboard  bool               `json:"resize_keyboard,omitempty"`
	RemoveKeyboard  bool               `json:"remove_keyboard,omitempty"`
}

type KeyboardButton struct {
	Text string `json:"text"`
}
