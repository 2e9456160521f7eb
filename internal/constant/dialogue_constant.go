package constant

// Dialogue states, one per question the bot is currently waiting on.
type DialogueState int

const (
	StateUnauthenticated DialogueState = iota
	StateAwaitingName
	StateAwaitingOrderDate
	StateAwaitingMaterial
	StateAwaitingQuantity
	StateAwaitingContinueDecision
	StateTerminal
)

func (s DialogueState) String() string {
	switch s {
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	case StateAwaitingName:
		return "AWAITING_NAME"
	case StateAwaitingOrderDate:
		return "AWAITING_ORDER_DATE"
	case StateAwaitingMaterial:
		return "AWAITING_MATERIAL"
	case StateAwaitingQuantity:
		return "AWAITING_QUANTITY"
	case StateAwaitingContinueDecision:
		return "AWAITING_CONTINUE_DECISION"
	case StateTerminal:
		return "TERMINAL"
	}
	return "UNKNOWN"
}

const (
	StartCmd  = "/start"
	CancelCmd = "/cancel"
)

// Continue-decision vocabulary. Matched case-insensitively; the accented
// and unaccented spellings are both accepted.
var (
	YesWords = []string{"sim", "s"}
	NoWords  = []string{"não", "nao", "n"}
)

// DateLayout is the only accepted format for order dates and the exact
// format written to the pedidos table. Existing rows already use it.
const DateLayout = "02/01/2006"

// Prompts and replies, in the shop's language.
const (
	PromptSecret        = "🔒 Informe a senha de funcionário para começar:"
	PromptSecretRetry   = "❌ Senha incorreta. Tente novamente:"
	PromptClientName    = "🤖 Olá! Bot da Gráfica.\n\nQual o *Nome do Cliente*?"
	PromptOrderDate     = "Data do Pedido (DD/MM/AAAA):"
	PromptBadDate       = "⚠️ Data inválida. Use o formato DD/MM/AAAA (ex: 12/05/2026)."
	PromptMaterial      = "Qual o *Material*?"
	PromptQuantity      = "Qual a *Quantidade*?"
	PromptAddAnother    = "Deseja adicionar outro item? (Sim/Não)"
	PromptYesOrNo       = "Por favor, responda *Sim* ou *Não*."
	PromptEmptyMaterial = "⚠️ O material não pode ficar em branco."
	ReplyCancelled      = "Operação cancelada."
	ReplyNoSession      = "Nenhum pedido em andamento. Envie /start para começar."

	KeyboardYes = "Sim"
	KeyboardNo  = "Não"
)
