package controller

import (
	"strings"

	"grafica-order-bot/internal/constant"
	"grafica-order-bot/internal/dto"
	"grafica-order-bot/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IWebhookController interface {
	RegisterRoutes(app *fiber.App)
	HandleUpdate(ctx *fiber.Ctx) error
	KeepAlive(ctx *fiber.Ctx) error
}

type webhookController struct {
	dialogue service.IDialogueService
	validate *validator.Validate
}

func NewWebhookController(dialogue service.IDialogueService) IWebhookController {
	return &webhookController{
		dialogue: dialogue,
		validate: validator.New(),
	}
}

func (c *webhookController) RegisterRoutes(app *fiber.App) {
	app.Get("/", c.KeepAlive)
	app.Post("/webhook", c.HandleUpdate)
}

// KeepAlive answers uptime pings from the hosting platform.
func (c *webhookController) KeepAlive(ctx *fiber.Ctx) error {
	return ctx.SendString("Bot da Gráfica Online!")
}

// HandleUpdate processes one inbound telegram update. The reply rides
// the webhook response body as a sendMessage call, so the turn needs no
// outbound HTTP request. Malformed or non-text updates are acknowledged
// with an empty 200 so telegram does not redeliver them.
func (c *webhookController) HandleUpdate(ctx *fiber.Ctx) error {
	var update dto.Update
	if err := ctx.BodyParser(&update); err != nil {
		return ctx.SendStatus(fiber.StatusOK)
	}
	if err := c.validate.Struct(&update); err != nil {
		return ctx.SendStatus(fiber.StatusOK)
	}
	if update.Message.Text == "" {
		return ctx.SendStatus(fiber.StatusOK)
	}

	reply := c.dialogue.HandleMessage(
		ctx.Context(),
		update.Message.Chat.Id,
		submitterLabel(update.Message.From),
		update.Message.Text,
	)

	payload := dto.SendMessagePayload{
		Method: "sendMessage",
		ChatId: update.Message.Chat.Id,
		Text:   reply.Text,
	}
	if reply.Markdown {
		payload.ParseMode = "Markdown"
	}
	if reply.YesNoKeyboard {
		payload.ReplyMarkup = &dto.ReplyMarkup{
			Keyboard: [][]dto.KeyboardButton{{
				{Text: constant.KeyboardYes},
				{Text: constant.KeyboardNo},
			}},
			OneTimeKeyboard: true,
			ResizeKeyboard:  true,
		}
	}
	return ctx.JSON(payload)
}

func submitterLabel(from *dto.User) string {
	if from == nil {
		return "Funcionário"
	}
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.Username
	}
	if name == "" {
		name = "Funcionário"
	}
	return name
}
