package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"grafica-order-bot/internal/constant"
	"grafica-order-bot/internal/dto"
	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialogueFixture struct {
	svc       IDialogueService
	sessions  *memory.SessionRepository
	factory   *fakeUowFactory
	publisher *fakePublisher
}

func newDialogueFixture(t *testing.T) *dialogueFixture {
	t.Helper()

	sessions := memory.NewSessionRepository()
	factory := newFakeUowFactory()
	publisher := &fakePublisher{}

	svc := NewDialogueService(
		sessions,
		NewAuthService(factory, "segredo123"),
		NewDeadlineService(7),
		factory,
		publisher,
		noopLogger{},
	)

	return &dialogueFixture{
		svc:       svc,
		sessions:  sessions,
		factory:   factory,
		publisher: publisher,
	}
}

func (f *dialogueFixture) send(text string) *dto.Reply {
	return f.svc.HandleMessage(context.Background(), 42, "Maria Silva", text)
}

func (f *dialogueFixture) enroll(t *testing.T) {
	t.Helper()
	reply := f.send("/start")
	require.Equal(t, constant.PromptSecret, reply.Text)
	reply = f.send("segredo123")
	require.Equal(t, constant.PromptClientName, reply.Text)
}

func TestStartPromptsForSecretWhenUnknown(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.send("/start")
	assert.Equal(t, constant.PromptSecret, reply.Text)
}

func TestWrongSecretLoopsIndefinitely(t *testing.T) {
	f := newDialogueFixture(t)
	f.send("/start")

	for i := 0; i < 4; i++ {
		reply := f.send("senha errada")
		assert.Equal(t, constant.PromptSecretRetry, reply.Text)
	}

	// The right secret still works afterwards.
	reply := f.send("segredo123")
	assert.Equal(t, constant.PromptClientName, reply.Text)
}

func TestEnrolledUserSkipsSecretOnFreshStart(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)

	// A fresh /start goes straight to the client name question.
	reply := f.send("/start")
	assert.Equal(t, constant.PromptClientName, reply.Text)
}

func TestFullOrderFlowWithTwoItems(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)

	reply := f.send("Ana")
	assert.Equal(t, constant.PromptOrderDate, reply.Text)

	reply = f.send("01/12/2025") // a Monday
	assert.Equal(t, constant.PromptMaterial, reply.Text)

	reply = f.send("Banner")
	assert.Equal(t, constant.PromptQuantity, reply.Text)

	reply = f.send("3")
	assert.Equal(t, constant.PromptAddAnother, reply.Text)
	assert.True(t, reply.YesNoKeyboard)

	reply = f.send("Sim")
	assert.Equal(t, constant.PromptMaterial, reply.Text)

	f.send("Cartão")
	f.send("500")
	reply = f.send("Não")

	// Final summary lists both items and the computed delivery date.
	assert.Contains(t, reply.Text, "Ana")
	assert.Contains(t, reply.Text, "Banner: 3")
	assert.Contains(t, reply.Text, "Cartão: 500")
	assert.Contains(t, reply.Text, "10/12/2025")
	assert.True(t, reply.Markdown)

	// Exactly one order, two rows worth of items, in insertion order.
	require.Len(t, f.factory.uow.orders.orders, 1)
	order := f.factory.uow.orders.orders[0]
	assert.Equal(t, "Ana", order.ClientName)
	assert.Equal(t, "01/12/2025", order.OrderDate)
	assert.Equal(t, "10/12/2025", order.DeliveryDate)
	assert.Equal(t, "Maria Silva", order.SubmitterLabel)
	assert.Equal(t, []entity.CartItem{
		{Material: "Banner", Quantity: "3"},
		{Material: "Cartão", Quantity: "500"},
	}, order.Items)
	assert.Equal(t, 1, f.factory.uow.committed)

	// Session is gone, the next message is not a continuation.
	reply = f.send("mais uma coisa")
	assert.Equal(t, constant.ReplyNoSession, reply.Text)
}

func TestUnaccentedNoVariantFinalizes(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)
	f.send("Ana")
	f.send("01/12/2025")
	f.send("Banner")
	f.send("3")

	reply := f.send("NAO")
	assert.Contains(t, reply.Text, "Pedido Salvo")
	assert.Len(t, f.factory.uow.orders.orders, 1)
}

func TestContinueDecisionRejectsOtherAnswers(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)
	f.send("Ana")
	f.send("01/12/2025")
	f.send("Banner")
	f.send("3")

	reply := f.send("talvez")
	assert.Equal(t, constant.PromptYesOrNo, reply.Text)
	assert.True(t, reply.YesNoKeyboard)

	// Still in the decision state, nothing persisted yet.
	assert.Empty(t, f.factory.uow.orders.orders)

	reply = f.send("sim")
	assert.Equal(t, constant.PromptMaterial, reply.Text)
}

func TestInvalidDateRepromptsSameState(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)
	f.send("Ana")

	reply := f.send("amanhã")
	assert.Equal(t, constant.PromptBadDate, reply.Text)

	reply = f.send("2025-12-01")
	assert.Equal(t, constant.PromptBadDate, reply.Text)

	// A valid date still advances.
	reply = f.send("01/12/2025")
	assert.Equal(t, constant.PromptMaterial, reply.Text)
}

func TestCancelFromAnyState(t *testing.T) {
	steps := map[string][]string{
		"mid-auth":      {},
		"awaiting name": {"segredo123"},
		"awaiting date": {"segredo123", "Ana"},
		"mid-cart":      {"segredo123", "Ana", "01/12/2025", "Banner", "3"},
	}

	for name, setup := range steps {
		t.Log(name)
		f := newDialogueFixture(t)
		f.send("/start")
		for _, msg := range setup {
			f.send(msg)
		}

		reply := f.send("/cancel")
		assert.Equal(t, constant.ReplyCancelled, reply.Text)
		assert.Empty(t, f.factory.uow.orders.orders)

		// Session is discarded; a fresh /start begins cleanly.
		reply = f.send("olá?")
		assert.Equal(t, constant.ReplyNoSession, reply.Text)
	}
}

func TestCancelWithoutSession(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.send("/cancel")
	assert.Equal(t, constant.ReplyNoSession, reply.Text)
}

func TestStartResetsInProgressOrder(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)
	f.send("Ana")
	f.send("01/12/2025")
	f.send("Banner")
	f.send("3")

	// Restarting wipes the cart and the collected fields.
	reply := f.send("/start")
	assert.Equal(t, constant.PromptClientName, reply.Text)

	f.send("Bruno")
	f.send("02/12/2025")
	f.send("Folder")
	f.send("100")
	f.send("não")

	require.Len(t, f.factory.uow.orders.orders, 1)
	order := f.factory.uow.orders.orders[0]
	assert.Equal(t, "Bruno", order.ClientName)
	assert.Equal(t, []entity.CartItem{{Material: "Folder", Quantity: "100"}}, order.Items)
}

func TestPersistenceFailureDiscardsSessionAndSurfacesError(t *testing.T) {
	f := newDialogueFixture(t)
	f.factory.uow.orders.err = errors.New(`duplicate key value violates unique constraint "pedidos_pkey"`)

	f.enroll(t)
	f.send("Ana")
	f.send("01/12/2025")
	f.send("Banner")
	f.send("3")
	reply := f.send("não")

	// The raw backend error text reaches the user.
	assert.Contains(t, reply.Text, "Erro ao salvar")
	assert.Contains(t, reply.Text, "pedidos_pkey")

	// Not retried, session gone.
	assert.Empty(t, f.factory.uow.orders.orders)
	reply = f.send("tentar de novo")
	assert.Equal(t, constant.ReplyNoSession, reply.Text)

	// The discarded order went to the event bus for manual recovery.
	require.Len(t, f.publisher.published, 1)
	msg := f.publisher.published[0]
	assert.Equal(t, dto.TopicOrderDiscarded, msg.topic)

	var payload dto.OrderEventPayload
	require.NoError(t, json.Unmarshal(msg.payload, &payload))
	assert.Equal(t, "Ana", payload.ClientName)
	assert.Contains(t, payload.Error, "pedidos_pkey")
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Banner", payload.Items[0].Material)
}

func TestSuccessfulOrderPublishesSavedEvent(t *testing.T) {
	f := newDialogueFixture(t)
	f.enroll(t)
	f.send("Ana")
	f.send("01/12/2025")
	f.send("Banner")
	f.send("3")
	f.send("não")

	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, dto.TopicOrderSaved, f.publisher.published[0].topic)
}

func TestMessageWithoutSession(t *testing.T) {
	f := newDialogueFixture(t)

	reply := f.send("oi")
	assert.Equal(t, constant.ReplyNoSession, reply.Text)
}
