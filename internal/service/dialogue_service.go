package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grafica-order-bot/internal/constant"
	"grafica-order-bot/internal/dto"
	"grafica-order-bot/internal/entity"
	"grafica-order-bot/internal/pkg/logger"
	"grafica-order-bot/internal/repository/memory"
	"grafica-order-bot/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IDialogueService interface {
	// HandleMessage runs one dialogue turn and always produces exactly
	// one reply. Validation failures are replies, not errors.
	HandleMessage(ctx context.Context, userId int64, submitterLabel, text string) *dto.Reply
}

type dialogueService struct {
	sessions    *memory.SessionRepository
	authService IAuthService
	deadlines   IDeadlineService
	uowFactory  unitofwork.RepositoryFactory
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewDialogueService(
	sessions *memory.SessionRepository,
	authService IAuthService,
	deadlines IDeadlineService,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IDialogueService {
	return &dialogueService{
		sessions:    sessions,
		authService: authService,
		deadlines:   deadlines,
		uowFactory:  uowFactory,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *dialogueService) HandleMessage(ctx context.Context, userId int64, submitterLabel, text string) *dto.Reply {
	unlock := s.sessions.Lock(userId)
	defer unlock()

	text = strings.TrimSpace(text)

	// /cancel and /start are routable from any state.
	switch text {
	case constant.CancelCmd:
		return s.handleCancel(userId)
	case constant.StartCmd:
		return s.handleStart(ctx, userId, submitterLabel)
	}

	session, ok := s.sessions.Get(userId)
	if !ok {
		return &dto.Reply{Text: constant.ReplyNoSession}
	}

	switch session.State {
	case constant.StateUnauthenticated:
		return s.handleSecret(ctx, session, text)
	case constant.StateAwaitingName:
		return s.handleClientName(session, text)
	case constant.StateAwaitingOrderDate:
		return s.handleOrderDate(session, text)
	case constant.StateAwaitingMaterial:
		return s.handleMaterial(session, text)
	case constant.StateAwaitingQuantity:
		return s.handleQuantity(session, text)
	case constant.StateAwaitingContinueDecision:
		return s.handleContinueDecision(ctx, session, text)
	}

	// Unreachable: terminal sessions are removed from the store.
	s.sessions.Delete(userId)
	return &dto.Reply{Text: constant.ReplyNoSession}
}

func (s *dialogueService) handleCancel(userId int64) *dto.Reply {
	if _, ok := s.sessions.Get(userId); !ok {
		return &dto.Reply{Text: constant.ReplyNoSession}
	}
	s.sessions.Delete(userId)
	return &dto.Reply{Text: constant.ReplyCancelled}
}

// handleStart wipes any previous session for the user and opens a fresh
// one, skipping the secret prompt for already-enrolled employees.
func (s *dialogueService) handleStart(ctx context.Context, userId int64, submitterLabel string) *dto.Reply {
	s.sessions.Delete(userId)

	authorized, err := s.authService.IsAuthorized(ctx, userId)
	if err != nil {
		s.logger.Error("Dialogue", "Authorization lookup failed", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return &dto.Reply{Text: fmt.Sprintf("❌ Erro ao consultar cadastro:\n`%s`", err.Error()), Markdown: true}
	}

	session := entity.NewSession(userId, submitterLabel)
	if !authorized {
		session.State = constant.StateUnauthenticated
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.PromptSecret}
	}

	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptClientName, Markdown: true}
}

func (s *dialogueService) handleSecret(ctx context.Context, session *entity.Session, text string) *dto.Reply {
	enrolled, err := s.authService.TryEnroll(ctx, session.UserId, session.SubmitterLabel, text)
	if err != nil {
		s.logger.Error("Dialogue", "Enrollment failed", map[string]interface{}{
			"user_id": session.UserId,
			"error":   err.Error(),
		})
		return &dto.Reply{Text: fmt.Sprintf("❌ Erro ao cadastrar funcionário:\n`%s`", err.Error()), Markdown: true}
	}
	if !enrolled {
		return &dto.Reply{Text: constant.PromptSecretRetry}
	}

	session.State = constant.StateAwaitingName
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptClientName, Markdown: true}
}

func (s *dialogueService) handleClientName(session *entity.Session, text string) *dto.Reply {
	session.ClientName = text
	session.State = constant.StateAwaitingOrderDate
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptOrderDate}
}

func (s *dialogueService) handleOrderDate(session *entity.Session, text string) *dto.Reply {
	orderDate, err := s.deadlines.ParseOrderDate(text)
	if err != nil {
		return &dto.Reply{Text: constant.PromptBadDate}
	}

	session.OrderDate = s.deadlines.Format(orderDate)
	session.DeliveryDate = s.deadlines.Format(s.deadlines.DeliveryDate(orderDate))
	session.State = constant.StateAwaitingMaterial
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptMaterial, Markdown: true}
}

func (s *dialogueService) handleMaterial(session *entity.Session, text string) *dto.Reply {
	if text == "" {
		return &dto.Reply{Text: constant.PromptEmptyMaterial}
	}
	session.PendingMaterial = text
	session.State = constant.StateAwaitingQuantity
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptQuantity, Markdown: true}
}

func (s *dialogueService) handleQuantity(session *entity.Session, text string) *dto.Reply {
	// Quantity stays free text on purpose: the shop records values like
	// "3 caixas" and the stored rows already contain such entries.
	if err := session.AddItem(session.PendingMaterial, text); err != nil {
		session.State = constant.StateAwaitingMaterial
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.PromptEmptyMaterial}
	}

	session.PendingMaterial = ""
	session.State = constant.StateAwaitingContinueDecision
	s.sessions.Save(session)
	return &dto.Reply{Text: constant.PromptAddAnother, YesNoKeyboard: true}
}

func (s *dialogueService) handleContinueDecision(ctx context.Context, session *entity.Session, text string) *dto.Reply {
	switch {
	case matchesAny(text, constant.YesWords):
		session.State = constant.StateAwaitingMaterial
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.PromptMaterial, Markdown: true}
	case matchesAny(text, constant.NoWords):
		return s.finalize(ctx, session)
	default:
		return &dto.Reply{Text: constant.PromptYesOrNo, Markdown: true, YesNoKeyboard: true}
	}
}

// finalize closes the cart, persists one row per item inside a single
// transaction and ends the conversation either way: a backend failure
// discards the order (it survives only in the event log) and surfaces
// the raw error to the user.
func (s *dialogueService) finalize(ctx context.Context, session *entity.Session) *dto.Reply {
	items, err := session.SnapshotAndClear()
	if err != nil {
		session.State = constant.StateAwaitingMaterial
		s.sessions.Save(session)
		return &dto.Reply{Text: constant.PromptEmptyMaterial}
	}

	order := &entity.Order{
		Id:             uuid.New(),
		ClientName:     session.ClientName,
		OrderDate:      session.OrderDate,
		DeliveryDate:   session.DeliveryDate,
		SubmitterLabel: session.SubmitterLabel,
		Items:          items,
		CreatedAt:      time.Now(),
	}

	s.sessions.Delete(session.UserId)

	if err := s.submit(ctx, order); err != nil {
		s.publishEvent(ctx, dto.TopicOrderDiscarded, order, err)
		s.logger.Error("Dialogue", "Order persistence failed", map[string]interface{}{
			"user_id":  session.UserId,
			"order_id": order.Id.String(),
			"error":    err.Error(),
		})
		return &dto.Reply{Text: fmt.Sprintf("❌ Erro ao salvar:\n`%s`", err.Error()), Markdown: true}
	}

	s.publishEvent(ctx, dto.TopicOrderSaved, order, nil)
	s.logger.Info("Dialogue", "Order persisted", map[string]interface{}{
		"user_id":  session.UserId,
		"order_id": order.Id.String(),
		"itens":    len(order.Items),
	})
	return &dto.Reply{Text: summary(order), Markdown: true}
}

func (s *dialogueService) submit(ctx context.Context, order *entity.Order) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().CreateRows(ctx, order); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *dialogueService) publishEvent(ctx context.Context, topic string, order *entity.Order, cause error) {
	payload := dto.OrderEventPayload{
		OrderId:        order.Id.String(),
		ClientName:     order.ClientName,
		OrderDate:      order.OrderDate,
		DeliveryDate:   order.DeliveryDate,
		SubmitterLabel: order.SubmitterLabel,
		Items:          make([]dto.OrderItemPayload, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, dto.OrderItemPayload{
			Material: item.Material,
			Quantity: item.Quantity,
		})
	}
	if cause != nil {
		payload.Error = cause.Error()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("Dialogue", "Failed to marshal order event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, topic, data); err != nil {
		s.logger.Warn("Dialogue", "Failed to publish order event", map[string]interface{}{"error": err.Error()})
	}
}

func summary(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("✅ *Pedido Salvo!*\n\n")
	fmt.Fprintf(&b, "👤 Cliente: %s\n", order.ClientName)
	fmt.Fprintf(&b, "🗓 Pedido: %s\n", order.OrderDate)
	fmt.Fprintf(&b, "🚚 *Entrega: %s*\n\n", order.DeliveryDate)
	b.WriteString("📦 Itens:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s: %s\n", item.Material, item.Quantity)
	}
	return b.String()
}

func matchesAny(text string, words []string) bool {
	for _, w := range words {
		if strings.EqualFold(text, w) {
			return true
		}
	}
	return false
}
