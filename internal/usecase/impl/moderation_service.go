package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	deliverycontext "chatdesk/internal/delivery/context"
	"chatdesk/internal/domain/entity"
	domainerrors "chatdesk/internal/domain/errors"
	"chatdesk/internal/domain/service"
	"chatdesk/internal/usecase"
)

const (
	flagReasonPrefix  = "Flagged by moderator: "
	flagSuccessStatus = "Message has been flagged."
)

// moderationService implements the ModerationUsecase interface.
type moderationService struct {
	logger    *slog.Logger
	chat      service.ChatService
	session   usecase.SessionUsecase
	screen    *ScreenStore
	publisher service.EventPublisher
	sanitizer service.TextSanitizer
	metrics   service.MetricsRecorder
}

// NewModerationService is the constructor for moderationService.
func NewModerationService(
	logger *slog.Logger,
	chat service.ChatService,
	session usecase.SessionUsecase,
	screen *ScreenStore,
	publisher service.EventPublisher,
	sanitizer service.TextSanitizer,
	metrics service.MetricsRecorder,
) usecase.ModerationUsecase {
	return &moderationService{
		logger:    logger,
		chat:      chat,
		session:   session,
		screen:    screen,
		publisher: publisher,
		sanitizer: sanitizer,
		metrics:   metrics,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CanModerate reports whether the current identity may flag msg or ban its author.
func (srv *moderationService) CanModerate(msg entity.Message) bool {
	identity, ok := srv.session.CurrentIdentity()
	if !ok || !identity.IsAdmin() {
		return false
	}

	return msg.User.ID != "" && msg.User.ID != identity.ID
}

// Messages returns the buffered messages of the active channel, oldest first.
func (srv *moderationService) Messages(ctx context.Context) ([]usecase.MessageView, error) {
	channel, ok := srv.screen.activeChannel()
	if !ok {
		return nil, domainerrors.ErrNotReady
	}

	messages := srv.chat.Messages(channel.CID)
	views := make([]usecase.MessageView, 0, len(messages))
	for _, msg := range messages {
		if srv.sanitizer != nil {
			msg.Text = srv.sanitizer.Sanitize(msg.Text)
		}
		views = append(views, usecase.MessageView{
			Message:     msg,
			Moderatable: srv.CanModerate(msg),
		})
	}

	srv.log(ctx).Debug("Listed channel messages",
		slog.String("cid", channel.CID),
		slog.Int("count", len(views)),
	)

	return views, nil
}

// Flag asks the chat service to flag a message for review.
func (srv *moderationService) Flag(ctx context.Context, messageID string) error {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("message id is required")
	}

	moderator, channel, err := srv.moderatorInChannel()
	if err != nil {
		return err
	}

	if msg, found := srv.findMessage(channel.CID, messageID); found && msg.User.ID == moderator.ID {
		return domainerrors.ErrSelfModeration
	}

	reason := flagReasonPrefix + moderator.ID
	logger := srv.log(ctx).With(
		slog.String("message_id", messageID),
		slog.String("moderator_id", moderator.ID),
	)

	if err := srv.chat.FlagMessage(ctx, messageID, reason); err != nil {
		stepErr := domainerrors.NewStepError(domainerrors.ErrFlag, err)
		srv.metrics.RecordModerationAction(string(entity.ModerationFlag), stepErr)
		srv.screen.setStatus(domainerrors.ErrFlag.Message() + ": " + domainerrors.UserMessage(stepErr))
		logger.Error("Failed to flag message", slog.Any("error", err))

		return stepErr
	}

	srv.metrics.RecordModerationAction(string(entity.ModerationFlag), nil)
	srv.screen.setStatus(flagSuccessStatus)
	logger.Info("Message flagged")

	srv.publish(ctx, &service.ModerationEvent{
		Kind:            string(entity.ModerationFlag),
		ModeratorID:     moderator.ID,
		ChannelCID:      channel.CID,
		TargetMessageID: messageID,
		Reason:          reason,
	})

	return nil
}

// OpenBanPrompt opens the ban-reason prompt for target.
func (srv *moderationService) OpenBanPrompt(ctx context.Context, target entity.ChatUser) (*entity.BanPrompt, error) {
	if strings.TrimSpace(target.ID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("target user id is required")
	}

	moderator, _, err := srv.moderatorInChannel()
	if err != nil {
		return nil, err
	}
	if target.ID == moderator.ID {
		return nil, domainerrors.ErrSelfModeration
	}

	prompt := srv.screen.openBanPrompt(target)
	srv.log(ctx).Info("Ban prompt opened", slog.String("target_user_id", target.ID))

	return &prompt, nil
}

// UpdateBanReason replaces the reason typed into the open prompt.
func (srv *moderationService) UpdateBanReason(_ context.Context, reason string) (*entity.BanPrompt, error) {
	prompt, err := srv.screen.setBanReason(reason)
	if err != nil {
		return nil, err
	}

	return &prompt, nil
}

// ConfirmBan bans the prompt's target permanently with reason. On failure the
// prompt stays open with the reason and the error text.
func (srv *moderationService) ConfirmBan(ctx context.Context, reason string) error {
	moderator, channel, err := srv.moderatorInChannel()
	if err != nil {
		return err
	}

	prompt, err := srv.screen.setBanReason(reason)
	if err != nil {
		return err
	}

	action := entity.ModerationAction{
		Kind:         entity.ModerationBan,
		TargetUserID: prompt.Target.ID,
		Reason:       reason,
		BannedBy:     moderator.ID,
	}
	logger := srv.log(ctx).With(
		slog.String("target_user_id", action.TargetUserID),
		slog.String("moderator_id", moderator.ID),
	)

	if err := srv.chat.BanUser(ctx, action); err != nil {
		stepErr := domainerrors.NewStepError(domainerrors.ErrBan, err)
		srv.metrics.RecordModerationAction(string(entity.ModerationBan), stepErr)
		srv.screen.failBanPrompt(prompt.Target, reason, domainerrors.ErrBan.Message()+": "+domainerrors.UserMessage(stepErr))
		logger.Error("Failed to ban user", slog.Any("error", err))

		return stepErr
	}

	srv.metrics.RecordModerationAction(string(entity.ModerationBan), nil)
	srv.screen.closeBanPrompt()
	srv.screen.setStatus(displayName(prompt.Target) + " has been banned.")
	logger.Info("User banned")

	srv.publish(ctx, &service.ModerationEvent{
		Kind:         string(entity.ModerationBan),
		ModeratorID:  moderator.ID,
		ChannelCID:   channel.CID,
		TargetUserID: action.TargetUserID,
		Reason:       reason,
	})

	return nil
}

// CancelBan closes the prompt without acting.
func (srv *moderationService) CancelBan(ctx context.Context) {
	srv.screen.closeBanPrompt()
	srv.log(ctx).Debug("Ban prompt cancelled")
}

// moderatorInChannel returns the admin identity and the active channel.
func (srv *moderationService) moderatorInChannel() (*entity.Identity, *entity.Channel, error) {
	identity, ok := srv.session.CurrentIdentity()
	if !ok || !identity.IsAdmin() {
		return nil, nil, domainerrors.ErrForbidden
	}

	channel, ok := srv.screen.activeChannel()
	if !ok {
		return nil, nil, domainerrors.ErrNotReady
	}

	return identity, channel, nil
}

func (srv *moderationService) findMessage(cid, messageID string) (entity.Message, bool) {
	for _, msg := range srv.chat.Messages(cid) {
		if msg.ID == messageID {
			return msg, true
		}
	}

	return entity.Message{}, false
}

// publish emits an audit event. Failures are logged and never fail the action.
func (srv *moderationService) publish(ctx context.Context, event *service.ModerationEvent) {
	if srv.publisher == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event",
			slog.String("event_id", event.EventID),
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}

func displayName(user entity.ChatUser) string {
	if user.Name != "" {
		return user.Name
	}

	return user.ID
}
