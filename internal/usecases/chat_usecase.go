package usecases

import (
	"context"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
)

// UnreadTracker keeps per-user unread counters in a fast store. Tracker
// failures never fail the message write.
type UnreadTracker interface {
	Increment(ctx context.Context, userID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

// NopUnreadTracker is used when no fast store is attached.
type NopUnreadTracker struct{}

func (NopUnreadTracker) Increment(context.Context, uuid.UUID) error { return nil }

func (NopUnreadTracker) Clear(context.Context, uuid.UUID) error { return nil }

func (NopUnreadTracker) Count(context.Context, uuid.UUID) (int64, error) { return 0, nil }

// ChatUsecase handles persisted chat with realtime relay. Persistence is the
// source of truth: a message is stored whether or not the recipient is
// connected, and the relay push is fire-and-forget.
type ChatUsecase struct {
	chatRepo repositories.ChatMessageRepository
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	notifier Notifier
	unread   UnreadTracker
}

// NewChatUsecase creates a new chat usecase
func NewChatUsecase(
	chatRepo repositories.ChatMessageRepository,
	teamRepo repositories.TeamRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
	unread UnreadTracker,
) *ChatUsecase {
	return &ChatUsecase{
		chatRepo: chatRepo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		notifier: notifier,
		unread:   unread,
	}
}

// Send persists a message and relays it. Direct messages go to the recipient
// and echo back to the sender; team messages fan out to every seated member.
// Senders must hold a seat to post to a team channel.
func (uc *ChatUsecase) Send(ctx context.Context, actor Actor, input *entities.SendMessageInput) (*entities.ChatMessage, error) {
	var recipients []uuid.UUID

	if input.IsTeam {
		team, err := uc.teamRepo.GetByID(ctx, input.ToID)
		if err != nil {
			return nil, err
		}
		if !team.HasMember(actor.ID) && !team.HasMentor(actor.ID) {
			return nil, domainerrors.Forbidden("only team members may post to the team channel")
		}
		recipients = memberIDs(team)
	} else {
		if _, err := uc.userRepo.GetByID(ctx, input.ToID); err != nil {
			return nil, err
		}
		recipients = []uuid.UUID{input.ToID, actor.ID}
	}

	msg := &entities.ChatMessage{
		ID:     uuid.New(),
		FromID: actor.ID,
		ToID:   input.ToID,
		Text:   input.Text,
		IsTeam: input.IsTeam,
		ReadBy: []uuid.UUID{actor.ID},
	}
	if err := uc.chatRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	for _, id := range recipients {
		if id != actor.ID {
			_ = uc.unread.Increment(ctx, id)
		}
	}
	uc.notifier.NotifyUsers(recipients, EventChatMessage, msg)
	return msg, nil
}

// Conversation returns the direct history between the actor and a peer,
// oldest first.
func (uc *ChatUsecase) Conversation(ctx context.Context, actor Actor, peerID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	return uc.chatRepo.ListConversation(ctx, actor.ID, peerID, limit, offset)
}

// TeamHistory returns the team channel history, oldest first. Only seated
// members and attached mentors may read it.
func (uc *ChatUsecase) TeamHistory(ctx context.Context, actor Actor, teamID uuid.UUID, limit, offset int) ([]*entities.ChatMessage, error) {
	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.HasMember(actor.ID) && !team.HasMentor(actor.ID) && !actor.IsAdmin() {
		return nil, domainerrors.Forbidden("only team members may read the team channel")
	}
	return uc.chatRepo.ListTeam(ctx, teamID, limit, offset)
}

// MarkRead adds the actor to the read-by set of each message and resets the
// actor's unread counter. The counter is a coarse badge, not per-message
// bookkeeping: any mark-read clears it entirely, even when other
// conversations still hold unread messages, so it can undercount until the
// next message arrives. Re-marking an already read message is a no-op.
func (uc *ChatUsecase) MarkRead(ctx context.Context, actor Actor, input *entities.MarkReadInput) error {
	if err := uc.chatRepo.MarkRead(ctx, actor.ID, input.MessageIDs); err != nil {
		return err
	}
	_ = uc.unread.Clear(ctx, actor.ID)
	return nil
}

// UnreadCount returns the actor's unread counter.
func (uc *ChatUsecase) UnreadCount(ctx context.Context, actor Actor) (int64, error) {
	return uc.unread.Count(ctx, actor.ID)
}
