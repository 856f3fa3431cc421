package service

import (
	"context"
	"time"

	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/charapedia/charapedia-backend/internal/repository"
	"github.com/charapedia/charapedia-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// dedupGuardTTL bounds how long the Redis guard remembers a delivered key.
// The notifications table's unique dedup index remains the authority; the
// guard only short-circuits repeats across processes.
const dedupGuardTTL = 10 * time.Minute

const dedupGuardPrefix = "notify:seen:"

// NotificationEvent is one logical event to be delivered to recipients
type NotificationEvent struct {
	Type      string
	SenderID  uint64
	SubjectID uint64
	Content   string
	Link      string
}

// Notifier delivers notifications with per-recipient deduplication.
// Delivery is best-effort: failures are logged and counted, never returned,
// so a notification problem cannot undo the content-state change that
// triggered it.
type Notifier struct {
	repo    repository.NotificationRepository
	members repository.MemberRepository
	redis   *redis.Client // optional cross-process guard
}

// NewNotifier creates a new Notifier
func NewNotifier(repo repository.NotificationRepository, members repository.MemberRepository, redisClient *redis.Client) *Notifier {
	return &Notifier{repo: repo, members: members, redis: redisClient}
}

// Notify delivers ev to each recipient once. Repeats of the same logical
// event to the same recipient are suppressed; distinct recipients each get
// their own delivery. Returns (delivered, suppressed) counts.
func (n *Notifier) Notify(ctx context.Context, ev NotificationEvent, recipients []uint64) (int, int) {
	var delivered, suppressed int
	seen := make(map[string]struct{}, len(recipients))

	for _, recipientID := range recipients {
		key := domain.NotificationDedupKey(ev.Type, ev.SenderID, ev.SubjectID, recipientID)
		if _, dup := seen[key]; dup {
			suppressed++
			notificationsTotal.WithLabelValues("suppressed").Inc()
			continue
		}
		seen[key] = struct{}{}

		if n.guardSeen(ctx, key) {
			suppressed++
			notificationsTotal.WithLabelValues("suppressed").Inc()
			continue
		}

		ok, err := n.repo.Create(&domain.Notification{
			RecipientID: recipientID,
			SenderID:    ev.SenderID,
			Type:        ev.Type,
			Content:     ev.Content,
			Link:        ev.Link,
			DedupKey:    &key,
		})
		if err != nil {
			// The guard is untouched on failure so an independent retry of
			// the same event can still deliver.
			notificationsTotal.WithLabelValues("failed").Inc()
			logger.GetLogger().Error().
				Err(err).
				Str("type", ev.Type).
				Uint64("recipient_id", recipientID).
				Msg("notification delivery failed")
			continue
		}
		n.guardMark(ctx, key)
		if ok {
			delivered++
			notificationsTotal.WithLabelValues("delivered").Inc()
		} else {
			suppressed++
			notificationsTotal.WithLabelValues("suppressed").Inc()
		}
	}
	return delivered, suppressed
}

// NotifyAdmins fans ev out to every active administrator except the sender
func (n *Notifier) NotifyAdmins(ctx context.Context, ev NotificationEvent) (int, int) {
	admins, err := n.members.ListAdmins()
	if err != nil {
		notificationsTotal.WithLabelValues("failed").Inc()
		logger.GetLogger().Error().Err(err).Str("type", ev.Type).Msg("admin fan-out failed")
		return 0, 0
	}

	recipients := make([]uint64, 0, len(admins))
	for _, admin := range admins {
		if admin.ID == ev.SenderID {
			continue
		}
		recipients = append(recipients, admin.ID)
	}
	return n.Notify(ctx, ev, recipients)
}

// NotifyDirect delivers ev to one recipient without deduplication.
// Used for review decision notices: one decision, one notice.
func (n *Notifier) NotifyDirect(ctx context.Context, ev NotificationEvent, recipientID uint64) {
	_, err := n.repo.Create(&domain.Notification{
		RecipientID: recipientID,
		SenderID:    ev.SenderID,
		Type:        ev.Type,
		Content:     ev.Content,
		Link:        ev.Link,
	})
	if err != nil {
		notificationsTotal.WithLabelValues("failed").Inc()
		logger.GetLogger().Error().
			Err(err).
			Str("type", ev.Type).
			Uint64("recipient_id", recipientID).
			Msg("notification delivery failed")
		return
	}
	notificationsTotal.WithLabelValues("delivered").Inc()
}

// guardSeen reports whether the Redis guard has already seen key. Guard
// errors are ignored; the database index still prevents duplicates.
func (n *Notifier) guardSeen(ctx context.Context, key string) bool {
	if n.redis == nil {
		return false
	}
	exists, err := n.redis.Exists(ctx, dedupGuardPrefix+key).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// guardMark records key in the Redis guard. Only called once the store has
// accepted the row; a key marked before the insert would turn a transient
// store failure into a silently dropped notification for the TTL window.
// Two processes racing between guardSeen and guardMark both insert, and the
// unique dedup index keeps one.
func (n *Notifier) guardMark(ctx context.Context, key string) {
	if n.redis == nil {
		return
	}
	n.redis.Set(ctx, dedupGuardPrefix+key, 1, dedupGuardTTL)
}
