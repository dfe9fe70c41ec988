package announcements

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCronSpec = "@daily"
	runDateLayout    = "2006-01-02"
	// a run lock outlives every replica's tick for the same day
	defaultLockTTL = 24 * time.Hour
)

// Worker announces upcoming closures on the message queue, once per business day. The first
// replica to claim the day's run lock publishes; the lock is kept after a successful run so
// replicas ticking later that day skip it, and released after a failure so another may retry.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	banners   contracts.BannerUsecase
	publisher contracts.AnnouncementPublisher
	clock     contracts.Clock
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	bannerUsecase contracts.BannerUsecase,
	publisher contracts.AnnouncementPublisher,
	clock contracts.Clock,
) *Worker {
	return &Worker{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		banners:   bannerUsecase,
		publisher: publisher,
		clock:     clock,
	}
}

// Start schedules the job on the configured cron spec in the clock's location.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	job := func() {
		if err := w.runOnce(w.runCtx); err != nil {
			w.log.Warn("announcements.worker: run failed", zap.Error(err))
		}
	}

	spec := w.cfg.Announcement.CronSpec
	c := cron.New(cron.WithLocation(w.clock.Location()))
	if _, err := c.AddFunc(spec, job); err != nil {
		w.log.Warn("announcements.worker: failed to schedule with provided cron spec; falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New(cron.WithLocation(w.clock.Location()))
		_, _ = c.AddFunc(fallbackCronSpec, job)
	}
	c.Start()
	w.cron = c

	w.log.Info("announcements.worker: started", zap.String(constvars.LoggingCronSpecKey, spec))
}

// Stop cancels in-flight runs and waits for them to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) lockTTL() time.Duration {
	ttl := time.Duration(w.cfg.Announcement.LockTTLInSeconds) * time.Second
	if ttl <= 0 {
		return defaultLockTTL
	}
	return ttl
}

// runKey names the run lock of the business day now falls on.
func (w *Worker) runKey() string {
	return fmt.Sprintf(constvars.RedisKeyAnnouncementRunFormat, w.clock.Now().Format(runDateLayout))
}

func (w *Worker) runOnce(ctx context.Context) (err error) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())
	requestID := utils.GetRequestID(ctx)

	key := w.runKey()
	acquired, token, err := w.locker.TryLock(ctx, key, w.lockTTL())
	if err != nil {
		return err
	}
	if !acquired {
		w.log.Info("announcements.worker: run lock not acquired; the day is handled by another instance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}
	defer func() {
		if err == nil {
			return
		}
		if unlockErr := w.locker.Unlock(context.WithoutCancel(ctx), key, token); unlockErr != nil {
			w.log.Warn("announcements.worker: unlock after failed run failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(unlockErr),
			)
		}
	}()

	closures, err := w.banners.UpcomingClosures(ctx)
	if err != nil {
		return err
	}
	if len(closures) == 0 {
		w.log.Info("announcements.worker: no upcoming closures",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	banner, err := w.banners.RenderBanner(ctx, closures)
	if err != nil {
		return err
	}

	announcement := &models.Announcement{
		ID:          uuid.NewString(),
		GeneratedAt: w.clock.Now(),
		Closures:    closures,
		Banner:      banner,
	}
	err = utils.LogOperation(ctx, w.log, "announcements.worker.publish", func() error {
		return w.publisher.PublishAnnouncement(ctx, announcement)
	})
	if err != nil {
		return err
	}

	w.log.Info("announcements.worker: announcement published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, announcement.ID),
		zap.Int(constvars.LoggingClosureCountKey, len(closures)),
	)
	return nil
}
