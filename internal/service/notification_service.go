package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/pkg/jobs"
	"github.com/noah-isme/pta-api/pkg/mail"
)

// JobTypeAnnouncementNotify identifies announcement fan-out jobs.
const JobTypeAnnouncementNotify = "announcement.notify"

type jobDispatcher interface {
	Enqueue(job jobs.Job) error
}

type recipientRepository interface {
	ListEmailsBySubject(ctx context.Context, subjectID string) ([]models.UserInfo, error)
}

// NotificationService queues announcement notifications.
type NotificationService struct {
	queue  jobDispatcher
	logger *zap.Logger
}

// NewNotificationService constructs the dispatcher side of notifications.
func NewNotificationService(queue jobDispatcher, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{queue: queue, logger: logger}
}

// NotifyAnnouncement enqueues delivery of the announcement to enrolled students.
func (s *NotificationService) NotifyAnnouncement(ctx context.Context, announcement models.AnnouncementDetail) error {
	if err := s.queue.Enqueue(jobs.Job{ID: announcement.ID, Type: JobTypeAnnouncementNotify, Payload: announcement}); err != nil {
		return fmt.Errorf("enqueue announcement notification: %w", err)
	}
	s.logger.Debug("announcement notification queued", zap.String("announcement_id", announcement.ID))
	return nil
}

// NotificationWorker delivers queued announcement notifications by e-mail.
type NotificationWorker struct {
	recipients recipientRepository
	mailer     mail.Mailer
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewNotificationWorker constructs a worker.
func NewNotificationWorker(recipients recipientRepository, mailer mail.Mailer, metrics *MetricsService, logger *zap.Logger) *NotificationWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationWorker{recipients: recipients, mailer: mailer, metrics: metrics, logger: logger}
}

// Handle processes a queue job. Returned errors are retried by the queue.
func (w *NotificationWorker) Handle(ctx context.Context, job jobs.Job) error {
	if job.Type != JobTypeAnnouncementNotify {
		w.logger.Sugar().Warnw("dropping unknown notification job", "job_id", job.ID, "type", job.Type)
		w.metrics.RecordNotification("skipped")
		return nil
	}
	announcement, ok := job.Payload.(models.AnnouncementDetail)
	if !ok {
		w.logger.Sugar().Warnw("dropping malformed notification job", "job_id", job.ID)
		w.metrics.RecordNotification("skipped")
		return nil
	}

	students, err := w.recipients.ListEmailsBySubject(ctx, announcement.SubjectID)
	if err != nil {
		w.metrics.RecordNotification("failed")
		return err
	}
	msg := announcementMessage(announcement, students)
	if !msg.HasRecipients() {
		w.metrics.RecordNotification("skipped")
		return nil
	}
	if err := w.mailer.Send(ctx, msg); err != nil {
		w.metrics.RecordNotification("failed")
		return err
	}
	w.metrics.RecordNotification("sent")
	w.logger.Info("announcement notification sent",
		zap.String("announcement_id", announcement.ID),
		zap.Int("recipients", len(msg.Bcc)),
		zap.Int("attempt", job.Attempt),
	)
	return nil
}

func announcementMessage(announcement models.AnnouncementDetail, students []models.UserInfo) mail.Message {
	msg := mail.Message{
		Subject: fmt.Sprintf("%s: %s", announcement.SubjectName, announcement.Title),
		Text:    announcement.Content,
	}
	for _, student := range students {
		if student.Email == "" {
			continue
		}
		msg.Bcc = append(msg.Bcc, mail.Address{Name: student.Name, Email: student.Email})
	}
	return msg
}
