package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/pkg/jobs"
	"github.com/noah-isme/pta-api/pkg/mail"
)

type queueStub struct {
	jobs []jobs.Job
	err  error
}

func (q *queueStub) Enqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type mailerStub struct {
	sent chan mail.Message
	err  error
}

func (m *mailerStub) Send(ctx context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent <- msg
	return nil
}

func TestNotifyAnnouncementEnqueuesJob(t *testing.T) {
	queue := &queueStub{}
	svc := NewNotificationService(queue, zap.NewNop())
	announcement := models.AnnouncementDetail{Announcement: models.Announcement{ID: "a1", SubjectID: "s1", Title: "Quiz"}, SubjectName: "Math"}

	require.NoError(t, svc.NotifyAnnouncement(context.Background(), announcement))
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, JobTypeAnnouncementNotify, queue.jobs[0].Type)
	assert.Equal(t, announcement, queue.jobs[0].Payload)

	queue.err = jobs.ErrQueueFull
	assert.ErrorIs(t, svc.NotifyAnnouncement(context.Background(), announcement), jobs.ErrQueueFull)
}

func TestNotificationWorkerMailsEnrolledStudents(t *testing.T) {
	store := newMemoryStore()
	teacher := store.addUser("tina", models.RoleTeacher)
	pia := store.addUser("pia", models.RoleStudent)
	sam := store.addUser("sam", models.RoleStudent)
	store.addUser("oscar", models.RoleStudent)
	math := store.addSubject("Math", teacher.ID)
	store.enroll(pia.ID, math.ID)
	store.enroll(sam.ID, math.ID)
	mailer := &mailerStub{sent: make(chan mail.Message, 1)}
	worker := NewNotificationWorker(userRepoStub{store}, mailer, NewMetricsService(), zap.NewNop())

	announcement := models.AnnouncementDetail{Announcement: models.Announcement{ID: "a1", SubjectID: math.ID, Title: "Quiz", Content: "Friday"}, SubjectName: "Math"}
	require.NoError(t, worker.Handle(context.Background(), jobs.Job{ID: "a1", Type: JobTypeAnnouncementNotify, Payload: announcement}))

	msg := <-mailer.sent
	assert.Equal(t, "Math: Quiz", msg.Subject)
	assert.Equal(t, "Friday", msg.Text)
	assert.Equal(t, []mail.Address{{Name: "pia", Email: "pia@example.com"}, {Name: "sam", Email: "sam@example.com"}}, msg.Bcc)
}

func TestNotificationWorkerSkipsAndFails(t *testing.T) {
	store := newMemoryStore()
	teacher := store.addUser("tina", models.RoleTeacher)
	math := store.addSubject("Math", teacher.ID)
	mailer := &mailerStub{sent: make(chan mail.Message, 1)}
	worker := NewNotificationWorker(userRepoStub{store}, mailer, nil, nil)
	announcement := models.AnnouncementDetail{Announcement: models.Announcement{ID: "a1", SubjectID: math.ID}}
	job := jobs.Job{Type: JobTypeAnnouncementNotify, Payload: announcement}

	require.NoError(t, worker.Handle(context.Background(), job))
	assert.Empty(t, mailer.sent)

	require.NoError(t, worker.Handle(context.Background(), jobs.Job{Type: "other"}))
	require.NoError(t, worker.Handle(context.Background(), jobs.Job{Type: JobTypeAnnouncementNotify, Payload: "garbage"}))

	store.enroll(store.addUser("sam", models.RoleStudent).ID, math.ID)
	mailer.err = errors.New("smtp down")
	assert.Error(t, worker.Handle(context.Background(), job))
}

func TestNotificationPipelineThroughQueue(t *testing.T) {
	store := newMemoryStore()
	teacher := store.addUser("tina", models.RoleTeacher)
	student := store.addUser("sam", models.RoleStudent)
	math := store.addSubject("Math", teacher.ID)
	store.enroll(student.ID, math.ID)
	mailer := &mailerStub{sent: make(chan mail.Message, 1)}
	worker := NewNotificationWorker(userRepoStub{store}, mailer, nil, nil)

	queue := jobs.NewQueue("notifications", worker.Handle, jobs.QueueConfig{Workers: 1})
	queue.Start(context.Background())
	defer queue.Stop()

	announcements := NewAnnouncementService(announcementRepoStub{store}, subjectRepoStub{store}, NewNotificationService(queue, nil), nil, nil, nil)
	_, err := announcements.Post(context.Background(), PostAnnouncementRequest{SubjectID: math.ID, TeacherID: teacher.ID, Title: "Quiz", Content: "Friday"})
	require.NoError(t, err)

	select {
	case msg := <-mailer.sent:
		assert.Equal(t, "Math: Quiz", msg.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not delivered")
	}
}
