package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/repository"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type enrollmentKey struct {
	studentID string
	subjectID string
}

// memoryStore is an in-memory stand-in for the Postgres schema.
type memoryStore struct {
	users         map[string]*models.User
	subjects      map[string]*models.Subject
	enrollments   map[enrollmentKey]time.Time
	announcements []models.Announcement
	messages      []models.Message
	details       []models.StudentDetail

	clock   time.Time
	nextID  int64
	failErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       make(map[string]*models.User),
		subjects:    make(map[string]*models.Subject),
		enrollments: make(map[enrollmentKey]time.Time),
		clock:       time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memoryStore) addUser(name string, role models.UserRole) *models.User {
	user := &models.User{ID: uuid.NewString(), FullName: name, Email: name + "@example.com", Role: role}
	m.users[user.ID] = user
	return user
}

func (m *memoryStore) addSubject(name, teacherID string) *models.Subject {
	subject := &models.Subject{ID: uuid.NewString(), Name: name, TeacherID: teacherID, CreatedAt: m.tick()}
	m.subjects[subject.ID] = subject
	return subject
}

func (m *memoryStore) enroll(studentID, subjectID string) {
	m.enrollments[enrollmentKey{studentID, subjectID}] = m.tick()
}

type userRepoStub struct{ store *memoryStore }

func (r userRepoStub) FindByID(ctx context.Context, id string) (*models.User, error) {
	if r.store.failErr != nil {
		return nil, r.store.failErr
	}
	user, ok := r.store.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r userRepoStub) ListEmailsBySubject(ctx context.Context, subjectID string) ([]models.UserInfo, error) {
	if r.store.failErr != nil {
		return nil, r.store.failErr
	}
	var out []models.UserInfo
	for key := range r.store.enrollments {
		if key.subjectID == subjectID {
			out = append(out, r.store.users[key.studentID].Info())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type subjectRepoStub struct{ store *memoryStore }

func (r subjectRepoStub) FindByID(ctx context.Context, id string) (*models.Subject, error) {
	subject, ok := r.store.subjects[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *subject
	return &clone, nil
}

func (r subjectRepoStub) Create(ctx context.Context, subject *models.Subject) error {
	if r.store.failErr != nil {
		return r.store.failErr
	}
	subject.ID = uuid.NewString()
	subject.CreatedAt = r.store.tick()
	clone := *subject
	r.store.subjects[subject.ID] = &clone
	return nil
}

func (r subjectRepoStub) ListByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error) {
	out := []models.Subject{}
	for _, subject := range r.store.subjects {
		if subject.TeacherID == teacherID {
			out = append(out, *subject)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r subjectRepoStub) ListByStudent(ctx context.Context, studentID string) ([]models.SubjectWithTeacher, error) {
	if r.store.failErr != nil {
		return nil, r.store.failErr
	}
	out := []models.SubjectWithTeacher{}
	for key := range r.store.enrollments {
		if key.studentID != studentID {
			continue
		}
		subject := r.store.subjects[key.subjectID]
		teacher := r.store.users[subject.TeacherID]
		out = append(out, models.SubjectWithTeacher{Subject: *subject, TeacherName: teacher.FullName, TeacherEmail: teacher.Email})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type enrollmentRepoStub struct {
	store *memoryStore
	// skipExists simulates a concurrent insert slipping past the pre-check.
	skipExists bool
}

func (r enrollmentRepoStub) Exists(ctx context.Context, studentID, subjectID string) (bool, error) {
	if r.skipExists {
		return false, nil
	}
	_, ok := r.store.enrollments[enrollmentKey{studentID, subjectID}]
	return ok, nil
}

func (r enrollmentRepoStub) Create(ctx context.Context, enrollment *models.Enrollment) error {
	key := enrollmentKey{enrollment.StudentID, enrollment.SubjectID}
	if _, ok := r.store.enrollments[key]; ok {
		return repository.ErrDuplicate
	}
	enrollment.CreatedAt = r.store.tick()
	r.store.enrollments[key] = enrollment.CreatedAt
	return nil
}

func (r enrollmentRepoStub) Delete(ctx context.Context, studentID, subjectID string) error {
	key := enrollmentKey{studentID, subjectID}
	if _, ok := r.store.enrollments[key]; !ok {
		return sql.ErrNoRows
	}
	delete(r.store.enrollments, key)
	return nil
}

func (r enrollmentRepoStub) ListStudentsByTeacher(ctx context.Context, teacherID string) ([]models.UserInfo, error) {
	seen := make(map[string]bool)
	out := []models.UserInfo{}
	for key := range r.store.enrollments {
		if r.store.subjects[key.subjectID].TeacherID != teacherID || seen[key.studentID] {
			continue
		}
		seen[key.studentID] = true
		out = append(out, r.store.users[key.studentID].Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r enrollmentRepoStub) ListTeachersByStudent(ctx context.Context, studentID string) ([]models.UserInfo, error) {
	seen := make(map[string]bool)
	out := []models.UserInfo{}
	for key := range r.store.enrollments {
		if key.studentID != studentID {
			continue
		}
		teacherID := r.store.subjects[key.subjectID].TeacherID
		if seen[teacherID] {
			continue
		}
		seen[teacherID] = true
		out = append(out, r.store.users[teacherID].Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type announcementRepoStub struct{ store *memoryStore }

func (r announcementRepoStub) Create(ctx context.Context, announcement *models.Announcement) error {
	if r.store.failErr != nil {
		return r.store.failErr
	}
	announcement.ID = uuid.NewString()
	announcement.CreatedAt = r.store.tick()
	r.store.announcements = append(r.store.announcements, *announcement)
	return nil
}

func (r announcementRepoStub) list(keep func(models.Announcement) bool) []models.AnnouncementDetail {
	out := []models.AnnouncementDetail{}
	for _, a := range r.store.announcements {
		if keep(a) {
			out = append(out, models.AnnouncementDetail{Announcement: a, SubjectName: r.store.subjects[a.SubjectID].Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r announcementRepoStub) ListForStudent(ctx context.Context, studentID string) ([]models.AnnouncementDetail, error) {
	if r.store.failErr != nil {
		return nil, r.store.failErr
	}
	return r.list(func(a models.Announcement) bool {
		_, ok := r.store.enrollments[enrollmentKey{studentID, a.SubjectID}]
		return ok
	}), nil
}

func (r announcementRepoStub) ListForTeacher(ctx context.Context, teacherID string) ([]models.AnnouncementDetail, error) {
	return r.list(func(a models.Announcement) bool { return a.TeacherID == teacherID }), nil
}

func (r announcementRepoStub) CountForStudent(ctx context.Context, studentID string) (int, error) {
	items, err := r.ListForStudent(ctx, studentID)
	return len(items), err
}

type messageRepoStub struct{ store *memoryStore }

func (r messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	message.ID = uuid.NewString()
	message.CreatedAt = r.store.tick()
	r.store.messages = append(r.store.messages, *message)
	return nil
}

func (r messageRepoStub) Conversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	out := []models.Message{}
	for _, msg := range r.store.messages {
		if (msg.SenderID == userA && msg.ReceiverID == userB) || (msg.SenderID == userB && msg.ReceiverID == userA) {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type detailRepoStub struct{ store *memoryStore }

func (r detailRepoStub) Insert(ctx context.Context, detail *models.StudentDetail) error {
	if r.store.failErr != nil {
		return r.store.failErr
	}
	r.store.nextID++
	detail.ID = r.store.nextID
	detail.CreatedAt = r.store.tick()
	r.store.details = append(r.store.details, *detail)
	return nil
}

func (r detailRepoStub) Latest(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	var latest *models.StudentDetail
	for i := range r.store.details {
		d := r.store.details[i]
		if d.StudentID == studentID && (latest == nil || d.ID > latest.ID) {
			latest = &d
		}
	}
	return latest, nil
}

// cacheRepoStub is an in-memory CacheRepository.
type cacheRepoStub struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
}

func newCacheRepoStub() *cacheRepoStub {
	return &cacheRepoStub{entries: make(map[string][]byte)}
}

func (c *cacheRepoStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *cacheRepoStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *cacheRepoStub) DeleteByPattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *cacheRepoStub) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
