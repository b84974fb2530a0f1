package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// memCache is an in-memory cache.Cache without expiry, good enough for
// exercising SetNX semantics and leaderboard caching in tests.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = stringify(value)
	return nil
}

func (m *memCache) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	m.data[key] = stringify(value)
	return true, nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// fakeUserRepo is an in-memory db.UserRepository.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.ID]; exists {
		return db.ErrAlreadyExists
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, exists := r.users[user.ID]; !exists {
		return db.ErrNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID string) error {
	if _, exists := r.users[userID]; !exists {
		return db.ErrNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) ListTopByPoints(_ context.Context, limit int) ([]*models.User, error) {
	all := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LeaderboardPoints > all[j].LeaderboardPoints })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// fakeInterviewRepo is an in-memory db.InterviewRepository.
type fakeInterviewRepo struct {
	interviews map[string]*models.Interview
	answers    map[string]map[int]*models.SubmittedAnswer
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{
		interviews: make(map[string]*models.Interview),
		answers:    make(map[string]map[int]*models.SubmittedAnswer),
	}
}

func (r *fakeInterviewRepo) Create(_ context.Context, interview *models.Interview) error {
	if _, exists := r.interviews[interview.ID]; exists {
		return db.ErrAlreadyExists
	}
	r.interviews[interview.ID] = interview
	return nil
}

func (r *fakeInterviewRepo) GetByID(_ context.Context, interviewID string) (*models.Interview, error) {
	iv, ok := r.interviews[interviewID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return iv, nil
}

func (r *fakeInterviewRepo) ListByOwner(_ context.Context, ownerID string) ([]*models.Interview, error) {
	var out []*models.Interview
	for _, iv := range r.interviews {
		if iv.OwnerID == ownerID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) SetStatus(_ context.Context, interviewID, status string) error {
	iv, ok := r.interviews[interviewID]
	if !ok {
		return db.ErrNotFound
	}
	iv.Status = status
	return nil
}

func (r *fakeInterviewRepo) SaveAnswer(_ context.Context, answer *models.SubmittedAnswer) error {
	byIndex, ok := r.answers[answer.InterviewID]
	if !ok {
		byIndex = make(map[int]*models.SubmittedAnswer)
		r.answers[answer.InterviewID] = byIndex
	}
	byIndex[answer.QuestionIndex] = answer
	return nil
}

func (r *fakeInterviewRepo) ListAnswers(_ context.Context, interviewID string) ([]*models.SubmittedAnswer, error) {
	byIndex := r.answers[interviewID]
	indexes := make([]int, 0, len(byIndex))
	for i := range byIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	out := make([]*models.SubmittedAnswer, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, byIndex[i])
	}
	return out, nil
}

// fakeReportRepo is an in-memory db.ReportRepository.
type fakeReportRepo struct {
	reports map[string]*models.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*models.Report)}
}

func (r *fakeReportRepo) Set(_ context.Context, report *models.Report) error {
	r.reports[report.InterviewID] = report
	return nil
}

func (r *fakeReportRepo) GetByInterviewID(_ context.Context, interviewID string) (*models.Report, error) {
	rep, ok := r.reports[interviewID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return rep, nil
}

func (r *fakeReportRepo) ListByOwner(_ context.Context, ownerID string) ([]*models.Report, error) {
	var out []*models.Report
	for _, rep := range r.reports {
		if rep.OwnerID == ownerID {
			out = append(out, rep)
		}
	}
	return out, nil
}

// fakeMockRepo is an in-memory db.MockInterviewRepository.
type fakeMockRepo struct {
	mocks []*models.MockInterview
}

func (r *fakeMockRepo) Create(_ context.Context, mock *models.MockInterview) error {
	r.mocks = append(r.mocks, mock)
	return nil
}

func (r *fakeMockRepo) List(_ context.Context, upcomingOnly bool) ([]*models.MockInterview, error) {
	now := time.Now().UTC()
	var out []*models.MockInterview
	for _, m := range r.mocks {
		if upcomingOnly && m.ScheduledAt.Before(now) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// fakeCommunityRepo is an in-memory db.CommunityRepository.
type fakeCommunityRepo struct {
	questions map[string]*models.CommunityQuestion
}

func newFakeCommunityRepo() *fakeCommunityRepo {
	return &fakeCommunityRepo{questions: make(map[string]*models.CommunityQuestion)}
}

func (r *fakeCommunityRepo) Create(_ context.Context, question *models.CommunityQuestion) error {
	r.questions[question.ID] = question
	return nil
}

func (r *fakeCommunityRepo) GetByID(_ context.Context, questionID string) (*models.CommunityQuestion, error) {
	q, ok := r.questions[questionID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return q, nil
}

func (r *fakeCommunityRepo) List(_ context.Context) ([]*models.CommunityQuestion, error) {
	out := make([]*models.CommunityQuestion, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCommunityRepo) AppendAnswer(_ context.Context, questionID string, answer models.CommunityAnswer) error {
	q, ok := r.questions[questionID]
	if !ok {
		return db.ErrNotFound
	}
	q.Answers = append(q.Answers, answer)
	return nil
}

// fakeContactRepo is an in-memory db.ContactRepository.
type fakeContactRepo struct {
	messages []*models.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, msg *models.ContactMessage) error {
	r.messages = append(r.messages, msg)
	return nil
}

// fakeMailer records sent mail and can be made to fail.
type fakeMailer struct {
	sent    []string // "to|subject"
	failing bool
}

func (m *fakeMailer) Send(to, _, subject, _ string) error {
	if m.failing {
		return fmt.Errorf("smtp unreachable")
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

// fakeQueue records published event bodies per queue.
type fakeQueue struct {
	published map[string][][]byte
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{published: make(map[string][][]byte)}
}

func (q *fakeQueue) Publish(queueName string, body []byte) error {
	q.published[queueName] = append(q.published[queueName], body)
	return nil
}

func (q *fakeQueue) Consume(string, func(body []byte)) error { return nil }

func (q *fakeQueue) Close() error { return nil }

// fakeIdentityDeleter records deleted identity-provider UIDs.
type fakeIdentityDeleter struct {
	deleted []string
}

func (d *fakeIdentityDeleter) DeleteUser(_ context.Context, uid string) error {
	d.deleted = append(d.deleted, uid)
	return nil
}
