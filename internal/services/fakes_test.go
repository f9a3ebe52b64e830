package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// The fakes below are in-memory repositories that honor the same contracts as
// the GORM implementations, including the duplicate-key behavior of the
// (job_id, applicant_id) unique index. Tests run against them without a DB.

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Now().Add(-time.Hour)}
}

// tick returns strictly increasing timestamps so created_at ordering
// is deterministic.
func (c *clock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUserRepo struct {
	mu     sync.Mutex
	clock  *clock
	users  map[string]*models.User
	tokens map[string]*models.RefreshToken
}

func newFakeUserRepo(clk *clock) *fakeUserRepo {
	return &fakeUserRepo{
		clock:  clk,
		users:  make(map[string]*models.User),
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == emailAddr {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = r.clock.tick()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountCreatedSince(since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeUserRepo) FindRefreshToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, repositories.ErrRefreshTokenNotFound
}

func (r *fakeUserRepo) DeleteRefreshToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *fakeUserRepo) DeleteUserRefreshTokens(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	mu        sync.Mutex
	seekers   map[string]*models.JobSeekerProfile
	employers map[string]*models.EmployerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		seekers:   make(map[string]*models.JobSeekerProfile),
		employers: make(map[string]*models.EmployerProfile),
	}
}

func (r *fakeProfileRepo) CreateJobSeekerProfile(profile *models.JobSeekerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.seekers[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) CreateEmployerProfile(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	cp := *profile
	r.employers[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) FindJobSeekerByUserID(userID string) (*models.JobSeekerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.seekers[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.employers[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpdateJobSeekerProfile(profile *models.JobSeekerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.seekers[profile.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) UpdateEmployerProfile(profile *models.EmployerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.employers[profile.UserID] = &cp
	return nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	clock    *clock
	userRepo *fakeUserRepo
	jobs     map[string]*models.Job
	saved    map[string]*models.SavedJob // keyed by userID + "|" + jobID
}

func newFakeJobRepo(clk *clock, userRepo *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{
		clock:    clk,
		userRepo: userRepo,
		jobs:     make(map[string]*models.Job),
		saved:    make(map[string]*models.SavedJob),
	}
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = r.clock.tick()
	cp := *job
	cp.PostedBy = nil
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return r.withPoster(j), nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	cp.PostedBy = nil
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) FindWithFilter(filter repositories.JobFilter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := r.filtered(filter)
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, filter.Limit, filter.Offset), nil
}

func (r *fakeJobRepo) CountWithFilter(filter repositories.JobFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeJobRepo) filtered(filter repositories.JobFilter) []models.Job {
	var matched []models.Job
	for _, j := range r.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(j.Title), s) &&
				!strings.Contains(strings.ToLower(j.Description), s) &&
				!strings.Contains(strings.ToLower(j.Category), s) {
				continue
			}
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		if filter.IsInternship != nil && j.IsInternship != *filter.IsInternship {
			continue
		}
		if filter.Remote != nil && j.Remote != *filter.Remote {
			continue
		}
		if filter.SalaryMin != nil && (j.SalaryMax == nil || *j.SalaryMax < *filter.SalaryMin) {
			continue
		}
		if filter.SalaryMax != nil && (j.SalaryMin == nil || *j.SalaryMin > *filter.SalaryMax) {
			continue
		}
		matched = append(matched, *r.withPoster(j))
	}
	return matched
}

func (r *fakeJobRepo) FindAll(limit, offset int) ([]models.Job, error) {
	return r.FindWithFilter(repositories.JobFilter{Limit: limit, Offset: offset})
}

func (r *fakeJobRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.jobs)), nil
}

func (r *fakeJobRepo) CountByStatus(status models.JobStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) CountInternships() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.IsInternship {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) CountCreatedSince(since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.jobs {
		if j.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeJobRepo) TopCategories(limit int) ([]repositories.CategoryCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, j := range r.jobs {
		counts[j.Category]++
	}
	result := make([]repositories.CategoryCount, 0, len(counts))
	for c, n := range counts {
		result = append(result, repositories.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Count > result[j].Count })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeJobRepo) SaveJob(saved *models.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	saved.CreatedAt = r.clock.tick()
	cp := *saved
	cp.Job = nil
	r.saved[saved.UserID+"|"+saved.JobID] = &cp
	return nil
}

func (r *fakeJobRepo) IsJobSaved(userID, jobID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.saved[userID+"|"+jobID]
	return ok, nil
}

func (r *fakeJobRepo) UnsaveJob(userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userID + "|" + jobID
	if _, ok := r.saved[key]; !ok {
		return repositories.ErrSavedJobNotFound
	}
	delete(r.saved, key)
	return nil
}

func (r *fakeJobRepo) FindSavedByUser(userID string) ([]models.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.SavedJob
	for _, s := range r.saved {
		if s.UserID != userID {
			continue
		}
		cp := *s
		if j, ok := r.jobs[s.JobID]; ok {
			cp.Job = r.withPoster(j)
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

// withPoster emulates the PostedBy preload. Callers must hold r.mu.
func (r *fakeJobRepo) withPoster(j *models.Job) *models.Job {
	cp := *j
	if u, err := r.userRepo.FindByID(j.PostedByID); err == nil {
		cp.PostedBy = u
	}
	return &cp
}

type fakeApplicationRepo struct {
	mu       sync.Mutex
	clock    *clock
	jobRepo  *fakeJobRepo
	userRepo *fakeUserRepo
	apps     map[string]*models.Application
}

func newFakeApplicationRepo(clk *clock, jobRepo *fakeJobRepo, userRepo *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		clock:    clk,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		apps:     make(map[string]*models.Application),
	}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = r.clock.tick()
	cp := *app
	cp.Job = nil
	cp.Applicant = nil
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return r.withRelations(a), nil
}

func (r *fakeApplicationRepo) Update(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	cp := *app
	cp.Job = nil
	cp.Applicant = nil
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) ExistsForJobAndApplicant(jobID, applicantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool { return a.ApplicantID == applicantID })
}

func (r *fakeApplicationRepo) FindByJobOwner(ownerID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool {
		j, err := r.jobRepo.FindByID(a.JobID)
		return err == nil && j.PostedByID == ownerID
	})
}

func (r *fakeApplicationRepo) FindByJob(jobID string) ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool { return a.JobID == jobID })
}

func (r *fakeApplicationRepo) FindAll() ([]models.Application, error) {
	return r.findWhere(func(a *models.Application) bool { return true })
}

func (r *fakeApplicationRepo) findWhere(match func(*models.Application) bool) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Application
	for _, a := range r.apps {
		if match(a) {
			result = append(result, *r.withRelations(a))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (r *fakeApplicationRepo) CountAll() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.apps)), nil
}

func (r *fakeApplicationRepo) CountByStatus(status models.ApplicationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountByJob(jobID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountCreatedSince(since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.apps {
		if a.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

// withRelations emulates the Job/Applicant preloads. Callers must hold r.mu.
func (r *fakeApplicationRepo) withRelations(a *models.Application) *models.Application {
	cp := *a
	if j, err := r.jobRepo.FindByID(a.JobID); err == nil {
		cp.Job = j
	}
	if u, err := r.userRepo.FindByID(a.ApplicantID); err == nil {
		cp.Applicant = u
	}
	return &cp
}

// recordingNotifier captures every notification instead of sending it.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []*email.Email
	fail bool
}

func (n *recordingNotifier) Send(e *email.Email) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errSMTPDown
	}
	n.sent = append(n.sent, e)
	return nil
}

func (n *recordingNotifier) SendApplicationSubmitted(to, jobTitle string) error {
	return n.Send(&email.Email{To: []string{to}, Subject: "Application Submitted: " + jobTitle})
}

func (n *recordingNotifier) SendApplicationStatusChanged(to, jobTitle, oldStatus, newStatus string) error {
	return n.Send(&email.Email{
		To:      []string{to},
		Subject: "Application Status Updated: " + jobTitle,
		Body:    oldStatus + " -> " + newStatus,
	})
}

func (n *recordingNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

var errSMTPDown = smtpDownError{}

type smtpDownError struct{}

func (smtpDownError) Error() string { return "smtp down" }

func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// fixture wires services over the fakes, mirroring the production container.
type fixture struct {
	users    *fakeUserRepo
	profiles *fakeProfileRepo
	jobs     *fakeJobRepo
	apps     *fakeApplicationRepo
	notifier *recordingNotifier

	auth        AuthService
	profile     ProfileService
	job         JobService
	application ApplicationService
	admin       AdminService
}

func newFixture() *fixture {
	clk := newClock()
	users := newFakeUserRepo(clk)
	profiles := newFakeProfileRepo()
	jobs := newFakeJobRepo(clk, users)
	apps := newFakeApplicationRepo(clk, jobs, users)
	notifier := &recordingNotifier{}

	return &fixture{
		users:       users,
		profiles:    profiles,
		jobs:        jobs,
		apps:        apps,
		notifier:    notifier,
		auth:        NewAuthService(users, profiles, 24*time.Hour),
		profile:     NewProfileService(users, profiles),
		job:         NewJobService(jobs, users, apps),
		application: NewApplicationService(apps, jobs, users, notifier),
		admin:       NewAdminService(users, jobs, apps),
	}
}

func (f *fixture) seedUser(emailAddr, username string, role models.UserRole) *models.User {
	u := &models.User{
		Email:        emailAddr,
		Username:     username,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	if err := f.users.Create(u); err != nil {
		panic(err)
	}
	return u
}

func (f *fixture) seedJob(owner *models.User, title string, status models.JobStatus) *models.Job {
	j := &models.Job{
		Title:       title,
		Description: "desc",
		Category:    "Engineering",
		Location:    "Remote",
		JobType:     models.JobTypeFullTime,
		PostedByID:  owner.ID,
		Status:      status,
	}
	if err := f.jobs.Create(j); err != nil {
		panic(err)
	}
	return j
}
