package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/echolabs-dev/echo-api/internal/domain/contract"
	"github.com/echolabs-dev/echo-api/internal/domain/entity"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

// fakeUserRepo is an in-memory IUserRepository. Users are stored and
// returned as copies so callers mutating results cannot bypass the
// repository methods.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.Verification != nil {
		v := *u.Verification
		c.Verification = &v
	}
	return &c
}

func (f *fakeUserRepo) add(u *entity.User) {
	f.users[u.ID] = cloneUser(u)
}

func (f *fakeUserRepo) get(id string) *entity.User {
	return f.users[id]
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return entity.ErrDuplicateIdentity
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByLogin(ctx context.Context, login string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Verification != nil && u.Verification.Token == token {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) SetVerificationToken(ctx context.Context, userID string, v *entity.PendingVerification) error {
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	pv := *v
	u.Verification = &pv
	return nil
}

func (f *fakeUserRepo) MarkEmailVerified(ctx context.Context, userID string) error {
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.EmailVerified = true
	u.Verification = nil
	return nil
}

type sentMail struct {
	To  string
	URL string
}

// fakeMailer records outbound mail instead of sending it.
type fakeMailer struct {
	sent     []sentMail
	failSend bool
}

var _ contract.IMailService = (*fakeMailer)(nil)

func (f *fakeMailer) SendVerificationEmail(ctx context.Context, to, displayName, verificationURL string) error {
	if f.failSend {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, sentMail{To: to, URL: verificationURL})
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(ctx context.Context, to, displayName, resetURL string) error {
	if f.failSend {
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, sentMail{To: to, URL: resetURL})
	return nil
}

// seqRandom hands out deterministic tokens so tests can follow reissues.
type seqRandom struct {
	n int
}

var _ contract.IRandomGenerator = (*seqRandom)(nil)

func (s *seqRandom) GenerateRandomToken(n int) (string, error) {
	s.n++
	return fmt.Sprintf("token-%02d", s.n), nil
}

type testConfig struct {
	baseURL   string
	verifyTTL time.Duration
	accessTTL time.Duration
}

var _ usecasecontract.IConfigProvider = (*testConfig)(nil)

func newTestConfig() *testConfig {
	return &testConfig{
		baseURL:   "http://localhost:3000",
		verifyTTL: 24 * time.Hour,
		accessTTL: 168 * time.Hour,
	}
}

func (c *testConfig) GetAppBaseURL() string                          { return c.baseURL }
func (c *testConfig) GetAccessTokenExpiry() time.Duration            { return c.accessTTL }
func (c *testConfig) GetEmailVerificationTokenExpiry() time.Duration { return c.verifyTTL }

type nopLogger struct{}

var _ usecasecontract.IAppLogger = (*nopLogger)(nil)

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type fakeValidator struct{}

var _ usecasecontract.IValidator = (*fakeValidator)(nil)

func (fakeValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

type seqUUID struct {
	n int
}

var _ contract.IUUIDGenerator = (*seqUUID)(nil)

func (s *seqUUID) NewUUID() string {
	s.n++
	return fmt.Sprintf("uuid-%02d", s.n)
}
