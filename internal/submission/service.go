package submission

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
	"github.com/brettwhite-git/suiteprompt/internal/ghrepo"
	"github.com/brettwhite-git/suiteprompt/internal/taxonomy"
)

// ErrCaptchaFailed marks a submission rejected by CAPTCHA verification. It
// is reported to the caller before any external side effect happens.
var ErrCaptchaFailed = errors.New("submission: CAPTCHA verification failed")

// Repo creates the reviewable pull request for a normalized submission.
type Repo interface {
	CreateSubmissionPR(ctx context.Context, prompt catalog.Prompt, submitterName string) (*ghrepo.PullRequest, error)
}

// Verifier checks a CAPTCHA token.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// Mailer sends the best-effort confirmation email.
type Mailer interface {
	SendConfirmation(ctx context.Context, to, promptTitle, prURL string, prNumber int) error
}

// Service runs the submission pipeline: validate, verify CAPTCHA, normalize,
// open a pull request, then notify the submitter. Steps are strictly
// sequential and nothing is retried; a failed email send is logged and
// swallowed because the pull request already exists.
type Service struct {
	repo    Repo
	captcha Verifier
	mailer  Mailer
	tax     *taxonomy.Taxonomy
	now     func() time.Time
	newID   func() (string, error)
}

// NewService wires the pipeline's collaborators.
func NewService(repo Repo, captcha Verifier, mailer Mailer, tax *taxonomy.Taxonomy) *Service {
	return &Service{
		repo:    repo,
		captcha: captcha,
		mailer:  mailer,
		tax:     tax,
		now:     time.Now,
		newID:   NewID,
	}
}

// Submit runs one submission end to end and returns the created pull
// request. Validation failures come back as *ValidationError and CAPTCHA
// rejections as ErrCaptchaFailed; anything else is an upstream failure.
func (s *Service) Submit(ctx context.Context, req *Request) (*Result, error) {
	if s == nil || s.repo == nil || s.captcha == nil {
		return nil, errors.New("submission: service not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if verr := Validate(req, s.tax); verr != nil {
		return nil, verr
	}

	ok, err := s.captcha.Verify(ctx, req.TurnstileToken)
	if err != nil {
		log.Printf("submission: captcha verification error: %v", err)
		return nil, ErrCaptchaFailed
	}
	if !ok {
		return nil, ErrCaptchaFailed
	}

	req.Sanitize()

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	prompt := AsPrompt(req, id, s.now())

	pr, err := s.repo.CreateSubmissionPR(ctx, prompt, req.SubmitterName)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendConfirmation(ctx, req.SubmitterEmail, prompt.Title, pr.URL, pr.Number); err != nil {
			log.Printf("submission: confirmation email for %s failed: %v", id, err)
		}
	}

	return &Result{ID: id, PRURL: pr.URL, PRNumber: pr.Number}, nil
}
