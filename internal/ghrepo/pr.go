package ghrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-github/v66/github"

	"github.com/brettwhite-git/suiteprompt/internal/catalog"
)

const previewLen = 500

var submissionLabels = []string{"prompt-submission", "needs-review"}

// CreateSubmissionPR commits the canonical record to a fresh branch and opens
// a labeled pull request for review. Each step depends on the previous one's
// output; any failure aborts the whole operation and the created branch, if
// any, is left for the reviewer to clean up.
func (c *Client) CreateSubmissionPR(ctx context.Context, prompt catalog.Prompt, submitterName string) (*PullRequest, error) {
	if c == nil || c.gh == nil {
		return nil, errors.New("ghrepo: nil client")
	}
	if ctx == nil {
		return nil, errors.New("ghrepo: nil context")
	}

	ref, _, err := c.gh.Git.GetRef(ctx, c.owner, c.repo, "heads/"+c.baseBranch)
	if err != nil {
		return nil, fmt.Errorf("ghrepo: resolve %s head: %w", c.baseBranch, err)
	}
	baseSHA := ref.GetObject().GetSHA()
	if baseSHA == "" {
		return nil, fmt.Errorf("ghrepo: branch %s has no head commit", c.baseBranch)
	}

	branchName := "submissions/prompt-" + prompt.ID
	_, _, err = c.gh.Git.CreateRef(ctx, c.owner, c.repo, &github.Reference{
		Ref:    github.String("refs/heads/" + branchName),
		Object: &github.GitObject{SHA: github.String(baseSHA)},
	})
	if err != nil {
		return nil, fmt.Errorf("ghrepo: create branch %s: %w", branchName, err)
	}

	record, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ghrepo: encode submission %s: %w", prompt.ID, err)
	}

	filePath := fmt.Sprintf("data/submissions/%s.json", prompt.ID)
	_, _, err = c.gh.Repositories.CreateFile(ctx, c.owner, c.repo, filePath, &github.RepositoryContentFileOptions{
		Message: github.String("Add prompt submission: " + prompt.Title),
		Content: record,
		Branch:  github.String(branchName),
	})
	if err != nil {
		return nil, fmt.Errorf("ghrepo: commit %s: %w", filePath, err)
	}

	pr, _, err := c.gh.PullRequests.Create(ctx, c.owner, c.repo, &github.NewPullRequest{
		Title: github.String("📝 New Prompt: " + prompt.Title),
		Head:  github.String(branchName),
		Base:  github.String(c.baseBranch),
		Body:  github.String(prDescription(prompt, submitterName, filePath)),
	})
	if err != nil {
		return nil, fmt.Errorf("ghrepo: create pull request: %w", err)
	}

	_, _, err = c.gh.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, pr.GetNumber(), submissionLabels)
	if err != nil {
		return nil, fmt.Errorf("ghrepo: label pull request #%d: %w", pr.GetNumber(), err)
	}

	return &PullRequest{URL: pr.GetHTMLURL(), Number: pr.GetNumber()}, nil
}

func prDescription(prompt catalog.Prompt, submitterName, filePath string) string {
	preview := prompt.Content
	ellipsis := ""
	if len(preview) > previewLen {
		preview = preview[:previewLen]
		ellipsis = "..."
	}

	return fmt.Sprintf(`## New Prompt Submission

**Title:** %s

**Description:** %s

**Format:** %s

**Category:** %s

**Submitted by:** %s

---

### Prompt Content Preview

`+"```"+`
%s%s
`+"```"+`

---

### Review Checklist

- [ ] Content is appropriate and follows guidelines
- [ ] No sensitive information included
- [ ] Variables are properly formatted
- [ ] Category and tags are accurate (matches prompt content)
- [ ] Author attribution is correct

---

**Submitted at:** %s

**File:** `+"`%s`"+`

_Note: Submitter was notified via email with a link to track this PR._`,
		prompt.Title,
		prompt.Description,
		prompt.Format,
		prompt.BusinessArea,
		submitterName,
		preview,
		ellipsis,
		time.Now().UTC().Format(time.RFC3339),
		filePath,
	)
}
