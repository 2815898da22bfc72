package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/bornholm/zerohost/internal/core/model"
	"github.com/bornholm/zerohost/internal/core/port"
	"github.com/pkg/errors"
)

type scriptedPrompter struct {
	answers map[string][]any
	asked   []port.Question
}

func (p *scriptedPrompter) Ask(ctx context.Context, questions ...port.Question) (port.Answers, error) {
	answers := port.Answers{}

	for _, q := range questions {
		p.asked = append(p.asked, q)

		for {
			queue := p.answers[q.Name]
			if len(queue) == 0 {
				return nil, errors.Errorf("no scripted answer for question '%s'", q.Name)
			}

			answer := queue[0]
			p.answers[q.Name] = queue[1:]

			if str, ok := answer.(string); ok && q.Validate != nil {
				if err := q.Validate(str); err != nil {
					continue
				}
			}

			answers[q.Name] = answer
			break
		}
	}

	return answers, nil
}

func (p *scriptedPrompter) askedNames() []string {
	names := make([]string, 0, len(p.asked))
	for _, q := range p.asked {
		names = append(names, q.Name)
	}
	return names
}

var _ port.Prompter = &scriptedPrompter{}

type dummyShareClient struct {
	apiKey   string
	requests []model.ShareRequest
	share    *model.Share
	err      error
	calls    int

	usage  *model.Usage
	shares []model.Share
	shared *model.SharedContent

	deleted  []model.ShareID
	password string
}

func (c *dummyShareClient) SetAPIKey(apiKey string) { c.apiKey = apiKey }

func (c *dummyShareClient) HasAPIKey() bool { return c.apiKey != "" }

func (c *dummyShareClient) CreateShare(ctx context.Context, req model.ShareRequest) (*model.Share, error) {
	c.calls++
	c.requests = append(c.requests, req)

	if c.err != nil {
		return nil, c.err
	}

	return c.share, nil
}

func (c *dummyShareClient) GetShare(ctx context.Context, id model.ShareID, password string) (*model.SharedContent, error) {
	c.calls++
	c.password = password
	if c.err != nil {
		return nil, c.err
	}
	return c.shared, nil
}

func (c *dummyShareClient) DeleteShare(ctx context.Context, id model.ShareID) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *dummyShareClient) GetUsage(ctx context.Context) (*model.Usage, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.usage, nil
}

func (c *dummyShareClient) GetActiveShares(ctx context.Context) ([]model.Share, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.shares, nil
}

func (c *dummyShareClient) TestConnection(ctx context.Context) error {
	c.calls++
	return c.err
}

var _ port.ShareClient = &dummyShareClient{}

type dummyClipboard struct {
	text string
	err  error
}

func (c *dummyClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type dummyQRCodeRenderer struct {
	content string
}

func (r *dummyQRCodeRenderer) Render(w io.Writer, content string) error {
	r.content = content
	_, err := io.WriteString(w, "[QR]\n")
	return err
}

// chunkedReader emits its first chunk immediately, then the others with a
// delay between each one.
type chunkedReader struct {
	chunks  []string
	delay   time.Duration
	started bool
	mutex   sync.Mutex
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if len(r.chunks) == 0 {
		return 0, io.EOF
	}

	if r.started {
		time.Sleep(r.delay)
	}

	r.started = true

	n := copy(p, r.chunks[0])
	r.chunks = r.chunks[1:]

	return n, nil
}

// blockingReader never returns, like a stdin that is neither a pipe nor a terminal.
type blockingReader struct {
	release chan struct{}
}

func (r *blockingReader) Read(p []byte) (int, error) {
	<-r.release
	return 0, io.EOF
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

type dummyCredentialStore struct {
	apiKey string
}

func (s *dummyCredentialStore) GetAPIKey(ctx context.Context) (string, error) {
	if s.apiKey == "" {
		return "", errors.WithStack(port.ErrNotFound)
	}
	return s.apiKey, nil
}

func (s *dummyCredentialStore) SetAPIKey(ctx context.Context, apiKey string) error {
	s.apiKey = apiKey
	return nil
}

func (s *dummyCredentialStore) DeleteAPIKey(ctx context.Context) error {
	s.apiKey = ""
	return nil
}

func (s *dummyCredentialStore) Location() string {
	return "dummy://"
}

var _ port.CredentialStore = &dummyCredentialStore{}

type dummyUpdateChecker struct {
	release  *model.Release
	err      error
	calls    int
	versions []string
	deadline bool
}

func (c *dummyUpdateChecker) LatestRelease(ctx context.Context, current string) (*model.Release, error) {
	c.calls++
	c.versions = append(c.versions, current)
	_, c.deadline = ctx.Deadline()

	if c.err != nil {
		return nil, c.err
	}

	return c.release, nil
}
