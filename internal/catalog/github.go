package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"

	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/output"
)

// searchResultCap is the maximum number of results the search API will page through.
const searchResultCap = 1000

// GitHub lists template repositories owned by one account via the search API.
type GitHub struct {
	client  *github.Client
	owner   string
	perPage int
}

// GitHubOption configures a GitHub catalog.
type GitHubOption func(*githubOptions)

type githubOptions struct {
	httpClient *http.Client
	token      string
	baseURL    string
	perPage    int
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(o *githubOptions) {
		o.httpClient = c
	}
}

// WithToken authenticates requests with a personal access token.
func WithToken(token string) GitHubOption {
	return func(o *githubOptions) {
		o.token = token
	}
}

// WithBaseURL points the client at another API endpoint (GitHub Enterprise, tests).
func WithBaseURL(baseURL string) GitHubOption {
	return func(o *githubOptions) {
		o.baseURL = baseURL
	}
}

// WithPerPage sets the page size.
func WithPerPage(n int) GitHubOption {
	return func(o *githubOptions) {
		o.perPage = n
	}
}

// NewGitHub creates a catalog for templates owned by owner.
func NewGitHub(owner string, opts ...GitHubOption) (*GitHub, error) {
	if owner == "" {
		return nil, oerrors.NewValidationError("catalog owner is empty", "", "Set catalog.owner in the config file or pass --owner.")
	}

	o := &githubOptions{perPage: 100}
	for _, opt := range opts {
		opt(o)
	}

	client := github.NewClient(o.httpClient)
	if o.token != "" {
		client = client.WithAuthToken(o.token)
	}
	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, oerrors.NewValidationError(fmt.Sprintf("invalid catalog API URL %q: %v", o.baseURL, err), "", "")
		}
		client.BaseURL = u
	}

	perPage := o.perPage
	if perPage <= 0 || perPage > 100 {
		perPage = 100
	}

	return &GitHub{client: client, owner: owner, perPage: perPage}, nil
}

// Query returns the search query used to find the owner's templates.
func (g *GitHub) Query() string {
	return fmt.Sprintf("user:%s template:true", g.owner)
}

// List pages through the search results until the reported total is reached.
func (g *GitHub) List(ctx context.Context) ([]Template, error) {
	var (
		templates []Template
		total     = -1
	)

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: g.perPage, Page: 1},
	}

	for {
		res, _, err := g.client.Search.Repositories(ctx, g.Query(), opts)
		if err != nil {
			return nil, g.classify(err)
		}

		total = res.GetTotal()
		for _, repo := range res.Repositories {
			templates = append(templates, Template{
				Name:        repo.GetName(),
				Description: repo.GetDescription(),
				SourceURL:   repo.GetCloneURL(),
				HTMLURL:     repo.GetHTMLURL(),
			})
		}

		output.Debug("fetched catalog page",
			"page", opts.Page,
			"items", len(res.Repositories),
			"sofar", len(templates),
			"total", total,
		)

		if len(res.Repositories) == 0 || len(templates) >= total || opts.Page*g.perPage >= searchResultCap {
			break
		}
		opts.Page++
	}

	return templates, nil
}

// classify maps API failures onto the CLI's error sentinels.
func (g *GitHub) classify(err error) error {
	ctx := map[string]string{"Owner": g.owner}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return oerrors.NewPermissionError(
			"template catalog rate limit exceeded",
			ctx,
			"Set STARTER_GITHUB_TOKEN or GITHUB_TOKEN for a higher limit.",
		)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return oerrors.NewPermissionError("template catalog secondary rate limit exceeded", ctx, "Wait a minute and retry.")
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return oerrors.NewPermissionError(
				fmt.Sprintf("template catalog rejected the request: %s", respErr.Message),
				ctx,
				"Check that your GitHub token is valid.",
			)
		case http.StatusNotFound:
			return oerrors.NewNotFoundError(fmt.Sprintf("template catalog not found for %q", g.owner), "", "")
		}
		return fmt.Errorf("listing templates: %w", err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return &oerrors.DetailError{
		Type:    "connectivity failed",
		Message: fmt.Sprintf("could not reach the template catalog: %v", err),
		Context: ctx,
		Hint:    "Check your network connection, or use --catalog-file for an offline catalog.",
		Cause:   oerrors.ErrConnectivity,
	}
}
