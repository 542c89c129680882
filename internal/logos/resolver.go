// SPDX-License-Identifier: MIT

// Package logos proxies partner logos from the logo provider. Results are
// normalized to PNG and cached; failures are remembered for a shorter time so
// a broken brand renders as text without hammering the provider.
package logos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/devcontracting/dcsite/internal/widgets"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidDomain is returned for anything that is not a bare host name.
	ErrInvalidDomain = errors.New("invalid logo domain")
	// ErrNotFound is returned when the provider has no logo for the domain.
	ErrNotFound = errors.New("logo not found")
	// ErrUndecodable is returned when the provider's bytes are not an image.
	ErrUndecodable = errors.New("logo is not a decodable image")
)

const (
	DefaultBaseURL     = "https://logo.clearbit.com"
	DefaultTTL         = 24 * time.Hour
	DefaultFailureTTL  = 30 * time.Minute
	DefaultConcurrency = 4
)

var domainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

// NormalizeDomain lowercases and validates a brand domain.
func NormalizeDomain(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimSuffix(d, ".")
	if !domainPattern.MatchString(d) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	return d, nil
}

// Logo is a normalized PNG ready to serve.
type Logo struct {
	Domain    string
	PNG       []byte
	FetchedAt time.Time
}

type entry struct {
	logo    *Logo
	err     error
	expires time.Time
}

// Options configures a Resolver.
type Options struct {
	BaseURL     string
	TTL         time.Duration
	FailureTTL  time.Duration
	Concurrency int
	Client      *http.Client
	Logger      *logger.Logger
}

// Resolver fetches, normalizes and caches logos.
type Resolver struct {
	base        string
	ttl         time.Duration
	failureTTL  time.Duration
	concurrency int
	client      *http.Client
	log         *logger.Logger
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]entry
	group   singleflight.Group
}

// NewResolver builds a Resolver, filling zero options with defaults.
func NewResolver(opts Options) *Resolver {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.FailureTTL <= 0 {
		opts.FailureTTL = DefaultFailureTTL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Resolver{
		base:        strings.TrimSuffix(opts.BaseURL, "/"),
		ttl:         opts.TTL,
		failureTTL:  opts.FailureTTL,
		concurrency: opts.Concurrency,
		client:      opts.Client,
		log:         opts.Logger,
		now:         time.Now,
		entries:     make(map[string]entry),
	}
}

// SourceURL is the provider URL for a domain.
func (r *Resolver) SourceURL(domain string) string {
	return fmt.Sprintf("%s/%s?size=%d", r.base, url.PathEscape(domain), LogoSize)
}

// Get returns the logo for a domain, from cache when fresh.
// A remembered failure is returned without contacting the provider.
func (r *Resolver) Get(ctx context.Context, domain string) (*Logo, error) {
	d, err := NormalizeDomain(domain)
	if err != nil {
		return nil, err
	}

	if e, ok := r.lookup(d); ok {
		return e.logo, e.err
	}

	ch := r.group.DoChan(d, func() (interface{}, error) {
		// The fetch is shared, so it must not die with the first caller.
		logo, err := r.fetch(context.WithoutCancel(ctx), d)
		r.store(d, logo, err)
		return logo, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Logo), nil
	}
}

// Status reports what is known about a domain without fetching.
func (r *Resolver) Status(domain string) widgets.ImageState {
	d, err := NormalizeDomain(domain)
	if err != nil {
		return widgets.ImageFailed
	}
	e, ok := r.lookup(d)
	switch {
	case !ok:
		return widgets.ImagePending
	case e.err != nil:
		return widgets.ImageFailed
	default:
		return widgets.ImageLoaded
	}
}

// Warm fetches every domain with bounded concurrency. Per-domain failures
// are memoized, not returned; only cancellation aborts the run.
func (r *Resolver) Warm(ctx context.Context, domains []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, domain := range domains {
		g.Go(func() error {
			if _, err := r.Get(gctx, domain); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				r.log.WithFields(map[string]any{"domain": domain, "error": err.Error()}).Warn("logo unavailable")
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Resolver) lookup(d string) (entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[d]
	if !ok {
		return entry{}, false
	}
	if !r.now().Before(e.expires) {
		delete(r.entries, d)
		return entry{}, false
	}
	return e, true
}

func (r *Resolver) store(d string, logo *Logo, err error) {
	// Cancellation says nothing about the provider.
	if errors.Is(err, context.Canceled) {
		return
	}
	ttl := r.ttl
	if err != nil {
		ttl = r.failureTTL
	}
	r.mu.Lock()
	r.entries[d] = entry{logo: logo, err: err, expires: r.now().Add(ttl)}
	r.mu.Unlock()
}

func (r *Resolver) fetch(ctx context.Context, d string) (*Logo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.SourceURL(d), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build logo request: %w", err)
	}
	req.Header.Set("Accept", "image/png,image/webp,image/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrNotFound, d, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read logo: %w", err)
	}

	png, err := Normalize(data, LogoSize)
	if err != nil {
		return nil, err
	}

	r.log.WithFields(map[string]any{"domain": d, "bytes": len(png)}).Debug("logo fetched")
	return &Logo{Domain: d, PNG: png, FetchedAt: r.now()}, nil
}
