// Package cdn turns Discord asset hashes into fully-qualified image URLs.
//
// Avatars and banners may be animated, and the hash alone doesn't reliably say
// so, so the resolver asks the CDN for the .gif first and falls back to .png
// when the CDN refuses it.
package cdn

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swgillespie/cordinfo/pkg/discord"
)

const (
	DefaultBaseURL = "https://cdn.discordapp.com/"

	sizeQuery       = "?size=4096"
	defaultAvatar   = "embed/avatars/0.png"
	animatedFormat  = ".gif"
	staticFormat    = ".png"
	probeBodyLength = 512
)

// Kind is the sort of image being resolved.
type Kind int

const (
	KindAvatar Kind = iota
	KindBanner
	KindDecoration
)

var pathSegments = map[Kind]string{
	KindAvatar:     "avatars",
	KindBanner:     "banners",
	KindDecoration: "avatar-decoration-presets",
}

// String returns the CDN path segment for the kind.
func (k Kind) String() string {
	if segment, ok := pathSegments[k]; ok {
		return segment
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Resolver struct {
	baseURL string
	client  *http.Client
}

type ResolverOption func(*Resolver)

func NewResolver(options ...ResolverOption) *Resolver {
	resolver := &Resolver{
		baseURL: DefaultBaseURL,
		client:  &http.Client{},
	}
	for _, option := range options {
		option(resolver)
	}
	return resolver
}

func WithHTTPClient(httpClient *http.Client) ResolverOption {
	return func(r *Resolver) {
		r.client = httpClient
	}
}

// WithBaseURL overrides the CDN root. It must end in a slash.
func WithBaseURL(url string) ResolverOption {
	return func(r *Resolver) {
		r.baseURL = url
	}
}

// Resolve builds the URL for an image of the given kind owned by owner. An
// absent asset resolves to the default avatar for KindAvatar and to an absent
// URL for every other kind.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, owner snowflake.ID, asset discord.Optional[string]) (discord.Optional[string], error) {
	hash, ok := asset.Get()
	if !ok {
		switch kind {
		case KindAvatar:
			return discord.Some(r.baseURL + defaultAvatar), nil
		case KindBanner, KindDecoration:
			return discord.None[string](), nil
		default:
			return discord.None[string](), errors.Errorf("unknown image kind %d", int(kind))
		}
	}

	switch kind {
	case KindDecoration:
		// Decorations are always served as animated PNG.
		return discord.Some(fmt.Sprintf("%s%s/%s%s%s", r.baseURL, kind, hash, staticFormat, sizeQuery)), nil
	case KindAvatar, KindBanner:
		base := fmt.Sprintf("%s%s/%s/%s", r.baseURL, kind, owner, hash)
		animated, err := r.probe(ctx, base+animatedFormat)
		if err != nil {
			return discord.None[string](), errors.Wrapf(err, "while probing %s", kind)
		}
		if animated {
			return discord.Some(base + animatedFormat + sizeQuery), nil
		}
		return discord.Some(base + staticFormat + sizeQuery), nil
	default:
		return discord.None[string](), errors.Errorf("unknown image kind %d", int(kind))
	}
}

// probe reports whether the CDN serves url. Any 2xx counts as served and any
// other status as not served; only transport failures are errors.
func (r *Resolver) probe(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return false, errors.Wrap(err, "while creating request")
	}

	resp, err := r.client.Do(req.WithContext(ctx))
	if err != nil {
		return false, errors.Wrap(err, "while executing request")
	}
	defer resp.Body.Close()
	// Drain a little so the connection can be reused for the next probe.
	io.Copy(ioutil.Discard, io.LimitReader(resp.Body, probeBodyLength))

	served := resp.StatusCode >= 200 && resp.StatusCode < 300
	log.WithFields(log.Fields{
		"url":    url,
		"status": resp.StatusCode,
	}).Debug("probed cdn asset")
	return served, nil
}
