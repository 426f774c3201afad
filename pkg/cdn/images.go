package cdn

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/swgillespie/cordinfo/pkg/discord"
)

// Images holds every resolved image URL for a single user.
type Images struct {
	Avatar     discord.Optional[string]
	Banner     discord.Optional[string]
	Decoration discord.Optional[string]
}

// ResolveUser resolves the avatar, banner and decoration of user side by side.
// If any resolution fails the others are cancelled and the first error is
// returned.
func (r *Resolver) ResolveUser(ctx context.Context, user *discord.User) (*Images, error) {
	var images Images
	group, childCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		url, err := r.Resolve(childCtx, KindAvatar, user.ID, user.Avatar)
		images.Avatar = url
		return err
	})
	group.Go(func() error {
		url, err := r.Resolve(childCtx, KindBanner, user.ID, user.Banner)
		images.Banner = url
		return err
	})
	group.Go(func() error {
		url, err := r.Resolve(childCtx, KindDecoration, user.ID, user.DecorationAsset())
		images.Decoration = url
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.WithField("user", user.ID.String()).Debug("resolved user images")
	return &images, nil
}
