package lookup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/swgillespie/cordinfo/pkg/cdn"
	"github.com/swgillespie/cordinfo/pkg/console"
	"github.com/swgillespie/cordinfo/pkg/discord"
)

const prompt = "ID: "

// ImageResolver resolves every image URL of a user.
type ImageResolver interface {
	ResolveUser(ctx context.Context, user *discord.User) (*cdn.Images, error)
}

// Report is everything printed for a single user.
type Report struct {
	User   *discord.User
	Images *cdn.Images
}

// Session looks up users one at a time and prints them to out.
type Session struct {
	users    discord.UsersService
	resolver ImageResolver
	out      io.Writer
}

func NewSession(users discord.UsersService, resolver ImageResolver, out io.Writer) *Session {
	return &Session{
		users:    users,
		resolver: resolver,
		out:      out,
	}
}

// ParseID parses a user-supplied identifier.
func ParseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid user id %q", raw)
	}
	return id, nil
}

// Lookup fetches the user and resolves its images. The images are only
// resolved once the profile itself has been fetched successfully.
func (s *Session) Lookup(ctx context.Context, id snowflake.ID) (*Report, error) {
	log.WithField("id", id.String()).Debug("fetching user")
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch user %s", id)
	}

	images, err := s.resolver.ResolveUser(ctx, user)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve images for user %s", id)
	}

	return &Report{User: user, Images: images}, nil
}

// Show parses raw, looks the user up and prints it.
func (s *Session) Show(ctx context.Context, raw string) error {
	id, err := ParseID(raw)
	if err != nil {
		return err
	}

	report, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	return Render(s.out, report)
}

// LookupAll shows every id in order, stopping at the first failure.
func (s *Session) LookupAll(ctx context.Context, ids []string) error {
	for _, raw := range ids {
		if err := s.Show(ctx, raw); err != nil {
			return err
		}
	}
	return nil
}

// Run prompts for ids until input runs out or the user interrupts. Any lookup
// failure ends the loop and is returned.
func (s *Session) Run(ctx context.Context, lines console.LineReader) error {
	log.Debug("waiting for input")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := lines.ReadLine(prompt)
		switch {
		case err == io.EOF, err == console.ErrInterrupted:
			log.Debug("input closed, exiting")
			return nil
		case err != nil:
			return errors.Wrap(err, "failed to read input")
		}

		if line == "" {
			continue
		}

		if _, err := fmt.Fprintln(s.out); err != nil {
			return err
		}
		if err := s.Show(ctx, line); err != nil {
			return err
		}
	}
}
