package lookup

import (
	"fmt"
	"io"
	"time"

	"github.com/swgillespie/cordinfo/pkg/discord"
)

const none = "None"

// printer remembers the first write error so Render can print field after
// field without checking each one.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Render prints every field of the report, one per line, followed by a blank
// line.
func Render(w io.Writer, r *Report) error {
	p := &printer{w: w}
	user := r.User

	p.line("ID: %s", user.ID)
	p.line("Created At: %s", user.CreatedAt().UTC().Format(time.RFC3339))
	p.line("Username: %s", user.Username)
	p.line("Avatar: %s", orNone(r.Images.Avatar))
	p.line("Discriminator: %s", user.Discriminator)
	p.line("Public Flags: %d", user.PublicFlags)
	if user.PublicFlags != 0 {
		p.line("Badge:")
		for _, label := range discord.DecodeFlags(user.PublicFlags) {
			p.line(" - %s", label)
		}
	} else {
		p.line("Badge: %s", none)
	}
	p.line("Flags: %d", user.Flags)
	p.line("Bot: %t", user.Bot.OrElse(false))
	p.line("Banner: %s", orNone(r.Images.Banner))
	p.line("Accent Color: %s", FormatAccentColor(user.AccentColor))
	p.line("Global Name: %s", orNone(user.GlobalName))

	if decoration, ok := user.AvatarDecorationData.Get(); ok {
		p.line("Avatar Decoration Data:")
		p.line(" - Asset: %s", orNone(r.Images.Decoration))
		p.line(" - SKU ID: %s", decoration.SkuID)
		p.line(" - Expires at: %s", orNone(decoration.ExpiresAt))
	} else {
		p.line("Avatar Decoration Data: %s", none)
	}

	p.line("Banner Color: %s", orNone(user.BannerColor))

	if clan, ok := user.Clan.Get(); ok {
		p.line("Clan:")
		p.line(" - Identity Guild Id: %s", orNone(clan.IdentityGuildID))
		p.line(" - Identity Enabled: %s", orNone(clan.IdentityEnabled))
		p.line(" - Tag: %s", orNone(clan.Tag))
		p.line(" - Badge: %s", orNone(clan.Badge))
	} else {
		p.line("Clan: %s", none)
	}

	p.line("")
	return p.err
}

// FormatAccentColor renders an RGB accent color as #rrggbb.
func FormatAccentColor(color discord.Optional[uint32]) string {
	if value, ok := color.Get(); ok {
		return fmt.Sprintf("#%06x", value)
	}
	return none
}

func orNone[T any](value discord.Optional[T]) string {
	if v, ok := value.Get(); ok {
		return fmt.Sprint(v)
	}
	return none
}
