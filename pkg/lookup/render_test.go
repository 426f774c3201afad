package lookup

import (
	"bytes"
	"io"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"

	"github.com/swgillespie/cordinfo/pkg/cdn"
	"github.com/swgillespie/cordinfo/pkg/discord"
)

func fullReport() *Report {
	return &Report{
		User: &discord.User{
			ID:            snowflake.ID(175928847299117063),
			Username:      "nelly",
			Avatar:        discord.Some("a_8342"),
			Discriminator: "1337",
			PublicFlags:   1 | 4,
			Flags:         5,
			Bot:           discord.Some(true),
			Banner:        discord.Some("1269"),
			AccentColor:   discord.Some(uint32(0xABCDEF)),
			GlobalName:    discord.Some("Nelly"),
			AvatarDecorationData: discord.Some(discord.AvatarDecorationData{
				Asset:     "a_fed4",
				SkuID:     "1144058522808614923",
				ExpiresAt: discord.Some("2024-09-01T00:00:00Z"),
			}),
			BannerColor: discord.Some("#abcdef"),
			Clan: discord.Some(discord.Clan{
				IdentityGuildID: discord.Some("1060320567340638279"),
				IdentityEnabled: discord.Some(true),
				Tag:             discord.Some("NELY"),
				Badge:           discord.None[string](),
			}),
		},
		Images: &cdn.Images{
			Avatar:     discord.Some("https://cdn.discordapp.com/avatars/175928847299117063/a_8342.gif?size=4096"),
			Banner:     discord.Some("https://cdn.discordapp.com/banners/175928847299117063/1269.png?size=4096"),
			Decoration: discord.Some("https://cdn.discordapp.com/avatar-decoration-presets/a_fed4.png?size=4096"),
		},
	}
}

func TestRenderFullProfile(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, Render(&out, fullReport()))

	expected := `ID: 175928847299117063
Created At: 2016-04-30T11:18:25Z
Username: nelly
Avatar: https://cdn.discordapp.com/avatars/175928847299117063/a_8342.gif?size=4096
Discriminator: 1337
Public Flags: 5
Badge:
 - Staff
 - HypeSquad_Events
Flags: 5
Bot: true
Banner: https://cdn.discordapp.com/banners/175928847299117063/1269.png?size=4096
Accent Color: #abcdef
Global Name: Nelly
Avatar Decoration Data:
 - Asset: https://cdn.discordapp.com/avatar-decoration-presets/a_fed4.png?size=4096
 - SKU ID: 1144058522808614923
 - Expires at: 2024-09-01T00:00:00Z
Banner Color: #abcdef
Clan:
 - Identity Guild Id: 1060320567340638279
 - Identity Enabled: true
 - Tag: NELY
 - Badge: None

`
	assert.Equal(t, expected, out.String())
}

func TestRenderEmptyProfile(t *testing.T) {
	report := &Report{
		User: &discord.User{
			ID:            snowflake.ID(175928847299117063),
			Username:      "ghost",
			Discriminator: "0",
		},
		Images: &cdn.Images{
			Avatar: discord.Some("https://cdn.discordapp.com/embed/avatars/0.png"),
		},
	}

	var out bytes.Buffer
	assert.NoError(t, Render(&out, report))

	expected := `ID: 175928847299117063
Created At: 2016-04-30T11:18:25Z
Username: ghost
Avatar: https://cdn.discordapp.com/embed/avatars/0.png
Discriminator: 0
Public Flags: 0
Badge: None
Flags: 0
Bot: false
Banner: None
Accent Color: None
Global Name: None
Avatar Decoration Data: None
Banner Color: None
Clan: None

`
	assert.Equal(t, expected, out.String())
}

func TestFormatAccentColor(t *testing.T) {
	assert.Equal(t, "#abcdef", FormatAccentColor(discord.Some(uint32(0xABCDEF))))
	assert.Equal(t, "#00000f", FormatAccentColor(discord.Some(uint32(0xF))))
	assert.Equal(t, "None", FormatAccentColor(discord.None[uint32]()))
}

type shortWriter struct {
	remaining int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, io.ErrShortWrite
	}
	s.remaining--
	return len(p), nil
}

func TestRenderStopsAtFirstWriteError(t *testing.T) {
	err := Render(&shortWriter{remaining: 3}, fullReport())
	assert.Equal(t, io.ErrShortWrite, err)
}
