package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// User is the user object returned by GET /users/{id}.
type User struct {
	ID                   snowflake.ID                   `json:"id"`
	Username             string                         `json:"username"`
	Avatar               Optional[string]               `json:"avatar"`
	Discriminator        string                         `json:"discriminator"`
	PublicFlags          uint64                         `json:"public_flags"`
	Flags                uint64                         `json:"flags"`
	Bot                  Optional[bool]                 `json:"bot"`
	Banner               Optional[string]               `json:"banner"`
	AccentColor          Optional[uint32]               `json:"accent_color"`
	GlobalName           Optional[string]               `json:"global_name"`
	AvatarDecorationData Optional[AvatarDecorationData] `json:"avatar_decoration_data"`
	BannerColor          Optional[string]               `json:"banner_color"`
	Clan                 Optional[Clan]                 `json:"clan"`
}

type AvatarDecorationData struct {
	Asset     string           `json:"asset"`
	SkuID     string           `json:"sku_id"`
	ExpiresAt Optional[string] `json:"expires_at"`
}

type Clan struct {
	IdentityGuildID Optional[string] `json:"identity_guild_id"`
	IdentityEnabled Optional[bool]   `json:"identity_enabled"`
	Tag             Optional[string] `json:"tag"`
	Badge           Optional[string] `json:"badge"`
}

// CreatedAt is the account creation time encoded in the user's snowflake.
func (u *User) CreatedAt() time.Time {
	return u.ID.Time()
}

// DecorationAsset is the decoration asset hash, if the user has a decoration.
func (u *User) DecorationAsset() Optional[string] {
	if decoration, ok := u.AvatarDecorationData.Get(); ok {
		return Some(decoration.Asset)
	}
	return None[string]()
}

type UsersService interface {
	GetUser(ctx context.Context, id snowflake.ID) (*User, error)
}

type usersServiceImpl struct {
	client *Client
}

func (u *usersServiceImpl) GetUser(ctx context.Context, id snowflake.ID) (*User, error) {
	var userResp User
	endpoint := fmt.Sprintf("users/%s", id)
	if err := u.client.get(ctx, endpoint, &userResp); err != nil {
		return nil, err
	}
	return &userResp, nil
}
