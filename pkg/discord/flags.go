package discord

// Flag is a single bit of a user's public_flags bitmask.
type Flag struct {
	Label string
	Value uint64
}

// PublicFlags is every public user flag we know how to label, in display order.
var PublicFlags = []Flag{
	{"Staff", 1 << 0},
	{"Partnered_Server_Owner", 1 << 1},
	{"HypeSquad_Events", 1 << 2},
	{"Bug_Hunter_Level_1", 1 << 3},
	{"HypeSquad_Bravery", 1 << 6},
	{"HypeSquad_Brilliance", 1 << 7},
	{"HypeSquad_Balance", 1 << 8},
	{"Premium_Early_Supporter", 1 << 9},
	{"Team_Pseudo_User", 1 << 10},
	{"Bug_Hunter_Level_2", 1 << 14},
	{"Verified_Bot", 1 << 16},
	{"Verified_Developer", 1 << 17},
	{"Certified_Moderator", 1 << 18},
	{"Bot_Http_Interactions", 1 << 19},
	{"Active_Developer", 1 << 22},
}

// DecodeFlags returns the labels of every known flag set in mask, in
// PublicFlags order. Unknown bits are ignored.
func DecodeFlags(mask uint64) []string {
	labels := []string{}
	for _, flag := range PublicFlags {
		if mask&flag.Value == flag.Value {
			labels = append(labels, flag.Label)
		}
	}
	return labels
}
