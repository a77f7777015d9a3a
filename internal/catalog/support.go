package catalog

import "slices"

// Support is the outcome of resolving an item against a selected avatar.
type Support struct {
	SupportedOrCommon bool
	OnlyCommon        bool   // supported only through a common group
	CommonGroup       string // name of that group when OnlyCommon
}

// Resolve decides whether item can be used with the avatar at
// selectedAvatarPath. An item with no SupportedAvatar entries fits every
// avatar. Otherwise the avatar must be listed directly, or share a common
// group with one of the listed avatars; the first such group in group
// order is reported. Stale paths never match.
func Resolve(item Item, groups []CommonGroup, selectedAvatarPath string) Support {
	if len(item.SupportedAvatar) == 0 {
		return Support{SupportedOrCommon: true}
	}
	if slices.Contains(item.SupportedAvatar, selectedAvatarPath) {
		return Support{SupportedOrCommon: true}
	}
	for _, g := range groups {
		if !g.Contains(selectedAvatarPath) {
			continue
		}
		for _, p := range item.SupportedAvatar {
			if g.Contains(p) {
				return Support{SupportedOrCommon: true, OnlyCommon: true, CommonGroup: g.Name}
			}
		}
	}
	return Support{}
}
