// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Platform identifies a third-party service whose login credentials can be
// kept in a vault. The set is closed and fixed at compile time.
type Platform string

const (
	// PlatformInstagram is instagram.com.
	PlatformInstagram Platform = "instagram"

	// PlatformDiscord is discord.com.
	PlatformDiscord Platform = "discord"

	// PlatformLinkedIn is linkedin.com.
	PlatformLinkedIn Platform = "linkedin"
)

// ErrUnknownPlatform is returned by [ParsePlatform] for names outside the
// supported set.
var ErrUnknownPlatform = errors.New("unknown platform")

var platforms = []Platform{PlatformInstagram, PlatformDiscord, PlatformLinkedIn}

var platformDisplayNames = map[Platform]string{
	PlatformInstagram: "Instagram",
	PlatformDiscord:   "Discord",
	PlatformLinkedIn:  "LinkedIn",
}

// platformHosts maps the registrable domain of each platform's site.
var platformHosts = map[string]Platform{
	"instagram.com": PlatformInstagram,
	"discord.com":   PlatformDiscord,
	"linkedin.com":  PlatformLinkedIn,
}

// Platforms returns every supported platform in display order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// ParsePlatform converts a case-insensitive platform name into a [Platform].
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
	return p, nil
}

// Valid reports whether p belongs to the supported set.
func (p Platform) Valid() bool {
	_, ok := platformDisplayNames[p]
	return ok
}

// DisplayName returns the human readable platform name, or the raw value for
// unknown platforms.
func (p Platform) DisplayName() string {
	if name, ok := platformDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

func (p Platform) String() string {
	return string(p)
}

// DetectPlatform maps a page URL to the platform it belongs to. Subdomains
// (www.instagram.com, m.linkedin.com) are matched against the registrable
// domain. The second return value is false when the URL is unparsable or
// belongs to no supported platform.
func DetectPlatform(rawURL string) (Platform, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	for domain, p := range platformHosts {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return p, true
		}
	}
	return "", false
}
