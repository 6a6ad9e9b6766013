// Package profile holds the singleton user profile and application settings.
package profile

import (
	"fmt"
	"strings"

	"tableflip.dev/diary/pkg/entry"
)

type Basics struct {
	Birthday     string `json:"birthday,omitempty"`
	Sleep        string `json:"sleep,omitempty"`
	EnergySource string `json:"energySource,omitempty"`
}

type Personality struct {
	Strengths  string `json:"strengths,omitempty"`
	Weaknesses string `json:"weaknesses,omitempty"`
}

type Values struct {
	Motto       string `json:"motto,omitempty"`
	LifeMeaning string `json:"lifeMeaning,omitempty"`
}

// Profile describes the single user of the diary.
type Profile struct {
	Name        string          `json:"name"`
	JoinedAt    entry.Timestamp `json:"joinedAt"`
	Basics      Basics          `json:"basics"`
	Personality Personality     `json:"personality"`
	Values      Values          `json:"values"`
}

// Patch carries the profile fields to change. Empty strings mean keep.
type Patch struct {
	Name         string
	Birthday     string
	Sleep        string
	EnergySource string
	Strengths    string
	Weaknesses   string
	Motto        string
	LifeMeaning  string
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p == Patch{}
}

// Apply merges p into the profile.
func (pr *Profile) Apply(p Patch) {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&pr.Name, p.Name)
	set(&pr.Basics.Birthday, p.Birthday)
	set(&pr.Basics.Sleep, p.Sleep)
	set(&pr.Basics.EnergySource, p.EnergySource)
	set(&pr.Personality.Strengths, p.Strengths)
	set(&pr.Personality.Weaknesses, p.Weaknesses)
	set(&pr.Values.Motto, p.Motto)
	set(&pr.Values.LifeMeaning, p.LifeMeaning)
}

func (pr *Profile) String() string {
	return fmt.Sprintf("%s (joined %s)", pr.Name, pr.JoinedAt.Local().Format("2006-01-02"))
}
