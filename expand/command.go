package expand

import (
	"poster-wall/canvas"
)

// Kind identifies a side effect requested by a transition.
type Kind int

const (
	FreezePan Kind = iota
	UnfreezePan
	ResetVelocity
	HideTile
	ShowTile
	SetTitle
	TitleIn
	TitleOut
	FadeSiblings
	RestoreSiblings
	CreateExpanded
	TweenExpanded
	RemoveExpanded
	ShowOverlay
	HideOverlay
)

var kindNames = [...]string{
	FreezePan:       "FreezePan",
	UnfreezePan:     "UnfreezePan",
	ResetVelocity:   "ResetVelocity",
	HideTile:        "HideTile",
	ShowTile:        "ShowTile",
	SetTitle:        "SetTitle",
	TitleIn:         "TitleIn",
	TitleOut:        "TitleOut",
	FadeSiblings:    "FadeSiblings",
	RestoreSiblings: "RestoreSiblings",
	CreateExpanded:  "CreateExpanded",
	TweenExpanded:   "TweenExpanded",
	RemoveExpanded:  "RemoveExpanded",
	ShowOverlay:     "ShowOverlay",
	HideOverlay:     "HideOverlay",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Command is one side effect. Only the fields relevant to Kind are set.
type Command struct {
	Kind Kind

	Cell         canvas.Cell // HideTile, ShowTile, FadeSiblings, RestoreSiblings
	ContentIndex int         // CreateExpanded
	Title        string      // SetTitle
	Rect         canvas.Rect // CreateExpanded, TweenExpanded: target rectangle
	Timing       Timing

	// Notify asks the executor to call Machine.Finish when the tween ends.
	Notify bool
}

// Kinds lists the kinds of cmds in order.
func Kinds(cmds []Command) []Kind {
	out := make([]Kind, len(cmds))
	for i, c := range cmds {
		out[i] = c.Kind
	}
	return out
}
