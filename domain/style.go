package domain

import "strings"

// DefaultStyle is the synthesis style used for any emotion label outside the
// ten the prompt allows.
const DefaultStyle = "default"

// Prosody carries the SSML delivery parameters derived from a synthesis style.
type Prosody struct {
	Rate  string
	Pitch string
}

var styleByEmotion = map[string]string{
	"平靜":   "calm",
	"悲傷":   "sad",
	"緊張":   "tension",
	"充滿希望": "hopeful",
	"敘事":   "narrative",
	"歡快":   "joyful",
	"友善":   "friendly",
	"憤怒":   "angry",
	"莊嚴":   "solemn",
	"浪漫":   "romantic",
}

var prosodyByStyle = map[string]Prosody{
	"calm":      {Rate: "95%", Pitch: "+0st"},
	"sad":       {Rate: "85%", Pitch: "-0.5st"},
	"tension":   {Rate: "115%", Pitch: "+3st"},
	"hopeful":   {Rate: "105%", Pitch: "+2st"},
	"narrative": {Rate: "100%", Pitch: "+1st"},
	"joyful":    {Rate: "125%", Pitch: "+4st"},
	"friendly":  {Rate: "105%", Pitch: "+1.5st"},
	"angry":     {Rate: "120%", Pitch: "-1st"},
	"solemn":    {Rate: "80%", Pitch: "0st"},
	"romantic":  {Rate: "90%", Pitch: "+1st"},
}

var defaultProsody = Prosody{Rate: "100%", Pitch: "+1st"}

// StyleForEmotion maps a Chinese vocal style label to its synthesis style
// identifier. Unknown labels map to DefaultStyle, never to an error.
func StyleForEmotion(label string) string {
	if style, ok := styleByEmotion[strings.TrimSpace(label)]; ok {
		return style
	}
	return DefaultStyle
}

// ProsodyForStyle returns the rate and pitch for a synthesis style. Styles
// without an entry, DefaultStyle included, get the neutral baseline.
func ProsodyForStyle(style string) Prosody {
	if prosody, ok := prosodyByStyle[style]; ok {
		return prosody
	}
	return defaultProsody
}
