package content

import "strings"

// DefaultIcon is used for subjects matching no rule.
const DefaultIcon = "📖"

// iconRule maps name fragments to a glyph.
type iconRule struct {
	fragments []string
	icon      string
}

// iconRules is ordered: the first rule with a matching fragment wins.
// Longer names that contain a shorter fragment of another rule must come
// first ("educação física" contains "física").
var iconRules = []iconRule{
	{[]string{"inglês", "ingles"}, "🔤"},
	{[]string{"espanhol"}, "🔠"},
	{[]string{"matemática", "matematica"}, "🔢"},
	{[]string{"ciências", "ciencias"}, "🔬"},
	{[]string{"geografia"}, "🌍"},
	{[]string{"história", "historia"}, "📚"},
	{[]string{"português", "portugues"}, "📝"},
	{[]string{"artes"}, "🎨"},
	{[]string{"redação", "redacao"}, "✍️"},
	{[]string{"educação física", "educacao fisica"}, "⚽"},
	{[]string{"física", "fisica"}, "⚛️"},
	{[]string{"química", "quimica"}, "🧪"},
	{[]string{"biologia"}, "🧬"},
	{[]string{"música", "musica"}, "🎵"},
	{[]string{"filosofia"}, "🤔"},
	{[]string{"sociologia"}, "👥"},
}

// ResolveIcon returns the glyph for a subject name. Matching is a
// case-insensitive substring test.
func ResolveIcon(name string) string {
	lower := strings.ToLower(name)
	for _, r := range iconRules {
		for _, f := range r.fragments {
			if strings.Contains(lower, f) {
				return r.icon
			}
		}
	}
	return DefaultIcon
}

// Logos for known schools.
const (
	LogoPortinari = "/data/logo-portinari.png"
	LogoYazigi    = "/data/logo-yazigi.png"
	LogoDefault   = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSOveLRTe9dYBTFGs85_vfvidPm43ZIjUJruQ&s"
)

var logoRules = []iconRule{
	{[]string{"portinari", "portortinari"}, LogoPortinari},
	{[]string{"yazigi", "yasigi"}, LogoYazigi},
}

// ResolveSchoolLogo returns the logo reference for a school name.
func ResolveSchoolLogo(school string) string {
	lower := strings.ToLower(school)
	for _, r := range logoRules {
		for _, f := range r.fragments {
			if strings.Contains(lower, f) {
				return r.icon
			}
		}
	}
	return LogoDefault
}
