package content

import "strings"

// DefaultIcon is used when no keyword matches.
const DefaultIcon = "lightbulb"

type iconRule struct {
	icon     string
	title    []string
	describe []string
}

// iconRules is evaluated in order; the first rule with a keyword in the
// title (or description, where listed) wins.
var iconRules = []iconRule{
	{icon: "layers", title: []string{"design system"}},
	{icon: "penTool", title: []string{"interaction"}, describe: []string{"interaction"}},
	{icon: "layout", title: []string{"portal", "redesign"}},
	{icon: "search", title: []string{"research", "discovery"}, describe: []string{"research"}},
	{icon: "lineChart", title: []string{"strategy", "roadmap"}},
	{icon: "users", title: []string{"workshop", "facilitation"}},
	{icon: "code", title: []string{"implementation", "development"}},
	{icon: "microscope", title: []string{"usability"}},
	{icon: "penTool", title: []string{"prototype"}},
	{icon: "gauge", title: []string{"assessment"}},
	{icon: "sparkles", title: []string{"workflow", "optimization"}},
	{icon: "monitorSmartphone", title: []string{"telehealth", "virtual care"}},
	{icon: "stethoscope", title: []string{"medical device"}},
	{icon: "smartphone", title: []string{"mobile", "app"}},
	{icon: "lineChart", title: []string{"analytics", "data"}},
	{icon: "users", title: []string{"accessibility"}},
	{icon: "microscope", title: []string{"audit"}},
}

// DeriveIcon picks an icon name for a service from keywords in its title and
// description. Matching is case-insensitive.
func DeriveIcon(title, description string) string {
	t := strings.ToLower(title)
	d := strings.ToLower(description)
	for _, rule := range iconRules {
		if containsAny(t, rule.title) || containsAny(d, rule.describe) {
			return rule.icon
		}
	}
	return DefaultIcon
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
