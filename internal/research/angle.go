package research

import "strings"

type angleBucket struct {
	triggers []string
	angles   []string
}

// angleBuckets map topic keywords to the editorial angles that suit them.
// First matching bucket wins; within a bucket the first angle is used so the
// choice stays deterministic.
var angleBuckets = []angleBucket{
	{
		triggers: []string{"design", "ui", "ux", "interface"},
		angles:   []string{"SaaS design breakdown", "Design system analysis", "User experience insights"},
	},
	{
		triggers: []string{"framer", "template", "prototype"},
		angles:   []string{"Framer template showcase", "Template customization guide", "Prototype to production workflow"},
	},
	{
		triggers: []string{"conversion", "cro", "optimization"},
		angles:   []string{"CRO optimization tips", "Conversion optimization case study", "Landing page optimization"},
	},
	{
		triggers: []string{"startup", "saas", "business"},
		angles:   []string{"SaaS growth strategy", "Startup design mistakes", "Business model analysis"},
	},
}

// Angle selects the craefto editorial angle for a topic.
func (c Config) Angle(topic string) string {
	lower := strings.ToLower(topic)
	for _, bucket := range angleBuckets {
		for _, trigger := range bucket.triggers {
			if strings.Contains(lower, trigger) {
				return bucket.angles[0]
			}
		}
	}
	if len(c.ContentAngles) > 0 {
		return c.ContentAngles[0]
	}
	return ""
}
