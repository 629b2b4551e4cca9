package rules

// Classify derives the conversion policy for a texture path. It is pure:
// the same path and rule set always yield the same classification.
func (rs *RuleSet) Classify(p TexturePath) Classification {
	c := Classification{Path: p}

	if matchAny(rs.Exclude, p) {
		c.Excluded = true
		return c
	}

	c.IsModel = matchAny(rs.Model, p) && !matchAny(rs.NotModel, p)
	c.IsNormalMap = c.IsModel && rs.IsNormalMapName(p)
	c.KeepReadable = matchAny(rs.KeepReadable, p)

	for _, s := range rs.Scales {
		if s.Match(p) {
			c.ModelScale = s.Model
			c.NormalMapScale = s.NormalMap
			break
		}
	}

	return c
}

// Explain lists every rule that matched p, in category order. Used for
// diagnostics only; Classify is the source of truth.
func (rs *RuleSet) Explain(p TexturePath) []Rule {
	var matched []Rule
	for _, list := range [][]Rule{rs.Exclude, rs.Model, rs.NotModel, rs.KeepReadable} {
		for _, r := range list {
			if r.Match(p) {
				matched = append(matched, r)
			}
		}
	}
	for _, s := range rs.Scales {
		if s.Match(p) {
			matched = append(matched, s.Rule)
			break
		}
	}
	return matched
}
