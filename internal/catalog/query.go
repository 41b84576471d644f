package catalog

import (
	"sort"
	"strings"
	"time"
)

// Sort policies. "downloads" orders identically to "popularity"; the
// storefront exposes both labels, so both stay.
const (
	SortPopularity = "popularity"
	SortRating     = "rating"
	SortNewest     = "newest"
	SortDownloads  = "downloads"
)

// Filters narrows a catalog query. Zero-valued fields are ignored. All
// present filters are AND-combined, except Tags which matches an item
// sharing at least one tag with the filter list.
type Filters struct {
	Format         string
	BusinessArea   string
	TargetPlatform string
	Search         string
	MinRating      float64
	Tags           []string
	SortBy         string
}

// Prompts returns the prompts matching the filters, ordered by the sort
// policy. Without a sort the snapshot order is preserved.
func (c *Catalog) Prompts(f Filters) []Prompt {
	if c == nil {
		return nil
	}

	out := make([]Prompt, 0, len(c.prompts))
	for _, p := range c.prompts {
		if f.Format != "" && p.Format != f.Format {
			continue
		}
		if f.BusinessArea != "" && p.BusinessArea != f.BusinessArea {
			continue
		}
		if f.TargetPlatform != "" && p.TargetPlatform != f.TargetPlatform {
			continue
		}
		if !matchesItem(p.Item, f) {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortPopularity, SortDownloads:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Downloads > out[j].Downloads })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating.Average > out[j].Rating.Average })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return parseInstant(out[i].CreatedAt).After(parseInstant(out[j].CreatedAt))
		})
	}

	return out
}

// Skills returns the skills matching the filters, ordered by the sort policy.
func (c *Catalog) Skills(f Filters) []Skill {
	if c == nil {
		return nil
	}

	out := make([]Skill, 0, len(c.skills))
	for _, s := range c.skills {
		if f.BusinessArea != "" && s.BusinessArea != f.BusinessArea {
			continue
		}
		if !matchesItem(s.Item, f) {
			continue
		}
		out = append(out, s)
	}

	switch f.SortBy {
	case SortPopularity, SortDownloads:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Downloads > out[j].Downloads })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating.Average > out[j].Rating.Average })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return parseInstant(out[i].CreatedAt).After(parseInstant(out[j].CreatedAt))
		})
	}

	return out
}

// RelatedPrompts returns up to limit prompts related to the given one:
// anything sharing a tag, business area, format, or author, ranked by shared
// tag count then downloads. The seed prompt is excluded.
func (c *Catalog) RelatedPrompts(id string, limit int) []Prompt {
	if c == nil {
		return nil
	}
	seed, ok := c.PromptByID(id)
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = 6
	}

	var related []Prompt
	for _, p := range c.prompts {
		if p.ID == id {
			continue
		}
		switch {
		case sharedTagCount(p.Tags, seed.Tags) > 0,
			p.BusinessArea == seed.BusinessArea,
			p.Format == seed.Format,
			p.Author.ID == seed.Author.ID:
			related = append(related, p)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		si := sharedTagCount(related[i].Tags, seed.Tags)
		sj := sharedTagCount(related[j].Tags, seed.Tags)
		if si != sj {
			return si > sj
		}
		return related[i].Downloads > related[j].Downloads
	})

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// RelatedSkills is RelatedPrompts for skills. Skills carry no format axis, so
// relatedness is shared tags, business area, or author.
func (c *Catalog) RelatedSkills(id string, limit int) []Skill {
	if c == nil {
		return nil
	}
	seed, ok := c.SkillByID(id)
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = 6
	}

	var related []Skill
	for _, s := range c.skills {
		if s.ID == id {
			continue
		}
		switch {
		case sharedTagCount(s.Tags, seed.Tags) > 0,
			s.BusinessArea == seed.BusinessArea,
			s.Author.ID == seed.Author.ID:
			related = append(related, s)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		si := sharedTagCount(related[i].Tags, seed.Tags)
		sj := sharedTagCount(related[j].Tags, seed.Tags)
		if si != sj {
			return si > sj
		}
		return related[i].Downloads > related[j].Downloads
	})

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}

// BusinessAreasFromPrompts returns the sorted unique business areas present.
func BusinessAreasFromPrompts(prompts []Prompt) []string {
	seen := make(map[string]struct{}, len(prompts))
	for _, p := range prompts {
		if p.BusinessArea != "" {
			seen[p.BusinessArea] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// BusinessAreasFromSkills returns the sorted unique business areas present.
func BusinessAreasFromSkills(skills []Skill) []string {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s.BusinessArea != "" {
			seen[s.BusinessArea] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func matchesItem(it Item, f Filters) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		hit := strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Description), q)
		if !hit {
			for _, tag := range it.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if f.MinRating > 0 && it.Rating.Average < f.MinRating {
		return false
	}

	if len(f.Tags) > 0 && sharedTagCount(it.Tags, f.Tags) == 0 {
		return false
	}

	return true
}

func sharedTagCount(tags, against []string) int {
	n := 0
	for _, t := range tags {
		for _, a := range against {
			if t == a {
				n++
				break
			}
		}
	}
	return n
}

func parseInstant(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}
