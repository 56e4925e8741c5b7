package jobber

import (
	"math"

	"github.com/shopspring/decimal"
)

// Properties holds per-scope tuning: fractional-hour rounding, an hourly pay
// rate, and a daily hour cap. Every field is independently optional — nil
// means "inherit/unspecified", not zero. Pay is a decimal rather than a
// float64 so that hours-times-rate accumulates in a report without the
// rounding drift binary floating point introduces over many small jobs.
type Properties struct {
	Resolution *float64         `json:"resolution,omitempty"`
	Pay        *decimal.Decimal `json:"pay,omitempty"`
	MaxHours   *int             `json:"max_hours,omitempty"`
}

// DefaultBaseProperties is the configuration's base scope before any
// --resolution/--pay/--max-hours override: only Resolution is populated.
func DefaultBaseProperties() Properties {
	r := 0.25
	return Properties{Resolution: &r}
}

// Merge overlays the non-nil fields of update onto p, returning the result.
// A Configure call with an all-nil update is therefore a no-op.
func (p Properties) Merge(update Properties) Properties {
	out := p
	if update.Resolution != nil {
		out.Resolution = update.Resolution
	}
	if update.Pay != nil {
		out.Pay = update.Pay
	}
	if update.MaxHours != nil {
		out.MaxHours = update.MaxHours
	}
	return out
}

// Configuration is the persisted tag-scoped tuning: a base Properties plus a
// tag-name-keyed override map.
type Configuration struct {
	Base Properties            `json:"base"`
	Tags map[string]Properties `json:"tags,omitempty"`
}

// NewConfiguration returns a Configuration with the default base scope and no
// tag overrides.
func NewConfiguration() Configuration {
	return Configuration{Base: DefaultBaseProperties(), Tags: map[string]Properties{}}
}

// Resolve computes the effective Properties for a job's tag set: the
// properties of the single matching tag entry, the base if none match, or a
// TagCollision error naming the matches if two or more do.
func (c Configuration) Resolve(tags TagSet) (Properties, error) {
	var matched []string
	for _, t := range tags {
		if _, ok := c.Tags[t]; ok {
			matched = append(matched, t)
		}
	}
	switch len(matched) {
	case 0:
		return c.Base, nil
	case 1:
		return c.Tags[matched[0]], nil
	default:
		return Properties{}, errTagCollision(NewTagSet(matched...))
	}
}

// Configure merges update into the named tags' properties, or into the base
// scope when no tags are given.
func (c *Configuration) Configure(tags TagSet, update Properties) {
	if update.Resolution == nil && update.Pay == nil && update.MaxHours == nil {
		return
	}
	if len(tags) == 0 {
		c.Base = c.Base.Merge(update)
		return
	}
	if c.Tags == nil {
		c.Tags = map[string]Properties{}
	}
	for _, t := range tags {
		c.Tags[t] = c.Tags[t].Merge(update)
	}
}

// hours converts a duration in minutes to fractional hours under the given
// properties: rounded up to the next multiple of Resolution if set, else
// rounded to the nearest 0.01.
func hours(minutes float64, props Properties) float64 {
	h := minutes / 60.0
	if props.Resolution != nil && *props.Resolution > 0 {
		r := *props.Resolution
		return math.Ceil(h/r) * r
	}
	return math.Round(h*100) / 100
}

// pay returns h hours at props' rate, or zero if no rate is set.
func pay(h float64, props Properties) decimal.Decimal {
	if props.Pay == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(h).Mul(*props.Pay).Round(2)
}
