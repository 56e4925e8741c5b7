package jobber

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64p(f float64) *float64 { return &f }
func intp(n int) *int             { return &n }
func decp(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestConfigurationResolve(t *testing.T) {
	cfg := NewConfiguration()
	cfg.Tags = map[string]Properties{
		"billable": {Pay: decp(50)},
		"internal": {Pay: decp(0)},
	}

	t.Run("no matching tag falls back to base", func(t *testing.T) {
		p, err := cfg.Resolve(NewTagSet("other"))
		require.NoError(t, err)
		assert.Equal(t, cfg.Base, p)
	})

	t.Run("one matching tag wins", func(t *testing.T) {
		p, err := cfg.Resolve(NewTagSet("billable"))
		require.NoError(t, err)
		assert.True(t, p.Pay.Equal(*decp(50)))
	})

	t.Run("two matching tags collide", func(t *testing.T) {
		_, err := cfg.Resolve(NewTagSet("billable", "internal"))
		jerr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, KindTagCollision, jerr.Kind)
	})
}

func TestConfigurationConfigure(t *testing.T) {
	cfg := NewConfiguration()

	cfg.Configure(nil, Properties{Pay: decp(25)})
	assert.True(t, cfg.Base.Pay.Equal(*decp(25)))
	assert.NotNil(t, cfg.Base.Resolution, "merge preserves the untouched default resolution")

	cfg.Configure(NewTagSet("dev"), Properties{MaxHours: intp(8)})
	assert.Equal(t, 8, *cfg.Tags["dev"].MaxHours)
}

func TestPropertiesMergeKeepsFieldsUnsetInUpdate(t *testing.T) {
	base := Properties{Resolution: float64p(0.25)}
	merged := base.Merge(Properties{Pay: decp(10)})
	assert.Equal(t, 0.25, *merged.Resolution)
	assert.True(t, merged.Pay.Equal(*decp(10)))
}

func TestHoursRounding(t *testing.T) {
	t.Run("resolution rounds up to the next increment", func(t *testing.T) {
		got := hours(70, Properties{Resolution: float64p(0.25)})
		assert.Equal(t, 1.25, got)
	})

	t.Run("no resolution rounds to the nearest cent-hour", func(t *testing.T) {
		got := hours(100, Properties{})
		assert.Equal(t, 1.67, got)
	})
}

func TestPay(t *testing.T) {
	assert.True(t, pay(2, Properties{Pay: decp(12.5)}).Equal(decimal.NewFromFloat(25)))
	assert.True(t, pay(2, Properties{}).IsZero())
}
