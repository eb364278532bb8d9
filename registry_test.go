package converter_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	converter "github.com/hpate252/currency-converter"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	registry := converter.DefaultRegistry()

	usd, ok := registry.Get("USD")
	asserts.True(ok)
	asserts.Equal("US Dollar", usd.Name)
	asserts.Equal("$", usd.Symbol)

	all := registry.All()
	asserts.Len(all, 7)

	codes := make([]string, 0, len(all))
	for _, currency := range all {
		codes = append(codes, currency.Code)
	}

	asserts.True(sort.StringsAreSorted(codes))

	_, ok = registry.Get("ZZZ")
	asserts.False(ok)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	registry := converter.NewRegistry()
	expected := make(map[string]converter.Currency)

	for i := 0; i < 20; i++ {
		currency := converter.Currency{
			Code:   strings.ToUpper(faker.Currency()),
			Name:   faker.Word(),
			Symbol: "¤",
		}

		registry.Register(currency)
		expected[currency.Code] = currency
	}

	for code, currency := range expected {
		got, ok := registry.Get(code)
		asserts.True(ok)
		asserts.Equal(currency, got)
	}

	all := registry.All()
	asserts.Len(all, len(expected))

	codes := make([]string, 0, len(all))
	for _, currency := range all {
		codes = append(codes, currency.Code)
	}

	asserts.True(sort.StringsAreSorted(codes))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	registry := converter.NewRegistry()
	registry.Register(converter.Currency{Code: "USD", Name: "Dollar", Symbol: "$"})
	registry.Register(converter.Currency{Code: "USD", Name: "US Dollar", Symbol: "$"})

	usd, ok := registry.Get("USD")
	asserts.True(ok)
	asserts.Equal("US Dollar", usd.Name)
	asserts.Len(registry.All(), 1)
}
