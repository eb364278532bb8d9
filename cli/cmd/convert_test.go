package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	converter "github.com/hpate252/currency-converter"
	"github.com/hpate252/currency-converter/rates"
	"github.com/hpate252/currency-converter/services"
	"github.com/hpate252/currency-converter/storage"
)

func testConfig() *Config {
	table := rates.New("USD")
	table.RegisterBaseRate("EUR", 0.92)
	table.RegisterBaseRate("INR", 83.10)

	journal := storage.NewMemoryStorage()
	service := services.NewRecordingService(journal, services.New(table))

	debug := false

	return &Config{
		Service:  service,
		Table:    table,
		Registry: converter.DefaultRegistry(),
		Journal:  journal,
		debug:    &debug,
	}
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	t.Run("DerivedRate", func(t *testing.T) {
		config := testConfig()

		out, err := execute(t, convert(config), "usd", "inr", "10")
		asserts.Nil(err)
		asserts.Equal("10.00 USD = 831.00 INR\n", out)
		asserts.Equal(1, config.Journal.Len())
	})

	t.Run("OneShotOverride", func(t *testing.T) {
		config := testConfig()

		out, err := execute(t, convert(config), "usd", "inr", "10", "--rate", "90")
		asserts.Nil(err)
		asserts.Equal("10.00 USD = 900.00 INR\n", out)

		// The reverse direction is unaffected by the override.
		out, err = execute(t, convert(config), "inr", "usd", "10")
		asserts.Nil(err)
		asserts.Equal("10.00 INR = 0.12 USD\n", out)
	})

	t.Run("InvalidOverrideRate", func(t *testing.T) {
		config := testConfig()

		_, err := execute(t, convert(config), "usd", "inr", "10", "--rate=-1")
		asserts.True(errors.Is(err, rates.ErrInvalidRate))
		asserts.Equal(0, config.Journal.Len())
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		config := testConfig()

		// "--" keeps pflag from reading the negative amount as a flag.
		_, err := execute(t, convert(config), "usd", "inr", "--", "-5")
		asserts.True(errors.Is(err, services.ErrInvalidAmount))
		asserts.Equal(0, config.Journal.Len())
	})

	t.Run("UnsupportedCurrency", func(t *testing.T) {
		config := testConfig()

		_, err := execute(t, convert(config), "zzz", "usd", "10")
		asserts.True(errors.Is(err, rates.ErrUnsupportedCurrency))
	})

	t.Run("InvalidAmountArgument", func(t *testing.T) {
		config := testConfig()

		_, err := execute(t, convert(config), "usd", "inr", "ten")
		asserts.NotNil(err)
	})

	t.Run("DebugOutput", func(t *testing.T) {
		config := testConfig()
		*config.debug = true

		out, err := execute(t, convert(config), "usd", "inr", "10")
		asserts.Nil(err)
		asserts.Contains(out, "rate: 83.1")
		asserts.Contains(out, "journal entries: 1")
	})
}
