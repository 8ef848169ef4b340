package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupProducer(t *testing.T) {
	r := NewSimulated(0, time.Second)

	p, err := r.LookupProducer(context.Background(), "123.456.789-01")
	require.NoError(t, err)

	assert.Equal(t, "12345678901", p.CPF)
	assert.Equal(t, "José da Silva Santos", p.Name)
	assert.Equal(t, "Petrolina", p.City)
	assert.Equal(t, "PE", p.State)
}

func TestLookupProducerInvalidCPF(t *testing.T) {
	r := NewSimulated(0, 0)

	for _, cpf := range []string{"", "123", "123.456.789-012", "abcdefghijk"} {
		_, err := r.LookupProducer(context.Background(), cpf)
		assert.ErrorIs(t, err, ErrInvalidCPF, cpf)
	}
}

func TestLookupCAR(t *testing.T) {
	r := NewSimulated(0, 0)
	ctx := context.Background()

	cases := []struct {
		name      string
		car, prot string
		want      float64
	}{
		{"car only", "1234-5678", "", 83},
		{"protocol only", "", "PROT-0042", 47},
		{"combined digits", "BA-12", "34", 39},
		{"short seed", "7", "", 12},
		{"no digits", "SEM-NUMERO", "", 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := r.LookupCAR(ctx, tc.car, tc.prot)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rec.Area)
		})
	}
}

func TestLookupCAREmptyQuery(t *testing.T) {
	r := NewSimulated(0, 0)

	_, err := r.LookupCAR(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestLookupTimeout(t *testing.T) {
	r := NewSimulated(time.Second, 10*time.Millisecond)

	start := time.Now()
	_, err := r.LookupCAR(context.Background(), "123", "")
	assert.ErrorIs(t, err, ErrLookupTimeout)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestLookupHonoursCancel(t *testing.T) {
	r := NewSimulated(time.Second, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.LookupProducer(ctx, "12345678901")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookupWaitsForDelay(t *testing.T) {
	r := NewSimulated(20*time.Millisecond, time.Second)

	start := time.Now()
	_, err := r.LookupProducer(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", FormatCPF("12345678901"))
	assert.Equal(t, "123.456.789-01", FormatCPF("123.456.789-01"))
	assert.Equal(t, "123", FormatCPF("123"))
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF(" 123.456.789-01 "))
	assert.Empty(t, NormalizeCPF("abc"))
}
