// Package registry answers producer (CPF) and rural-registry (CAR) lookups.
// No government service is contacted: Simulated fabricates deterministic
// answers after an optional artificial latency.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vbonduro/verdearido/internal/domain"
)

var (
	ErrInvalidCPF    = errors.New("cpf must have 11 digits")
	ErrEmptyQuery    = errors.New("car number or protocol is required")
	ErrLookupTimeout = errors.New("registry lookup timed out")
)

const (
	cpfDigits      = 11
	defaultCARArea = 25.0
)

// CARRecord is the registered area returned for a CAR number or protocol.
type CARRecord struct {
	CARNumber string  `json:"car_number,omitempty"`
	Protocol  string  `json:"protocol,omitempty"`
	Area      float64 `json:"area"`
}

type Simulated struct {
	delay   time.Duration
	timeout time.Duration
}

// NewSimulated returns a registry that answers after delay. A positive timeout
// bounds each lookup; a lookup that outlives it fails with ErrLookupTimeout.
func NewSimulated(delay, timeout time.Duration) *Simulated {
	return &Simulated{delay: delay, timeout: timeout}
}

// LookupProducer returns the producer registered under cpf. Punctuation in
// cpf is ignored.
func (r *Simulated) LookupProducer(ctx context.Context, cpf string) (domain.Producer, error) {
	digits := NormalizeCPF(cpf)
	if len(digits) != cpfDigits {
		return domain.Producer{}, fmt.Errorf("%q: %w", cpf, ErrInvalidCPF)
	}
	if err := r.wait(ctx); err != nil {
		return domain.Producer{}, err
	}
	return domain.Producer{
		CPF:     digits,
		Name:    "José da Silva Santos",
		Address: "Fazenda Boa Vista, Zona Rural",
		City:    "Petrolina",
		State:   "PE",
	}, nil
}

// LookupCAR returns the registered area for a CAR number, a protocol number,
// or both. The area is derived from the last four digits of the combined
// query, (n mod 100) + 5 hectares, or 25 hectares when the query has no
// digits.
func (r *Simulated) LookupCAR(ctx context.Context, carNumber, protocol string) (CARRecord, error) {
	carNumber = strings.TrimSpace(carNumber)
	protocol = strings.TrimSpace(protocol)
	if carNumber == "" && protocol == "" {
		return CARRecord{}, ErrEmptyQuery
	}
	if err := r.wait(ctx); err != nil {
		return CARRecord{}, err
	}
	return CARRecord{
		CARNumber: carNumber,
		Protocol:  protocol,
		Area:      carArea(digitsOf(carNumber + protocol)),
	}, nil
}

func carArea(seed string) float64 {
	if seed == "" {
		return defaultCARArea
	}
	if len(seed) > 4 {
		seed = seed[len(seed)-4:]
	}
	n, err := strconv.Atoi(seed)
	if err != nil {
		return defaultCARArea
	}
	return float64(n%100 + 5)
}

func (r *Simulated) wait(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if r.delay <= 0 {
		return lookupErr(ctx.Err())
	}

	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return lookupErr(ctx.Err())
	}
}

func lookupErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrLookupTimeout
	}
	return err
}

// NormalizeCPF strips everything but digits from cpf.
func NormalizeCPF(cpf string) string {
	return digitsOf(cpf)
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything else is
// returned unchanged.
func FormatCPF(cpf string) string {
	d := NormalizeCPF(cpf)
	if len(d) != cpfDigits {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
