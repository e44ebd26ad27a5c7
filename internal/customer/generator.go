package customer

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// pcgIncrement is the second PCG word; fixed so one uint64 names a stream.
const pcgIncrement = 0x9e3779b97f4a7c15

// Generator produces customer fields from its own seeded source.
// It is not safe for concurrent use.
type Generator struct {
	seed uint64
	rng  *rand.Rand
	now  func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the seed so batches are reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.rng = rand.New(rand.NewPCG(seed, pcgIncrement))
	}
}

// WithClock sets the reference time for consent dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator. Without WithSeed the seed comes from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		WithSeed(RandomSeed())(g)
	}
	return g
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Reseed restarts the generator on the stream named by seed. The clock is
// kept.
func (g *Generator) Reseed(seed uint64) {
	WithSeed(seed)(g)
}

// Phone generates a 10-digit mobile number starting with 6, 7, 8 or 9.
func (g *Generator) Phone() string {
	buf := make([]byte, phoneLen)
	buf[0] = phoneLeadDigits[g.rng.IntN(len(phoneLeadDigits))]
	for i := 1; i < phoneLen; i++ {
		buf[i] = byte('0' + g.rng.IntN(10))
	}
	return string(buf)
}

// Name generates a random first/last name pair.
func (g *Generator) Name() (first, last string) {
	return g.pick(firstNames), g.pick(lastNames)
}

// Email builds an address from the name in one of four formats:
// first.last, firstlast, firstNN (10-99) or first.lastN (1-9).
func (g *Generator) Email(first, last string) string {
	domain := g.pick(EmailDomains)
	f := strings.ToLower(first)
	l := strings.ToLower(last)

	var local string
	switch g.rng.IntN(4) {
	case 0:
		local = f + "." + l
	case 1:
		local = f + l
	case 2:
		local = fmt.Sprintf("%s%d", f, 10+g.rng.IntN(90))
	default:
		local = fmt.Sprintf("%s.%s%d", f, l, 1+g.rng.IntN(9))
	}
	return local + "@" + domain
}

// ConsentDate returns a date between today and ConsentWindowDays ago.
func (g *Generator) ConsentDate() string {
	days := g.rng.IntN(ConsentWindowDays + 1)
	return g.now().AddDate(0, 0, -days).Format(DateLayout)
}

// Tags returns one or two distinct tags.
func (g *Generator) Tags() []string {
	n := 1 + g.rng.IntN(2)
	perm := g.rng.Perm(len(Tags))
	out := make([]string, n)
	for i := range n {
		out[i] = Tags[perm[i]]
	}
	return out
}

// Record fills in every field around an already chosen phone number.
func (g *Generator) Record(phone string) Record {
	first, last := g.Name()
	r := Record{
		Name:     first + " " + last,
		Phone:    phone,
		WhatsApp: phone,
	}

	if g.chance(emailChance) {
		r.Email = g.Email(first, last)
	}
	if g.chance(whatsappChance) {
		r.WhatsApp = g.Phone()
	}
	r.Tags = strings.Join(g.Tags(), ",")
	if g.chance(consentChance) {
		r.ConsentAt = g.ConsentDate()
	}

	return r
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *Generator) pick(s []string) string {
	return s[g.rng.IntN(len(s))]
}

// RandomSeed draws a seed from crypto/rand.
func RandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
