package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"quotation_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const DefaultQuotationNumberPrefix = "NEX"

// QuotationNumberGenerator builds numbers as <prefix>-<unix millis>-<n>.
//
// n comes from the shared sequence; when the sequence is missing or fails a
// random value in [0,1000) is used instead so creation never blocks on
// numbering. Uniqueness is ultimately enforced by the quotation store.
type QuotationNumberGenerator struct {
	seq     interfaces.IQuotationSequence
	prefix  string
	log     logrus.FieldLogger
	randInt func(n int) int
}

func NewQuotationNumberGenerator(seq interfaces.IQuotationSequence, prefix string, log logrus.FieldLogger) *QuotationNumberGenerator {
	if prefix == "" {
		prefix = DefaultQuotationNumberPrefix
	}
	return &QuotationNumberGenerator{seq: seq, prefix: prefix, log: log, randInt: rand.IntN}
}

func (g *QuotationNumberGenerator) Generate(ctx context.Context, at time.Time) string {
	return fmt.Sprintf("%s-%d-%d", g.prefix, at.UnixMilli(), g.disambiguator(ctx))
}

func (g *QuotationNumberGenerator) disambiguator(ctx context.Context) int64 {
	if g.seq != nil {
		n, err := g.seq.Next(ctx)
		if err == nil {
			return n
		}
		g.log.WithError(err).Warn("[quotation][number] sequence unavailable, using random suffix")
	}
	return int64(g.randInt(1000))
}
