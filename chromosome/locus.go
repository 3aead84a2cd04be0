package chromosome

import (
	"fmt"

	"github.com/brentp/irelate/interfaces"
	"github.com/carbocation/sparkline"
	"golang.org/x/exp/slices"
)

// Locus is a genomic interval. It satisfies irelate's IPosition so it can be
// mixed with loci coming from bix or vcfgo readers.
type Locus struct {
	chrom ID
	start uint32
	end   uint32
}

func NewLocus(chrom string, start, end uint32) Locus {
	return Locus{chrom: New(chrom), start: start, end: end}
}

func (l Locus) Chrom() string {
	return l.chrom.String()
}

func (l Locus) Start() uint32 {
	return l.start
}

func (l Locus) End() uint32 {
	return l.end
}

func (l Locus) String() string {
	return fmt.Sprintf("%s:%d-%d", l.Chrom(), l.start, l.end)
}

// CompareLoci orders positions by chromosome, then start, then end.
func CompareLoci(a, b interfaces.IPosition) int {
	if c := Compare(New(a.Chrom()), New(b.Chrom())); c != 0 {
		return c
	}

	if c := sparkline.CompareOrdered(a.Start(), b.Start()); c != 0 {
		return c
	}

	return sparkline.CompareOrdered(a.End(), b.End())
}

// SortLoci sorts positions in place into genome order. Positions that compare
// equal keep their relative order.
func SortLoci(loci []interfaces.IPosition) {
	slices.SortStableFunc(loci, CompareLoci)
}

func (l Locus) CompareTo(other sparkline.Comparable) (int, error) {
	o, ok := other.(Locus)
	if !ok {
		return 0, fmt.Errorf("%w: %T vs %T", sparkline.ErrKindMismatch, l, other)
	}

	return CompareLoci(l, o), nil
}
