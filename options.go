package huffcode

// DefaultMinPartitionSize is the MinPartitionSize used when Options leaves it
// unset.
const DefaultMinPartitionSize = 64 * 1024

// Options controls how the parallelizable stages (frequency counting and
// encoding) split their work.  The zero value, like a nil *Options, runs
// everything on the calling goroutine.
type Options struct {
	// Parallelism is the maximum number of goroutines used by a single
	// stage.  Values below 1 are treated as 1.
	Parallelism int

	// MinPartitionSize is the smallest number of input symbols handed to a
	// single goroutine.  Values below 1 select DefaultMinPartitionSize.
	MinPartitionSize int
}

func checkOptions(o *Options) *Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Parallelism < 1 {
		out.Parallelism = 1
	}
	if out.MinPartitionSize < 1 {
		out.MinPartitionSize = DefaultMinPartitionSize
	}
	return &out
}

// span is a half-open range [start, end) of input positions.
type span struct {
	start int
	end   int
}

// partition splits an input of length n into at most o.Parallelism spans of
// at least o.MinPartitionSize symbols each.  The spans are contiguous and in
// input order.  A short input yields exactly one span.
func (o *Options) partition(n int) []span {
	count := n / o.MinPartitionSize
	if count > o.Parallelism {
		count = o.Parallelism
	}
	if count < 1 {
		count = 1
	}

	spans := make([]span, count)
	base, extra := n/count, n%count
	start := 0
	for index := 0; index < count; index++ {
		end := start + base
		if index < extra {
			end++
		}
		spans[index] = span{start, end}
		start = end
	}
	return spans
}
