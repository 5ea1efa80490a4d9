package huffcode

import (
	"reflect"
	"testing"
)

func TestCheckOptions(t *testing.T) {
	o := checkOptions(nil)
	if o.Parallelism != 1 || o.MinPartitionSize != DefaultMinPartitionSize {
		t.Errorf("wrong defaults: %+v", *o)
	}

	in := &Options{Parallelism: -3, MinPartitionSize: 10}
	o = checkOptions(in)
	if o.Parallelism != 1 || o.MinPartitionSize != 10 {
		t.Errorf("wrong options: %+v", *o)
	}
	if in.Parallelism != -3 {
		t.Errorf("checkOptions modified its argument: %+v", *in)
	}
}

func TestOptions_Partition(t *testing.T) {
	type testRow struct {
		name   string
		opts   Options
		n      int
		expect []span
	}

	testData := [...]testRow{
		{
			name:   "empty",
			opts:   Options{Parallelism: 4, MinPartitionSize: 10},
			n:      0,
			expect: []span{{0, 0}},
		},
		{
			name:   "short",
			opts:   Options{Parallelism: 4, MinPartitionSize: 10},
			n:      19,
			expect: []span{{0, 19}},
		},
		{
			name:   "two",
			opts:   Options{Parallelism: 4, MinPartitionSize: 10},
			n:      25,
			expect: []span{{0, 13}, {13, 25}},
		},
		{
			name:   "capped",
			opts:   Options{Parallelism: 3, MinPartitionSize: 10},
			n:      100,
			expect: []span{{0, 34}, {34, 67}, {67, 100}},
		},
		{
			name:   "serial",
			opts:   Options{Parallelism: 1, MinPartitionSize: 10},
			n:      100,
			expect: []span{{0, 100}},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := row.opts.partition(row.n)
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong spans:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}
