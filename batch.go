package membuf

// transform is the fixed per-element arithmetic applied by BatchTransformer.
func transform(x int32) int32 {
	return x*2 + 10
}

// BatchTransformer applies f(x) = x*2 + 10 over an int32 sequence staged
// through RawBuffers, either element-at-a-time or in fixed-size chunks.
// Batching is purely a locality strategy: both strategies produce identical
// output for the same input. Each processing call overwrites the previous
// results.
type BatchTransformer struct {
	input        *RawBuffer
	output       *RawBuffer
	processCount int // element count of the last processed sequence
}

// NewBatchTransformer creates a transformer with no results yet.
func NewBatchTransformer() *BatchTransformer {
	return &BatchTransformer{}
}

// stage copies values into the input buffer and sizes the output buffer to
// match. Buffers are fixed-size, so a new length means reconstruction.
// Returns false, leaving previous results intact, if the byte size
// n*elemSize is not representable.
func (t *BatchTransformer) stage(values []int32) bool {
	n := len(values)
	if t.input == nil || t.input.Len() != n*elemSize {
		in, err := NewRawBuffer(n * elemSize)
		if err != nil {
			return false
		}
		out, err := NewRawBuffer(n * elemSize)
		if err != nil {
			return false
		}
		t.input, t.output = in, out
	}
	for i, v := range values {
		t.input.WriteInt32At(i*elemSize, v)
	}
	t.processCount = n
	return true
}

// ProcessSequential applies the transform to each element in order and
// returns the output sequence. An empty input yields an empty output.
func (t *BatchTransformer) ProcessSequential(values []int32) []int32 {
	if len(values) == 0 {
		t.input, t.output = nil, nil
		t.processCount = 0
		return []int32{}
	}
	if !t.stage(values) {
		return nil
	}
	for i := 0; i < t.processCount; i++ {
		t.output.WriteInt32At(i*elemSize, transform(t.input.ReadInt32At(i*elemSize)))
	}
	return t.Results()
}

// ProcessBatched applies the transform in floor(n/batchSize) full chunks
// plus one remainder chunk, in the same element order as ProcessSequential.
// The output is element-wise identical to ProcessSequential's for the same
// input. A batchSize below 1 is rejected, returning nil with state
// untouched.
func (t *BatchTransformer) ProcessBatched(values []int32, batchSize int) []int32 {
	if batchSize < 1 {
		return nil
	}
	if len(values) == 0 {
		t.input, t.output = nil, nil
		t.processCount = 0
		return []int32{}
	}
	if !t.stage(values) {
		return nil
	}
	for start := 0; start < t.processCount; start += batchSize {
		end := start + batchSize
		if end > t.processCount {
			end = t.processCount
		}
		for i := start; i < end; i++ {
			t.output.WriteInt32At(i*elemSize, transform(t.input.ReadInt32At(i*elemSize)))
		}
	}
	return t.Results()
}

// Results returns a copy of the most recently computed output sequence.
func (t *BatchTransformer) Results() []int32 {
	out := make([]int32, t.processCount)
	for i := range out {
		out[i] = t.output.ReadInt32At(i * elemSize)
	}
	return out
}

// ProcessCount returns the element count of the last processed sequence.
func (t *BatchTransformer) ProcessCount() int {
	return t.processCount
}
