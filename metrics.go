package coll

// BufferMetrics contains statistical information about a contiguous buffer.
type BufferMetrics struct {
	Len           int     // Live elements
	Capacity      int     // Allocated element slots
	ElemSize      int     // Bytes per element
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Ratio of live to allocated slots (0.0-1.0)
}

// MapMetrics contains statistical information about a chained hash table.
type MapMetrics struct {
	Len         int     // Entries
	Buckets     int     // Bucket count (a power of two, or zero)
	UsedBuckets int     // Buckets with at least one entry
	MaxChain    int     // Longest chain
	LoadFactor  float64 // Entries per bucket
	NodeChunks  int     // Chunks allocated by the node arena
	NodeSlots   int     // Node slots across all chunks
}

func bufferMetrics(length, capacity int, elemSize uintptr) BufferMetrics {
	m := BufferMetrics{
		Len:           length,
		Capacity:      capacity,
		ElemSize:      int(elemSize),
		BytesInUse:    length * int(elemSize),
		BytesReserved: capacity * int(elemSize),
	}
	if capacity > 0 {
		m.Utilization = float64(length) / float64(capacity)
	}
	return m
}

// Metrics returns a snapshot of the vector's allocation statistics.
func (v *Vector[T]) Metrics() BufferMetrics {
	return bufferMetrics(v.len, v.buf.Cap(), sizeOf[T]())
}

// Metrics returns a snapshot of the list's backing storage statistics.
// ElemSize includes the two link indices stored with each value.
func (l *List[T]) Metrics() BufferMetrics {
	return l.buf.Metrics()
}

// Metrics returns a snapshot of the table's bucket statistics.
func (m *Map[K, V]) Metrics() MapMetrics {
	out := MapMetrics{Len: m.len, Buckets: len(m.buckets)}
	for i := range m.buckets {
		n := m.buckets[i].len
		if n > 0 {
			out.UsedBuckets++
		}
		if n > out.MaxChain {
			out.MaxChain = n
		}
	}
	if out.Buckets > 0 {
		out.LoadFactor = float64(m.len) / float64(out.Buckets)
	}
	if m.nodes != nil {
		out.NodeChunks = m.nodes.numChunks()
		out.NodeSlots = m.nodes.capacity()
	}
	return out
}
