package bulk

// Batch - непрерывный диапазон строк RowSet для одной команды INSERT
type Batch struct {
	// Offset - индекс первой строки диапазона в исходном RowSet
	Offset int
	Rows   [][]any
}

// Planner нарезает RowSet на пакеты с гарантией непревышения лимита
// параметров СУБД: размер пакета = max(1, min(default, maxParams/cols))
type Planner struct {
	batchSize int
}

// NewPlanner вычисляет эффективный размер пакета
func NewPlanner(defaultBatchSize, maxParams, columns int) *Planner {
	if columns < 1 {
		columns = 1
	}
	size := maxParams / columns
	if defaultBatchSize < size {
		size = defaultBatchSize
	}
	if size < 1 {
		size = 1
	}
	return &Planner{batchSize: size}
}

// BatchSize возвращает эффективный размер пакета
func (p *Planner) BatchSize() int {
	return p.batchSize
}

// Plan возвращает ленивую последовательность пакетов. Каждый вызов
// Plan начинает обход заново; пакеты материализуются по одному.
// Пустой RowSet дает последовательность без пакетов
func (p *Planner) Plan(rs *RowSet) *BatchSequence {
	return &BatchSequence{planner: p, rows: rs.Rows}
}

// BatchSequence - итератор пакетов
type BatchSequence struct {
	planner *Planner
	rows    [][]any
	offset  int
}

// Next возвращает следующий пакет или nil когда строки закончились
func (s *BatchSequence) Next() *Batch {
	if s.offset >= len(s.rows) {
		return nil
	}
	end := s.offset + s.planner.batchSize
	if end > len(s.rows) {
		end = len(s.rows)
	}
	b := &Batch{Offset: s.offset, Rows: s.rows[s.offset:end]}
	s.offset = end
	return b
}
